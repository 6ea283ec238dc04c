package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/morris/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a mill game position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	// indexed by point, then by colour (White, Black)
	posTable    [board.NumPoints][2]uint64
	initialized bool
}

func (z *Zobrist) Initialize() {
	for i := 0; i < board.NumPoints; i++ {
		for j := 0; j < 2; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.initialized = true
}

func (z *Zobrist) Initialized() bool {
	return z.initialized
}

func colorIdx(p board.Point) int {
	if p == board.Black {
		return 1
	}
	return 0
}

func (z *Zobrist) Hash(pos board.Position) uint64 {
	key := uint64(0)
	for i, p := range pos {
		if p == board.Empty {
			continue
		}
		key ^= z.posTable[i][colorIdx(p)]
	}
	return key
}

// Toggle adds or removes a piece of the given colour at point i. Toggling
// the same piece twice restores the original key.
func (z *Zobrist) Toggle(key uint64, i int, p board.Point) uint64 {
	return key ^ z.posTable[i][colorIdx(p)]
}

// Move updates key for a piece of colour p moving from one point to
// another.
func (z *Zobrist) Move(key uint64, from, to int, p board.Point) uint64 {
	return z.Toggle(z.Toggle(key, from, p), to, p)
}
