package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/morris/board"
)

func TestHashDistinguishesColours(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()
	is.True(z.Initialized())

	pos := board.MustFromString(board.Midgame)
	is.Equal(z.Hash(pos), z.Hash(pos.Copy()))
	is.True(z.Hash(pos) != z.Hash(pos.ColorSwap()))
	is.Equal(z.Hash(board.MustFromString(board.EmptyBoard)), uint64(0))
}

func TestIncrementalMatchesFullHash(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	pos := board.MustFromString(board.MillThreat)
	h := z.Hash(pos)

	// White plays 2 and removes the Black piece on 10.
	h1 := z.Toggle(h, 2, board.White)
	h1 = z.Toggle(h1, 10, board.Black)
	after := pos.Copy()
	after.Set(2, board.White)
	after.Set(10, board.Empty)
	is.Equal(h1, z.Hash(after))

	// Black slides 15 -> 18.
	h2 := z.Move(h1, 15, 18, board.Black)
	after.Set(15, board.Empty)
	after.Set(18, board.Black)
	is.Equal(h2, z.Hash(after))

	// and back again
	is.Equal(z.Move(h2, 18, 15, board.Black), h1)
}
