package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/morris/board"
)

var samplePositions = []string{
	board.EmptyBoard,
	board.MillThreat,
	board.AllBlackMilled,
	board.WhiteFlying,
	board.Midgame,
	board.BlackDown,
	board.WhiteDown,
}

// directBlack enumerates Black's moves without the colour-swap trick.
func directBlack(pos board.Position, mode Mode) []board.Position {
	var plays []board.Position
	land := func(dest int, b board.Position) {
		if !board.ClosesMill(dest, b) {
			plays = append(plays, b)
			return
		}
		for k := 0; k < board.NumPoints; k++ {
			if b[k] == board.White && !board.ClosesMill(k, b) {
				r := b
				r[k] = board.Empty
				plays = append(plays, r)
			}
		}
	}
	if mode == Opening {
		for i := range pos {
			if pos[i] == board.Empty {
				b := pos
				b[i] = board.Black
				land(i, b)
			}
		}
		return plays
	}
	flying := pos.Count(board.Black) == 3
	for i := range pos {
		if pos[i] != board.Black {
			continue
		}
		targets := board.Neighbors(i)
		if flying {
			targets = nil
			for j := range pos {
				targets = append(targets, j)
			}
		}
		for _, j := range targets {
			if pos[j] != board.Empty {
				continue
			}
			b := pos
			b[i] = board.Empty
			b[j] = board.Black
			land(j, b)
		}
	}
	return plays
}

func filter(plays []board.Position, f func(board.Position) bool) []board.Position {
	var out []board.Position
	for _, p := range plays {
		if f(p) {
			out = append(out, p)
		}
	}
	return out
}

func TestOpeningFromEmptyBoard(t *testing.T) {
	is := is.New(t)
	pos := board.MustFromString(board.EmptyBoard)
	plays := NewGenerator(Opening).GenAll(pos, board.White)
	is.Equal(len(plays), board.NumPoints)
	for i, p := range plays {
		is.Equal(p.Count(board.White), 1)
		is.Equal(p.Count(board.Black), 0)
		is.Equal(p.Get(i), board.White) // one placement per point, in order
	}
}

func TestMillTriggersRemoval(t *testing.T) {
	is := is.New(t)
	pos := board.MustFromString(board.MillThreat)
	plays := NewGenerator(Opening).GenAll(pos, board.White)
	// 19 empty points; playing 2 branches into two removals.
	is.Equal(len(plays), 20)

	closing := filter(plays, func(p board.Position) bool { return p.Get(2) == board.White })
	is.Equal(len(closing), 2)
	is.Equal(closing[0].Get(10), board.Empty)
	is.Equal(closing[0].Get(15), board.Black)
	is.Equal(closing[1].Get(10), board.Black)
	is.Equal(closing[1].Get(15), board.Empty)
	for _, p := range closing {
		is.Equal(p.Count(board.Black), 1)
	}
}

// When every Black piece sits in a mill, closing a mill yields no
// successor at all. Standard rules would let White break a mill instead;
// this generator deliberately keeps the literal rule.
func TestAllOpponentPiecesMilled(t *testing.T) {
	is := is.New(t)
	pos := board.MustFromString(board.AllBlackMilled)
	plays := NewGenerator(Opening).GenAll(pos, board.White)
	is.Equal(len(plays), 17)
	closing := filter(plays, func(p board.Position) bool { return p.Get(2) == board.White })
	is.Equal(len(closing), 0)
}

func TestFlying(t *testing.T) {
	is := is.New(t)
	pos := board.MustFromString(board.WhiteFlying)
	is.Equal(pos.Count(board.White), FlyingThreshold)
	plays := NewGenerator(MidgameEndgame).GenAll(pos, board.White)
	// 3 pieces times 16 empty points, no mills possible.
	is.Equal(len(plays), 48)

	far := filter(plays, func(p board.Position) bool {
		return p.Get(0) == board.Empty && p.Get(22) == board.White
	})
	is.Equal(len(far), 1)
	is.True(!board.Adjacent(0, 22))
}

func TestSlidingIsAdjacentOnly(t *testing.T) {
	is := is.New(t)
	pos := board.MustFromString(board.Midgame)
	plays := NewGenerator(MidgameEndgame).GenAll(pos, board.White)
	is.True(len(plays) > 0)
	for _, p := range plays {
		var from, to []int
		for i := range p {
			if pos[i] == board.White && p[i] == board.Empty {
				from = append(from, i)
			}
			if pos[i] == board.Empty && p[i] == board.White {
				to = append(to, i)
			}
		}
		is.Equal(len(from), 1)
		is.Equal(len(to), 1)
		is.True(board.Adjacent(from[0], to[0]))
		is.Equal(p.Count(board.White), pos.Count(board.White))
		lost := pos.Count(board.Black) - p.Count(board.Black)
		is.True(lost == 0 || lost == 1)
		if lost == 1 {
			is.True(board.ClosesMill(to[0], p))
		}
	}
}

func TestGeneratorDoesNotModifyInput(t *testing.T) {
	is := is.New(t)
	for _, s := range samplePositions {
		pos := board.MustFromString(s)
		orig := pos.Copy()
		NewGenerator(Opening).GenAll(pos, board.White)
		NewGenerator(Opening).GenAll(pos, board.Black)
		NewGenerator(MidgameEndgame).GenAll(pos, board.White)
		NewGenerator(MidgameEndgame).GenAll(pos, board.Black)
		is.Equal(pos, orig)
	}
}

func TestBlackMatchesDirectEnumeration(t *testing.T) {
	is := is.New(t)
	for _, mode := range []Mode{Opening, MidgameEndgame} {
		gen := NewGenerator(mode)
		is.Equal(gen.Mode(), mode)
		for _, s := range samplePositions {
			pos := board.MustFromString(s)
			swapped := gen.GenAll(pos, board.Black)
			direct := directBlack(pos, mode)
			is.Equal(len(swapped), len(direct))
			for i := range direct {
				is.Equal(swapped[i], direct[i])
			}
		}
	}
}

func TestBlackFlying(t *testing.T) {
	is := is.New(t)
	// Black has exactly three pieces here.
	pos := board.MustFromString(board.WhiteFlying).ColorSwap()
	plays := NewGenerator(MidgameEndgame).GenAll(pos, board.Black)
	is.Equal(len(plays), 48)
}

func TestModeFromString(t *testing.T) {
	is := is.New(t)
	for s, m := range map[string]Mode{
		"opening": Opening, "Opening ": Opening, "game": MidgameEndgame,
		"midgame": MidgameEndgame, "endgame": MidgameEndgame,
	} {
		got, err := ModeFromString(s)
		is.NoErr(err)
		is.Equal(got, m)
	}
	_, err := ModeFromString("middle")
	is.Equal(err, ErrUnknownMode)
}
