package stats

import (
	"lukechampine.com/frand"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/movegen"
)

// PlacementPlies is the number of placement moves in a full game, nine
// per side.
const PlacementPlies = 18

// RandomPosition plays up to plies uniformly random moves from the empty
// board, White first. The first PlacementPlies moves are placements and
// the rest are movement-phase moves. It stops early if the side to move
// has no move.
func RandomPosition(plies int) board.Position {
	var pos board.Position
	opening := movegen.NewGenerator(movegen.Opening)
	midgame := movegen.NewGenerator(movegen.MidgameEndgame)
	side := board.White
	for ply := 0; ply < plies; ply++ {
		gen := opening
		if ply >= PlacementPlies {
			gen = midgame
		}
		children := gen.GenAll(pos, side)
		if len(children) == 0 {
			break
		}
		pos = children[frand.Intn(len(children))]
		side = side.Opponent()
	}
	return pos
}

func RandomPositions(n, plies int) []board.Position {
	positions := make([]board.Position, n)
	for i := range positions {
		positions[i] = RandomPosition(plies)
	}
	return positions
}
