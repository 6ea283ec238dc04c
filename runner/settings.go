package runner

import (
	"fmt"

	"github.com/domino14/morris/movegen"
	"github.com/domino14/morris/solver"
)

// A Program is one of the search executables: a fixed phase and algorithm.
type Program struct {
	Name      string
	Mode      movegen.Mode
	Algorithm solver.Algorithm
}

var (
	MiniMaxOpening = Program{Name: "minimax_opening", Mode: movegen.Opening, Algorithm: solver.Minimax}
	MiniMaxGame    = Program{Name: "minimax_game", Mode: movegen.MidgameEndgame, Algorithm: solver.Minimax}
	ABOpening      = Program{Name: "ab_opening", Mode: movegen.Opening, Algorithm: solver.AlphaBeta}
	ABGame         = Program{Name: "ab_game", Mode: movegen.MidgameEndgame, Algorithm: solver.AlphaBeta}
)

func (p Program) Usage() string {
	return fmt.Sprintf("usage: %s [flags] <input-board-file> <output-file> <depth>", p.Name)
}

// Invocation holds the positional arguments every program takes.
type Invocation struct {
	InputFile  string
	OutputFile string
	Depth      int
}
