package equity

import (
	"github.com/domino14/morris/board"
)

// OpeningCalculator scores a placement-phase position by material alone.
type OpeningCalculator struct{}

func (oc OpeningCalculator) Evaluate(pos board.Position) int {
	return pos.Count(board.White) - pos.Count(board.Black)
}

func (oc OpeningCalculator) Type() string {
	return "OpeningCalculator"
}

// ImprovedOpeningCalculator also credits White for every empty point where
// a White piece would complete a mill.
type ImprovedOpeningCalculator struct{}

func (ic ImprovedOpeningCalculator) Evaluate(pos board.Position) int {
	return pos.Count(board.White) + pos.PotentialMills(board.White) - pos.Count(board.Black)
}

func (ic ImprovedOpeningCalculator) Type() string {
	return "ImprovedOpeningCalculator"
}
