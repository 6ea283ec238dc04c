package equity

import (
	"errors"
	"strings"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/movegen"
)

// Calculator is a static evaluator. Scores are always from White's point
// of view; a higher number is better for White.
type Calculator interface {
	Evaluate(pos board.Position) int
	Type() string
}

// Kind selects between the plain material evaluators and the improved
// ones that also count potential mills.
type Kind int

const (
	Standard Kind = iota
	Improved
)

var ErrUnknownEvaluator = errors.New("unknown evaluator; use standard or improved")

func (k Kind) String() string {
	if k == Improved {
		return "improved"
	}
	return "standard"
}

func KindFromString(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return Standard, nil
	case "improved":
		return Improved, nil
	}
	return Standard, ErrUnknownEvaluator
}

// NewCalculator returns the evaluator for a phase.
func NewCalculator(mode movegen.Mode, kind Kind) Calculator {
	switch {
	case mode == movegen.Opening && kind == Improved:
		return ImprovedOpeningCalculator{}
	case mode == movegen.Opening:
		return OpeningCalculator{}
	case kind == Improved:
		return NewImprovedMidgameEndgameCalculator()
	}
	return NewMidgameEndgameCalculator()
}
