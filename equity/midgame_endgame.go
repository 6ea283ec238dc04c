package equity

import (
	"github.com/domino14/morris/board"
	"github.com/domino14/morris/movegen"
)

const (
	// WinValue is returned once Black can no longer form a mill.
	WinValue = 10000
	// LossValue is the mirror of WinValue.
	LossValue = -WinValue
	// PieceWeight is the value of one piece of material in the midgame.
	PieceWeight = 1000
	// LosingPieceCount is the piece count at which a side has lost.
	LosingPieceCount = 2
)

// MidgameEndgameCalculator weighs material heavily and subtracts Black's
// mobility, so that among equal-material positions the one leaving Black
// the fewest moves scores highest.
type MidgameEndgameCalculator struct {
	gen     movegen.MoveGenerator
	potMill bool
}

func NewMidgameEndgameCalculator() *MidgameEndgameCalculator {
	return &MidgameEndgameCalculator{gen: movegen.NewGenerator(movegen.MidgameEndgame)}
}

// NewImprovedMidgameEndgameCalculator adds White's potential mills to the
// material term.
func NewImprovedMidgameEndgameCalculator() *MidgameEndgameCalculator {
	return &MidgameEndgameCalculator{
		gen:     movegen.NewGenerator(movegen.MidgameEndgame),
		potMill: true,
	}
}

func (mc *MidgameEndgameCalculator) Evaluate(pos board.Position) int {
	wPieces := pos.Count(board.White)
	bPieces := pos.Count(board.Black)
	if bPieces <= LosingPieceCount {
		return WinValue
	}
	if wPieces <= LosingPieceCount {
		return LossValue
	}
	material := wPieces - bPieces
	if mc.potMill {
		material += pos.PotentialMills(board.White)
	}
	numBMoves := len(mc.gen.GenAll(pos, board.Black))
	return PieceWeight*material - numBMoves
}

func (mc *MidgameEndgameCalculator) Type() string {
	if mc.potMill {
		return "ImprovedMidgameEndgameCalculator"
	}
	return "MidgameEndgameCalculator"
}
