// Package movegen contains all the move-generating functions. Every
// generator works from White's point of view; Black's moves are produced
// by swapping colours, generating for White, and swapping every result
// back.
package movegen

import (
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/morris/board"
)

// Mode selects which phase of the game is being generated for. It is
// always chosen by the caller; nothing here infers it from the board.
type Mode int

const (
	// Opening is the placement phase.
	Opening Mode = iota
	// MidgameEndgame is the movement phase, with flying once a side is
	// down to three pieces.
	MidgameEndgame
)

// FlyingThreshold is the piece count at which a side may move to any
// empty point.
const FlyingThreshold = 3

var ErrUnknownMode = errors.New("unknown mode; use opening or game")

func (m Mode) String() string {
	switch m {
	case Opening:
		return "opening"
	case MidgameEndgame:
		return "midgame-endgame"
	}
	return "unknown"
}

// ModeFromString accepts "opening", or "game"/"midgame"/"endgame"/
// "midgame-endgame".
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "opening":
		return Opening, nil
	case "game", "midgame", "endgame", "midgame-endgame":
		return MidgameEndgame, nil
	}
	return Opening, ErrUnknownMode
}

// MoveGenerator produces every successor position for the given side.
// The input position is never modified.
type MoveGenerator interface {
	GenAll(pos board.Position, side board.Point) []board.Position
	Mode() Mode
}

// NewGenerator returns the generator for a mode.
func NewGenerator(mode Mode) MoveGenerator {
	if mode == Opening {
		return &OpeningGenerator{}
	}
	return &MidgameEndgameGenerator{}
}

// OpeningGenerator generates placement moves.
type OpeningGenerator struct{}

func (gen *OpeningGenerator) GenAll(pos board.Position, side board.Point) []board.Position {
	return genForSide(pos, side, GenerateAdd)
}

func (gen *OpeningGenerator) Mode() Mode {
	return Opening
}

// MidgameEndgameGenerator generates sliding moves, or flying moves when
// the side to move has exactly three pieces.
type MidgameEndgameGenerator struct{}

func (gen *MidgameEndgameGenerator) GenAll(pos board.Position, side board.Point) []board.Position {
	return genForSide(pos, side, GenerateMidgameEndgame)
}

func (gen *MidgameEndgameGenerator) Mode() Mode {
	return MidgameEndgame
}

func genForSide(pos board.Position, side board.Point,
	whiteGen func(board.Position) []board.Position) []board.Position {

	if side == board.White {
		return whiteGen(pos)
	}
	plays := whiteGen(pos.ColorSwap())
	return lo.Map(plays, func(p board.Position, _ int) board.Position {
		return p.ColorSwap()
	})
}

// GenerateMidgameEndgame generates White's movement-phase moves.
func GenerateMidgameEndgame(pos board.Position) []board.Position {
	if pos.Count(board.White) == FlyingThreshold {
		return GenerateHopping(pos)
	}
	return GenerateMove(pos)
}

// GenerateAdd generates every placement of a White piece on an empty
// point.
func GenerateAdd(pos board.Position) []board.Position {
	var plays []board.Position
	for i := 0; i < board.NumPoints; i++ {
		if pos[i] != board.Empty {
			continue
		}
		b := pos.Copy()
		b.Set(i, board.White)
		plays = addOrRemove(i, b, plays)
	}
	return plays
}

// GenerateMove generates every slide of a White piece to an adjacent
// empty point.
func GenerateMove(pos board.Position) []board.Position {
	var plays []board.Position
	for i := 0; i < board.NumPoints; i++ {
		if pos[i] != board.White {
			continue
		}
		for _, j := range board.Neighbors(i) {
			if pos[j] != board.Empty {
				continue
			}
			b := pos.Copy()
			b.Set(i, board.Empty)
			b.Set(j, board.White)
			plays = addOrRemove(j, b, plays)
		}
	}
	return plays
}

// GenerateHopping generates every move of a White piece to any empty
// point.
func GenerateHopping(pos board.Position) []board.Position {
	var plays []board.Position
	for i := 0; i < board.NumPoints; i++ {
		if pos[i] != board.White {
			continue
		}
		for j := 0; j < board.NumPoints; j++ {
			if pos[j] != board.Empty {
				continue
			}
			b := pos.Copy()
			b.Set(i, board.Empty)
			b.Set(j, board.White)
			plays = addOrRemove(j, b, plays)
		}
	}
	return plays
}

// addOrRemove appends b, or, if the piece just landed on dest closes a
// mill, every position reachable by removing a Black piece.
func addOrRemove(dest int, b board.Position, plays []board.Position) []board.Position {
	if board.ClosesMill(dest, b) {
		return GenerateRemove(b, plays)
	}
	return append(plays, b)
}

// GenerateRemove appends one position per Black piece that is not part of
// a mill, with that piece removed. If every Black piece is in a mill,
// nothing is appended.
func GenerateRemove(pos board.Position, plays []board.Position) []board.Position {
	for i := 0; i < board.NumPoints; i++ {
		if pos[i] != board.Black || board.ClosesMill(i, pos) {
			continue
		}
		b := pos.Copy()
		b.Set(i, board.Empty)
		plays = append(plays, b)
	}
	return plays
}
