package solver

import (
	"fmt"
	"strings"

	"github.com/domino14/morris/board"
)

// PVLine is a principal variation: the chosen successor followed by the
// replies the search expects, alternating sides.
type PVLine struct {
	Positions []board.Position
	score     int
}

func (pv *PVLine) Clear() {
	pv.Positions = nil
}

// Update replaces the line with pos followed by the line found below it.
func (pv *PVLine) Update(pos board.Position, below PVLine, score int) {
	pv.Clear()
	pv.Positions = append(pv.Positions, pos)
	pv.Positions = append(pv.Positions, below.Positions...)
	pv.score = score
}

// First returns the chosen successor, or nil for an empty line.
func (pv *PVLine) First() *board.Position {
	if len(pv.Positions) == 0 {
		return nil
	}
	first := pv.Positions[0]
	return &first
}

func (pv *PVLine) colorSwap() {
	for i := range pv.Positions {
		pv.Positions[i] = pv.Positions[i].ColorSwap()
	}
}

func (pv PVLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d\n", pv.score)
	for i, pos := range pv.Positions {
		fmt.Fprintf(&sb, "%d: %s\n", i+1, pos)
	}
	return sb.String()
}
