package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

// NumPoints is the number of intersections on the board.
const NumPoints = 23

var ErrInvalidBoardSize = errors.New("board must have exactly 23 points")

// A Point is the state of a single intersection.
type Point uint8

const (
	Empty Point = iota
	White
	Black
)

func (p Point) String() string {
	switch p {
	case White:
		return "W"
	case Black:
		return "B"
	}
	return "x"
}

// Opponent returns the other side. Empty stays empty.
func (p Point) Opponent() Point {
	switch p {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

// PointFromByte converts an encoded byte. Anything other than W or B is
// treated as an empty point.
func PointFromByte(c byte) Point {
	switch c {
	case 'W':
		return White
	case 'B':
		return Black
	}
	return Empty
}

// A Position is the full state of the board. It is an array, so assigning
// or passing a Position copies it; siblings generated from the same parent
// never share storage.
type Position [NumPoints]Point

// FromString parses a 23-character encoding.
func FromString(s string) (Position, error) {
	var pos Position
	if len(s) != NumPoints {
		return pos, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, len(s))
	}
	for i := 0; i < NumPoints; i++ {
		pos[i] = PointFromByte(s[i])
	}
	return pos, nil
}

// MustFromString is like FromString but panics on a malformed board. It is
// meant for tests and static sample positions.
func MustFromString(s string) Position {
	pos, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return pos
}

func (p Position) Get(i int) Point {
	return p[i]
}

func (p *Position) Set(i int, v Point) {
	p[i] = v
}

// Copy returns an independent copy of the position.
func (p Position) Copy() Position {
	return p
}

// Count returns the number of points owned by side.
func (p Position) Count(side Point) int {
	return lo.Count(p[:], side)
}

// ColorSwap returns a new position with White and Black exchanged.
// Swapping twice yields the original position.
func (p Position) ColorSwap() Position {
	var out Position
	for i, v := range p {
		out[i] = v.Opponent()
	}
	return out
}

func (p Position) String() string {
	var sb strings.Builder
	sb.Grow(NumPoints)
	for _, v := range p {
		sb.WriteString(v.String())
	}
	return sb.String()
}

// ID is a short stable identifier for the position, used in logs.
func (p Position) ID() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(p.String()))
}
