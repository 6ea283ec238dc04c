package board

import (
	"fmt"
	"strings"
)

// coords holds the grid location of every point, with y growing upward.
var coords = [NumPoints][2]int{
	{0, 0}, {3, 0}, {6, 0},
	{1, 1}, {3, 1}, {5, 1},
	{2, 2}, {4, 2},
	{0, 3}, {1, 3}, {2, 3}, {4, 3}, {5, 3}, {6, 3},
	{2, 4}, {3, 4}, {4, 4},
	{1, 5}, {3, 5}, {5, 5},
	{0, 6}, {3, 6}, {6, 6},
}

// Coords returns the grid location of point i on a 7x7 grid with the
// origin at the bottom left.
func Coords(i int) (x, y int) {
	return coords[i][0], coords[i][1]
}

// ToDisplayText renders the position as a small grid, top row first.
func (p Position) ToDisplayText() string {
	var grid [7][7]string
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for i, v := range p {
		x, y := Coords(i)
		switch v {
		case Empty:
			grid[y][x] = "."
		default:
			grid[y][x] = v.String()
		}
	}
	var sb strings.Builder
	sb.WriteString("\n")
	for y := 6; y >= 0; y-- {
		sb.WriteString(fmt.Sprintf("%d| ", y))
		for x := 0; x < 7; x++ {
			sb.WriteString(grid[y][x])
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   a b c d e f g\n")
	sb.WriteString(fmt.Sprintf("W: %d  B: %d  (%s)\n", p.Count(White), p.Count(Black), p))
	return sb.String()
}
