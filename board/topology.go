package board

// Point numbering, on a 7x7 grid with the origin at the bottom left:
//
//	20 ---------- 21 ---------- 22
//	|  17 ------- 18 ------- 19  |
//	|  |  14 ---- 15 ---- 16  |  |
//	8 - 9 - 10          11 - 12 - 13
//	|  |   6 ------------ 7   |  |
//	|  3 -------- 4 -------- 5   |
//	0 ----------- 1 ----------- 2
//
// The corners are additionally joined along the diagonals, so 0-3-6,
// 2-5-7, 14-17-20 and 16-19-22 are lines as well.

var neighbors = [NumPoints][]int{
	0:  {1, 3, 8},
	1:  {0, 2, 4},
	2:  {1, 5, 13},
	3:  {0, 4, 6, 9},
	4:  {1, 3, 5},
	5:  {2, 4, 7, 12},
	6:  {3, 7, 10},
	7:  {5, 6, 11},
	8:  {0, 9, 20},
	9:  {3, 8, 10, 17},
	10: {6, 9, 14},
	11: {7, 12, 16},
	12: {5, 11, 13, 19},
	13: {2, 12, 22},
	14: {10, 15, 17},
	15: {14, 16, 18},
	16: {11, 15, 19},
	17: {9, 14, 18, 20},
	18: {15, 17, 19, 21},
	19: {12, 16, 18, 22},
	20: {8, 17, 21},
	21: {18, 20, 22},
	22: {13, 19, 21},
}

// Mills lists every line of three points.
var Mills = [][3]int{
	{0, 1, 2},
	{0, 3, 6},
	{0, 8, 20},
	{2, 5, 7},
	{2, 13, 22},
	{3, 4, 5},
	{3, 9, 17},
	{5, 12, 19},
	{6, 10, 14},
	{7, 11, 16},
	{8, 9, 10},
	{11, 12, 13},
	{14, 15, 16},
	{14, 17, 20},
	{15, 18, 21},
	{16, 19, 22},
	{17, 18, 19},
	{20, 21, 22},
}

// millPartners holds, for each point, the other two members of every mill
// that contains it.
var millPartners [NumPoints][][2]int

func init() {
	for _, m := range Mills {
		for i, p := range m {
			millPartners[p] = append(millPartners[p], [2]int{m[(i+1)%3], m[(i+2)%3]})
		}
	}
}

// Neighbors returns the points joined to i by an edge. The returned slice
// is shared and must not be modified.
func Neighbors(i int) []int {
	return neighbors[i]
}

// Adjacent returns true if i and j share an edge.
func Adjacent(i, j int) bool {
	for _, n := range neighbors[i] {
		if n == j {
			return true
		}
	}
	return false
}

// ClosesMill returns true if point i is occupied and forms a mill with the
// other two points of at least one of its lines.
func ClosesMill(i int, pos Position) bool {
	c := pos[i]
	if c == Empty {
		return false
	}
	return formsMill(i, c, pos)
}

func formsMill(i int, c Point, pos Position) bool {
	for _, pair := range millPartners[i] {
		if pos[pair[0]] == c && pos[pair[1]] == c {
			return true
		}
	}
	return false
}

// PotentialMills counts the empty points where a piece of the given side
// would complete a mill.
func (p Position) PotentialMills(side Point) int {
	n := 0
	for i, v := range p {
		if v == Empty && formsMill(i, side, p) {
			n++
		}
	}
	return n
}
