package solver

import (
	"context"

	"github.com/domino14/morris/board"
)

/*
function minimax(node, depth, maximizingPlayer) is
    if depth = 0 then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, minimax(child, depth − 1, FALSE))
    else
        value := +∞
        for each child of node do
            value := min(value, minimax(child, depth − 1, TRUE))
    return value
*/

// minimax returns the value of pos and the number of nodes visited, and
// fills pv with the line of best play; pv stays empty at a leaf or when
// there are no moves. rootDepth is only used to record root children in
// the search log.
func (s *Solver) minimax(ctx context.Context, depth, rootDepth int, maximizingPlayer bool,
	pos board.Position, pv *PVLine) (int, uint64, error) {

	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if depth == 0 {
		pv.Clear()
		return s.calc.Evaluate(pos), 1, nil
	}

	children := s.gen.GenAll(pos, sideFor(maximizingPlayer))
	value := MinScore
	if !maximizingPlayer {
		value = MaxScore
	}
	var nodes uint64
	if s.counting == UniformCounting {
		nodes = 1
	}
	for idx := range children {
		childPV := PVLine{}
		childValue, childNodes, err := s.minimax(ctx, depth-1, rootDepth, !maximizingPlayer, children[idx], &childPV)
		if err != nil {
			return 0, 0, err
		}
		nodes += childNodes
		if depth == rootDepth {
			s.recordRootChild(children[idx], childValue, childNodes)
		}
		if maximizingPlayer {
			// Strictly greater: the first child reaching the best value
			// is the one kept.
			if childValue > value {
				value = childValue
				pv.Update(children[idx], childPV, value)
			}
		} else {
			if s.counting == LiteralCounting {
				nodes++
			}
			if childValue < value {
				value = childValue
				pv.Update(children[idx], childPV, value)
			}
		}
	}
	return value, nodes, nil
}
