package solver

import (
	"context"

	"github.com/domino14/morris/board"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        for each child of node do
            α := max(α, alphabeta(child, depth − 1, α, β, FALSE))
            if α ≥ β then
                break (* β cut-off *)
        return α
    else
        for each child of node do
            β := min(β, alphabeta(child, depth − 1, α, β, TRUE))
            if α ≥ β then
                break (* α cut-off *)
        return β
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

func (s *Solver) alphabeta(ctx context.Context, depth, rootDepth int, maximizingPlayer bool,
	pos board.Position, α, β int, pv *PVLine) (int, uint64, error) {

	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if depth == 0 {
		pv.Clear()
		return s.calc.Evaluate(pos), 1, nil
	}

	children := s.gen.GenAll(pos, sideFor(maximizingPlayer))
	var nodes uint64
	if s.counting == UniformCounting {
		nodes = 1
	}
	for idx := range children {
		childPV := PVLine{}
		childValue, childNodes, err := s.alphabeta(ctx, depth-1, rootDepth, !maximizingPlayer, children[idx], α, β, &childPV)
		if err != nil {
			return 0, 0, err
		}
		nodes += childNodes
		if depth == rootDepth {
			s.recordRootChild(children[idx], childValue, childNodes)
		}
		if maximizingPlayer {
			if s.counting == LiteralCounting {
				nodes++
			}
			if childValue > α {
				α = childValue
				pv.Update(children[idx], childPV, α)
			}
		} else {
			if childValue < β {
				β = childValue
				pv.Update(children[idx], childPV, β)
			}
		}
		if α >= β {
			break
		}
	}
	value := β
	if maximizingPlayer {
		value = α
	}
	return value, nodes, nil
}
