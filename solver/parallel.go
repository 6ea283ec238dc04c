package solver

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/equity"
)

type childResult struct {
	value int
	nodes uint64
	pv    PVLine
}

// solveParallel splits the root's children over s.threads goroutines.
// Minimax gives exactly the serial answer and node count. Alpha-beta
// searches the first child alone to get a bound, then searches the rest in
// parallel with that bound. The chosen move and score match the serial
// search; the node count usually does not, since the later children do
// not see each other's improvements.
func (s *Solver) solveParallel(ctx context.Context, pos board.Position, depth int) (*Result, error) {
	if cc, ok := s.calc.(*equity.CachedCalculator); ok {
		cc.Cache().SetMultiThreadedMode()
	}
	children := s.gen.GenAll(pos, board.White)
	log.Debug().Int("root-children", len(children)).Int("threads", s.threads).Msg("parallel-root-split")

	results := make([]childResult, len(children))
	α := MinScore
	first := 0
	if s.algorithm == AlphaBeta && len(children) > 0 {
		var pv PVLine
		v, n, err := s.alphabeta(ctx, depth-1, depth, false, children[0], MinScore, MaxScore, &pv)
		if err != nil {
			return nil, err
		}
		results[0] = childResult{value: v, nodes: n, pv: pv}
		if v > α {
			α = v
		}
		first = 1
	}
	if α >= MaxScore {
		// The first child is already a cutoff; nothing else is searched.
		children, results = children[:first], results[:first]
	} else if first < len(children) {
		if err := s.searchChildren(ctx, children, results, first, depth, α); err != nil {
			return nil, err
		}
	}

	// Scan in generation order so ties resolve as in the serial search.
	var nodes uint64
	if s.counting == UniformCounting {
		nodes = 1
	}
	value := MinScore
	var pv PVLine
	for i, r := range results {
		nodes += r.nodes
		if s.algorithm == AlphaBeta && s.counting == LiteralCounting {
			nodes++
		}
		s.recordRootChild(children[i], r.value, r.nodes)
		if r.value > value {
			value = r.value
			pv.Update(children[i], r.pv, value)
		}
		if s.algorithm == AlphaBeta && value >= MaxScore {
			break
		}
	}
	return &Result{Position: pv.First(), Score: value, Nodes: nodes, PV: pv}, nil
}

// searchChildren fills results[first:] with the values of the root's
// children, searched as the minimizing side.
func (s *Solver) searchChildren(ctx context.Context, children []board.Position,
	results []childResult, first, depth, α int) error {

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for i := first; i < len(children); i++ {
		g.Go(func() error {
			var (
				v   int
				n   uint64
				pv  PVLine
				err error
			)
			if s.algorithm == AlphaBeta {
				v, n, err = s.alphabeta(gctx, depth-1, depth, false, children[i], α, MaxScore, &pv)
			} else {
				v, n, err = s.minimax(gctx, depth-1, depth, false, children[i], &pv)
			}
			if err != nil {
				return err
			}
			results[i] = childResult{value: v, nodes: n, pv: pv}
			return nil
		})
	}
	return g.Wait()
}
