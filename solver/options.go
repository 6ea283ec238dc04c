package solver

import (
	"github.com/domino14/morris/config"
	"github.com/domino14/morris/equity"
	"github.com/domino14/morris/movegen"
)

// NewSolverFromConfig builds a solver with the evaluator, node counting,
// side, thread count and evaluation cache taken from cfg.
func NewSolverFromConfig(cfg *config.Config, mode movegen.Mode, algorithm Algorithm) (*Solver, error) {
	kind, err := equity.KindFromString(cfg.GetString(config.ConfigEvaluator))
	if err != nil {
		return nil, err
	}
	counting, err := NodeCountingFromString(cfg.GetString(config.ConfigNodeCounting))
	if err != nil {
		return nil, err
	}
	side, err := SideFromString(cfg.GetString(config.ConfigSide))
	if err != nil {
		return nil, err
	}

	s := NewSolver(mode, algorithm)
	calc := equity.NewCalculator(mode, kind)
	if cfg.GetBool(config.ConfigEvalCache) {
		calc = equity.NewCachedCalculator(calc, equity.NewEvalCache(cfg.GetFloat64(config.ConfigEvalCacheMemoryFraction)))
	}
	s.SetCalculator(calc)
	s.SetNodeCounting(counting)
	s.SetSide(side)
	s.SetThreads(cfg.GetInt(config.ConfigThreads))
	return s, nil
}
