package stats

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/equity"
	"github.com/domino14/morris/movegen"
	"github.com/domino14/morris/solver"
)

// Comparison is the outcome of searching one position with both
// algorithms.
type Comparison struct {
	Position       string  `yaml:"position"`
	Best           string  `yaml:"best"`
	Score          int     `yaml:"score"`
	Agree          bool    `yaml:"agree"`
	MinimaxNodes   uint64  `yaml:"minimax_nodes"`
	AlphaBetaNodes uint64  `yaml:"alphabeta_nodes"`
	Ratio          float64 `yaml:"ratio"`
	MinimaxSecs    float64 `yaml:"minimax_secs"`
	AlphaBetaSecs  float64 `yaml:"alphabeta_secs"`
}

// Report summarises a batch of comparisons. Ratio is alpha-beta nodes
// over minimax nodes, so smaller means more pruning.
type Report struct {
	Mode                string       `yaml:"mode"`
	Depth               int          `yaml:"depth"`
	Evaluator           string       `yaml:"evaluator"`
	Positions           int          `yaml:"positions"`
	Disagreements       int          `yaml:"disagreements"`
	TotalMinimaxNodes   uint64       `yaml:"total_minimax_nodes"`
	TotalAlphaBetaNodes uint64       `yaml:"total_alphabeta_nodes"`
	MeanRatio           float64      `yaml:"mean_ratio"`
	StdevRatio          float64      `yaml:"stdev_ratio"`
	MedianRatio         float64      `yaml:"median_ratio"`
	RatioCI95           [2]float64   `yaml:"ratio_ci95"`
	SizeRatioCorr       float64      `yaml:"size_ratio_correlation"`
	Comparisons         []Comparison `yaml:"comparisons"`

	ratios []float64
}

// Comparer searches positions with plain minimax and alpha-beta and checks
// that they agree. Both searches count nodes uniformly so their counts are
// comparable.
type Comparer struct {
	mode    movegen.Mode
	depth   int
	kind    equity.Kind
	threads int
}

func NewComparer(mode movegen.Mode, depth int) *Comparer {
	return &Comparer{mode: mode, depth: depth, threads: 1}
}

func (c *Comparer) SetEvaluator(kind equity.Kind) {
	c.kind = kind
}

// SetThreads sets how many positions are compared at once.
func (c *Comparer) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	c.threads = threads
}

func (c *Comparer) newSolver(algorithm solver.Algorithm) *solver.Solver {
	s := solver.NewSolver(c.mode, algorithm)
	s.SetCalculator(equity.NewCalculator(c.mode, c.kind))
	s.SetNodeCounting(solver.UniformCounting)
	return s
}

func (c *Comparer) compareOne(ctx context.Context, pos board.Position) (*Comparison, error) {
	tstart := time.Now()
	mres, err := c.newSolver(solver.Minimax).Solve(ctx, pos, c.depth)
	if err != nil {
		return nil, err
	}
	mmSecs := time.Since(tstart).Seconds()

	tstart = time.Now()
	ares, err := c.newSolver(solver.AlphaBeta).Solve(ctx, pos, c.depth)
	if err != nil {
		return nil, err
	}
	abSecs := time.Since(tstart).Seconds()

	agree := mres.Score == ares.Score && mres.NoMove() == ares.NoMove()
	best := "none"
	if agree && !mres.NoMove() {
		agree = *mres.Position == *ares.Position
		best = mres.Position.String()
	}
	ratio := 1.0
	if mres.Nodes > 0 {
		ratio = float64(ares.Nodes) / float64(mres.Nodes)
	}
	if !agree {
		log.Warn().Str("pos", pos.String()).
			Int("minimax-score", mres.Score).
			Int("alphabeta-score", ares.Score).
			Msg("search-disagreement")
	}
	return &Comparison{
		Position:       pos.String(),
		Best:           best,
		Score:          mres.Score,
		Agree:          agree,
		MinimaxNodes:   mres.Nodes,
		AlphaBetaNodes: ares.Nodes,
		Ratio:          ratio,
		MinimaxSecs:    mmSecs,
		AlphaBetaSecs:  abSecs,
	}, nil
}

// Compare searches every position with both algorithms.
func (c *Comparer) Compare(ctx context.Context, positions []board.Position) (*Report, error) {
	results := make([]Comparison, len(positions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.threads)
	for i, pos := range positions {
		g.Go(func() error {
			cmp, err := c.compareOne(gctx, pos)
			if err != nil {
				return err
			}
			results[i] = *cmp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r := summarize(results)
	r.Mode = c.mode.String()
	r.Depth = c.depth
	r.Evaluator = c.kind.String()
	log.Info().Int("positions", r.Positions).
		Int("disagreements", r.Disagreements).
		Float64("mean-ratio", r.MeanRatio).
		Msg("comparison-done")
	return r, nil
}

func summarize(results []Comparison) *Report {
	r := &Report{
		Positions:   len(results),
		Comparisons: results,
	}
	r.Disagreements = lo.CountBy(results, func(c Comparison) bool { return !c.Agree })
	r.TotalMinimaxNodes = lo.SumBy(results, func(c Comparison) uint64 { return c.MinimaxNodes })
	r.TotalAlphaBetaNodes = lo.SumBy(results, func(c Comparison) uint64 { return c.AlphaBetaNodes })
	if len(results) == 0 {
		return r
	}

	r.ratios = lo.Map(results, func(c Comparison, _ int) float64 { return c.Ratio })
	running := &Statistic{}
	for _, ratio := range r.ratios {
		running.Push(ratio)
	}
	r.MeanRatio = running.Mean()
	r.StdevRatio = running.Stdev()
	lo95, hi95 := running.ConfidenceInterval(95)
	r.RatioCI95 = [2]float64{lo95, hi95}

	sorted := append([]float64(nil), r.ratios...)
	sort.Float64s(sorted)
	r.MedianRatio = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	if len(results) > 1 && r.StdevRatio > 0 {
		sizes := lo.Map(results, func(c Comparison, _ int) float64 { return float64(c.MinimaxNodes) })
		r.SizeRatioCorr = stat.Correlation(sizes, r.ratios, nil)
	}
	return r
}

// WriteHistogram draws the distribution of pruning ratios.
func (r *Report) WriteHistogram(w io.Writer) error {
	if len(r.ratios) == 0 {
		_, err := io.WriteString(w, "no positions\n")
		return err
	}
	if lo.Min(r.ratios) == lo.Max(r.ratios) {
		// Every bucket would have zero width.
		_, err := fmt.Fprintf(w, "all %d ratios are %.4f\n", len(r.ratios), r.ratios[0])
		return err
	}
	hist := histogram.Hist(10, r.ratios)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

func (r *Report) WriteYAML(w io.Writer) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func (r *Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mode %s, depth %d, evaluator %s, %d positions\n", r.Mode, r.Depth, r.Evaluator, r.Positions)
	fmt.Fprintf(&sb, "disagreements: %d\n", r.Disagreements)
	fmt.Fprintf(&sb, "nodes: minimax %d, alpha-beta %d\n", r.TotalMinimaxNodes, r.TotalAlphaBetaNodes)
	fmt.Fprintf(&sb, "alpha-beta/minimax node ratio: mean %.4f (95%% CI %.4f-%.4f), stdev %.4f, median %.4f\n",
		r.MeanRatio, r.RatioCI95[0], r.RatioCI95[1], r.StdevRatio, r.MedianRatio)
	fmt.Fprintf(&sb, "correlation of tree size with ratio: %.4f\n", r.SizeRatioCorr)
	return sb.String()
}
