// Package solver finds the best move for a position using depth-limited
// minimax, with or without alpha-beta pruning.
package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/equity"
	"github.com/domino14/morris/movegen"
)

const (
	// MinScore is the maximizer's starting value; a result still holding
	// it means no move was found.
	MinScore = math.MinInt32
	// MaxScore is the minimizer's starting value.
	MaxScore = math.MaxInt32
)

var (
	ErrInvalidDepth     = errors.New("search depth must not be negative")
	ErrUnknownAlgorithm = errors.New("unknown algorithm; use minimax or ab")
	ErrUnknownCounting  = errors.New("unknown node counting; use literal or uniform")
	ErrUnknownSide      = errors.New("unknown side; use white or black")
)

type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	if a == AlphaBeta {
		return "alphabeta"
	}
	return "minimax"
}

func AlgorithmFromString(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax", "mm":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return AlphaBeta, nil
	}
	return Minimax, ErrUnknownAlgorithm
}

// NodeCounting decides how visited nodes are tallied.
type NodeCounting int

const (
	// LiteralCounting counts every leaf once and, in addition, adds one
	// per child searched from a minimizing node (plain minimax) or from a
	// maximizing node (alpha-beta). These are the numbers existing
	// reference outputs were produced with.
	LiteralCounting NodeCounting = iota
	// UniformCounting counts every node exactly once.
	UniformCounting
)

func (n NodeCounting) String() string {
	if n == UniformCounting {
		return "uniform"
	}
	return "literal"
}

func NodeCountingFromString(s string) (NodeCounting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return LiteralCounting, nil
	case "uniform":
		return UniformCounting, nil
	}
	return LiteralCounting, ErrUnknownCounting
}

func SideFromString(s string) (board.Point, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "w", "white":
		return board.White, nil
	case "b", "black":
		return board.Black, nil
	}
	return board.Empty, ErrUnknownSide
}

// Result is the outcome of one search.
type Result struct {
	// Position is the chosen successor, or nil if the side to move had no
	// legal move.
	Position *board.Position
	// Score is from the point of view of the side that moved. With no
	// move it holds MinScore.
	Score int
	Nodes uint64
	Side  board.Point
	// PV starts with Position and continues with the expected replies.
	PV PVLine
}

func (r *Result) NoMove() bool {
	return r.Position == nil
}

func (r *Result) String() string {
	pos := "none"
	if r.Position != nil {
		pos = r.Position.String()
	}
	return fmt.Sprintf("<result pos: %s score: %d nodes: %d>", pos, r.Score, r.Nodes)
}

// Solver holds the search configuration. A Solver may be reused for many
// searches, but not concurrently.
type Solver struct {
	mode      movegen.Mode
	algorithm Algorithm
	gen       movegen.MoveGenerator
	calc      equity.Calculator
	counting  NodeCounting
	side      board.Point
	threads   int

	logStream io.Writer
	rootLog   []RootChild
}

// NewSolver returns a single-threaded solver for White using the standard
// evaluator for the mode.
func NewSolver(mode movegen.Mode, algorithm Algorithm) *Solver {
	return &Solver{
		mode:      mode,
		algorithm: algorithm,
		gen:       movegen.NewGenerator(mode),
		calc:      equity.NewCalculator(mode, equity.Standard),
		side:      board.White,
		threads:   1,
	}
}

func (s *Solver) SetCalculator(c equity.Calculator) {
	s.calc = c
}

func (s *Solver) Calculator() equity.Calculator {
	return s.calc
}

func (s *Solver) SetNodeCounting(n NodeCounting) {
	s.counting = n
}

// SetSide sets the side to move at the root.
func (s *Solver) SetSide(side board.Point) {
	s.side = side
}

func (s *Solver) SetThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	s.threads = threads
}

// SetLogStream makes the solver write a YAML log of every root child
// after each search.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

func (s *Solver) Mode() movegen.Mode {
	return s.mode
}

func (s *Solver) Algorithm() Algorithm {
	return s.algorithm
}

// Solve searches pos to the given depth for the configured side.
func (s *Solver) Solve(ctx context.Context, pos board.Position, depth int) (*Result, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	log.Debug().
		Str("mode", s.mode.String()).
		Str("algorithm", s.algorithm.String()).
		Str("evaluator", s.calc.Type()).
		Str("counting", s.counting.String()).
		Str("side", s.side.String()).
		Int("depth", depth).
		Int("threads", s.threads).
		Str("pos", pos.String()).
		Msg("solve-config")

	tstart := time.Now()
	// Everything below searches for White; Black's position is mirrored
	// and the answer mirrored back.
	if s.side == board.Black {
		pos = pos.ColorSwap()
	}
	s.rootLog = s.rootLog[:0]

	var res *Result
	var err error
	if s.threads > 1 && depth > 0 {
		res, err = s.solveParallel(ctx, pos, depth)
	} else {
		res, err = s.solveSerial(ctx, pos, depth)
	}
	if err != nil {
		return nil, err
	}
	if s.side == board.Black {
		res.PV.colorSwap()
		res.Position = res.PV.First()
	}
	res.Side = s.side

	ev := log.Info()
	if res.Position != nil {
		ev = ev.Str("best", res.Position.String()).Str("best-id", res.Position.ID())
	}
	ev.Int("score", res.Score).
		Uint64("nodes", res.Nodes).
		Bool("no-move", res.NoMove()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")

	if s.logStream != nil {
		if err := s.writeRootLog(res); err != nil {
			log.Err(err).Msg("root-log-write-error")
		}
	}
	return res, nil
}

func (s *Solver) solveSerial(ctx context.Context, pos board.Position, depth int) (*Result, error) {
	var (
		score int
		nodes uint64
		pv    PVLine
		err   error
	)
	switch s.algorithm {
	case AlphaBeta:
		score, nodes, err = s.alphabeta(ctx, depth, depth, true, pos, MinScore, MaxScore, &pv)
	default:
		score, nodes, err = s.minimax(ctx, depth, depth, true, pos, &pv)
	}
	if err != nil {
		return nil, err
	}
	return &Result{Position: pv.First(), Score: score, Nodes: nodes, PV: pv}, nil
}

func sideFor(maximizingPlayer bool) board.Point {
	if maximizingPlayer {
		return board.White
	}
	return board.Black
}
