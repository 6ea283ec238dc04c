package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/config"
	"github.com/domino14/morris/equity"
	"github.com/domino14/morris/gameio"
	"github.com/domino14/morris/movegen"
	"github.com/domino14/morris/solver"
)

const defaultSolveDepth = 3

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) setPosition(pos board.Position) {
	sc.pos = &pos
	sc.curGen = nil
	sc.lastResult = nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <board-file>")
	}
	pos, err := gameio.ReadBoard(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.setPosition(pos)
	return msg(pos.ToDisplayText()), nil
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: position <23-character board>")
	}
	pos, err := board.FromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.setPosition(pos)
	return msg(pos.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.pos == nil {
		return nil, errNoPosition
	}
	return msg(fmt.Sprintf("%s\nmode: %s  id: %s", sc.pos.ToDisplayText(), sc.mode, sc.pos.ID())), nil
}

func (sc *ShellController) setMode(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return msg("mode: " + sc.mode.String()), nil
	}
	mode, err := movegen.ModeFromString(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.mode = mode
	sc.curGen = nil
	return msg("mode set to " + mode.String()), nil
}

func sideOption(cmd *shellcmd, fallback string) (board.Point, error) {
	s, ok := cmd.options["side"]
	if !ok {
		s = fallback
	}
	return solver.SideFromString(s)
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.pos == nil {
		return nil, errNoPosition
	}
	side, err := sideOption(cmd, sc.cfg.GetString(config.ConfigSide))
	if err != nil {
		return nil, err
	}
	sc.curGen = movegen.NewGenerator(sc.mode).GenAll(*sc.pos, side)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d successors for %s (%s)\n", len(sc.curGen), side, sc.mode)
	for i, p := range sc.curGen {
		fmt.Fprintf(&sb, "%3d: %s  %s\n", i+1, p.String(), p.ID())
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// play makes a generated successor, or the last search result, the current
// position.
func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <n | best>")
	}
	if cmd.args[0] == "best" {
		if sc.lastResult == nil || sc.lastResult.NoMove() {
			return nil, errors.New("no search result to play; run `solve` first")
		}
		sc.setPosition(*sc.lastResult.Position)
		return msg(sc.pos.ToDisplayText()), nil
	}
	n, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(sc.curGen) {
		return nil, fmt.Errorf("no successor %d; run `gen` first", n)
	}
	sc.setPosition(sc.curGen[n-1])
	return msg(sc.pos.ToDisplayText()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if sc.pos == nil {
		return nil, errNoPosition
	}
	evaluator, ok := cmd.options["evaluator"]
	if !ok {
		evaluator = sc.cfg.GetString(config.ConfigEvaluator)
	}
	kind, err := equity.KindFromString(evaluator)
	if err != nil {
		return nil, err
	}
	calc := equity.NewCalculator(sc.mode, kind)
	return msg(fmt.Sprintf("%s: %d", calc.Type(), calc.Evaluate(*sc.pos))), nil
}

func (sc *ShellController) solverFor(cmd *shellcmd) (*solver.Solver, error) {
	algorithm := solver.AlphaBeta
	if a, ok := cmd.options["algorithm"]; ok {
		var err error
		if algorithm, err = solver.AlgorithmFromString(a); err != nil {
			return nil, err
		}
	}
	s, err := solver.NewSolverFromConfig(sc.cfg, sc.mode, algorithm)
	if err != nil {
		return nil, err
	}
	if _, ok := cmd.options["side"]; ok {
		side, err := sideOption(cmd, "")
		if err != nil {
			return nil, err
		}
		s.SetSide(side)
	}
	if v, ok := cmd.options["threads"]; ok {
		threads, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		s.SetThreads(threads)
	}
	if v, ok := cmd.options["counting"]; ok {
		counting, err := solver.NodeCountingFromString(v)
		if err != nil {
			return nil, err
		}
		s.SetNodeCounting(counting)
	}
	if v, ok := cmd.options["evaluator"]; ok {
		kind, err := equity.KindFromString(v)
		if err != nil {
			return nil, err
		}
		s.SetCalculator(equity.NewCalculator(sc.mode, kind))
	}
	return s, nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if sc.pos == nil {
		return nil, errNoPosition
	}
	depth := defaultSolveDepth
	if len(cmd.args) > 0 {
		var err error
		if depth, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	s, err := sc.solverFor(cmd)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if secs := sc.cfg.GetInt(config.ConfigTimeLimit); secs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(secs)*time.Second)
		defer cancel()
	}
	tstart := time.Now()
	res, err := s.Solve(ctx, *sc.pos, depth)
	if err != nil {
		return nil, err
	}
	sc.lastResult = res

	var sb strings.Builder
	sb.WriteString(gameio.FormatResult(res))
	if !res.NoMove() {
		sb.WriteString(res.Position.ToDisplayText())
		sb.WriteString("\n")
		sb.WriteString(res.PV.String())
	}
	fmt.Fprintf(&sb, "%s, depth %d, %.3fs", s.Algorithm(), depth, time.Since(tstart).Seconds())
	return msg(sb.String()), nil
}

func (sc *ShellController) svg(cmd *shellcmd) (*Response, error) {
	if sc.pos == nil {
		return nil, errNoPosition
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: svg <output-file>")
	}
	if err := gameio.WriteSVG(cmd.args[0], *sc.pos); err != nil {
		return nil, err
	}
	return msg("wrote " + cmd.args[0]), nil
}

// set changes a config setting for the rest of the session.
func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.cfg.SanitizedSettings()), nil
	}
	key := cmd.args[0]
	if !lo.Contains(sc.cfg.AllKeys(), key) {
		return nil, fmt.Errorf("unknown setting %q", key)
	}
	if len(cmd.args) == 1 {
		return msg(fmt.Sprintf("%s: %v", key, sc.cfg.Get(key))), nil
	}
	sc.cfg.Set(key, strings.Join(cmd.args[1:], " "))
	return msg(fmt.Sprintf("set %s to %v", key, sc.cfg.Get(key))), nil
}
