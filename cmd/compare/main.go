// Command compare searches a batch of positions with plain minimax and
// with alpha-beta, checks that both pick the same move and score, and
// reports how many nodes alpha-beta saved.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/config"
	"github.com/domino14/morris/equity"
	"github.com/domino14/morris/gameio"
	"github.com/domino14/morris/movegen"
	"github.com/domino14/morris/runner"
	"github.com/domino14/morris/stats"
)

const usage = "usage: compare [flags] <opening|game> <depth> [boards-file]"

func main() {
	os.Exit(run())
}

// run returns the exit status: 1 if the algorithms disagreed anywhere.
func run() int {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	runner.SetupLogging(cfg.GetBool(config.ConfigDebug))

	args := cfg.Args()
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}
	mode, err := movegen.ModeFromString(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("bad-mode")
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("bad-depth")
	}
	kind, err := equity.KindFromString(cfg.GetString(config.ConfigEvaluator))
	if err != nil {
		log.Fatal().Err(err).Msg("bad-evaluator")
	}

	var positions []board.Position
	if len(args) == 3 {
		positions, err = gameio.ReadBoards(args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("reading-boards")
		}
	} else {
		positions = stats.RandomPositions(cfg.GetInt(config.ConfigComparePositions),
			cfg.GetInt(config.ConfigComparePlies))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := stats.NewComparer(mode, depth)
	c.SetEvaluator(kind)
	c.SetThreads(cfg.GetInt(config.ConfigThreads))
	report, err := c.Compare(ctx, positions)
	if err != nil {
		log.Fatal().Err(err).Msg("compare-failed")
	}

	fmt.Print(report.Summary())
	if err := report.WriteHistogram(os.Stdout); err != nil {
		log.Err(err).Msg("histogram-error")
	}
	if path := cfg.GetString(config.ConfigCompareReportPath); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("report-create")
		}
		defer f.Close()
		if err := report.WriteYAML(f); err != nil {
			log.Fatal().Err(err).Msg("report-write")
		}
	}
	if report.Disagreements > 0 {
		return 1
	}
	return 0
}
