// Package runner drives the search executables: it reads the board file,
// runs the configured search and writes the result.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/morris/config"
	"github.com/domino14/morris/gameio"
	"github.com/domino14/morris/solver"
)

// SetupLogging installs the console logger used by every executable.
func SetupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

// Run executes prog with the positional arguments and settings in cfg.
func Run(ctx context.Context, cfg *config.Config, prog Program) (*solver.Result, error) {
	inv, err := ParseInvocation(cfg.Args())
	if err != nil {
		return nil, err
	}
	pos, err := gameio.ReadBoard(inv.InputFile)
	if err != nil {
		return nil, err
	}
	s, err := solver.NewSolverFromConfig(cfg, prog.Mode, prog.Algorithm)
	if err != nil {
		return nil, err
	}

	if logPath := cfg.GetString(config.ConfigSearchLogPath); logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		s.SetLogStream(f)
	}

	if secs := cfg.GetInt(config.ConfigTimeLimit); secs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(secs)*time.Second)
		defer cancel()
	}

	res, err := s.Solve(ctx, pos, inv.Depth)
	if err != nil {
		return nil, err
	}
	if res.NoMove() {
		log.Warn().Str("pos", pos.String()).Msg("no-legal-move")
	}
	if err := gameio.WriteResult(inv.OutputFile, res); err != nil {
		return nil, err
	}
	if svgPath := cfg.GetString(config.ConfigSVGPath); svgPath != "" && !res.NoMove() {
		if err := gameio.WriteSVG(svgPath, *res.Position); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Main is the entry point shared by the search executables.
func Main(prog Program) {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, prog.Usage())
		os.Exit(2)
	}
	SetupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := Run(ctx, cfg, prog)
	if err != nil {
		if len(cfg.Args()) != 3 {
			fmt.Fprintln(os.Stderr, prog.Usage())
		}
		log.Fatal().Err(err).Str("program", prog.Name).Msg("search-failed")
	}
	fmt.Print(gameio.FormatResult(res))
}
