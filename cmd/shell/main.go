package main

import (
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/domino14/morris/config"
	"github.com/domino14/morris/runner"
	"github.com/domino14/morris/shell"
)

var (
	GitVersion string
)

//go:embed morris.txt
var morrisbanner string

func main() {
	fmt.Println(morrisbanner)
	fmt.Println(GitVersion)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	runner.SetupLogging(cfg.GetBool(config.ConfigDebug))
	log.Info().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	if prof := os.Getenv("MORRIS_CPU_PROFILE"); prof != "" {
		f, err := os.Create(prof)
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg)
	go sc.Loop(sig)

	<-idleConnsClosed
	log.Info().Msg("shell shutting down")
}
