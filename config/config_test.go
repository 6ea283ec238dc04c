package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetInt(ConfigThreads), 1)
	is.Equal(cfg.GetString(ConfigEvaluator), "standard")
	is.Equal(cfg.GetString(ConfigNodeCounting), "literal")
	is.Equal(cfg.GetBool(ConfigDebug), false)
	is.Equal(cfg.GetFloat64(ConfigEvalCacheMemoryFraction), 0.01)
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--threads", "4", "--evaluator=improved", "in.txt", "out.txt", "3"})
	is.NoErr(err)
	is.Equal(cfg.GetInt(ConfigThreads), 4)
	is.Equal(cfg.GetString(ConfigEvaluator), "improved")
	is.Equal(cfg.GetString(ConfigSide), "white")
	is.Equal(cfg.Args(), []string{"in.txt", "out.txt", "3"})
}

func TestLoadEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("MORRIS_NODE_COUNTING", "uniform")
	t.Setenv("MORRIS_THREADS", "2")
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--threads=3"}))
	is.Equal(cfg.GetString(ConfigNodeCounting), "uniform")
	// flags win over the environment
	is.Equal(cfg.GetInt(ConfigThreads), 3)
}

func TestLoadBadFlag(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.True(cfg.Load([]string{"--no-such-flag"}) != nil)
}
