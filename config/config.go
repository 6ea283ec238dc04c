package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug                   = "debug"
	ConfigThreads                 = "threads"
	ConfigEvaluator               = "evaluator"
	ConfigNodeCounting            = "node-counting"
	ConfigSide                    = "side"
	ConfigEvalCache               = "eval-cache"
	ConfigEvalCacheMemoryFraction = "eval-cache-memory-fraction"
	ConfigTimeLimit               = "time-limit"
	ConfigSearchLogPath           = "search-log-path"
	ConfigSVGPath                 = "svg-path"
	ConfigHistoryFile             = "history-file"
	ConfigComparePositions        = "compare-positions"
	ConfigComparePlies            = "compare-plies"
	ConfigCompareReportPath       = "compare-report-path"
)

type Config struct {
	*viper.Viper
	args []string
}

// DefaultConfig returns a config with every default set and nothing read
// from the command line or the environment.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigEvaluator, "standard")
	c.SetDefault(ConfigNodeCounting, "literal")
	c.SetDefault(ConfigSide, "white")
	c.SetDefault(ConfigEvalCache, false)
	c.SetDefault(ConfigEvalCacheMemoryFraction, 0.01)
	c.SetDefault(ConfigTimeLimit, 0)
	c.SetDefault(ConfigSearchLogPath, "")
	c.SetDefault(ConfigSVGPath, "")
	c.SetDefault(ConfigHistoryFile, "/tmp/morris_readline.tmp")
	c.SetDefault(ConfigComparePositions, 50)
	c.SetDefault(ConfigComparePlies, 8)
	c.SetDefault(ConfigCompareReportPath, "")
}

// Load parses flags from args and reads MORRIS_* environment variables.
// Flags win over the environment, which wins over defaults. Arguments
// that are not flags are kept and available from Args.
func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	c.setDefaults()

	fs := pflag.NewFlagSet("morris", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigThreads, 1, "number of goroutines used to split the root of the search")
	fs.String(ConfigEvaluator, "standard", "static evaluator: standard or improved")
	fs.String(ConfigNodeCounting, "literal", "node counting: literal or uniform")
	fs.String(ConfigSide, "white", "side to move at the root: white or black")
	fs.Bool(ConfigEvalCache, false, "memoize static evaluations")
	fs.Float64(ConfigEvalCacheMemoryFraction, 0.01, "fraction of system memory for the evaluation cache")
	fs.Int(ConfigTimeLimit, 0, "search time limit in seconds; 0 means no limit")
	fs.String(ConfigSearchLogPath, "", "write a YAML log of the root moves to this path")
	fs.String(ConfigSVGPath, "", "render the chosen position as SVG to this path")
	fs.String(ConfigHistoryFile, "/tmp/morris_readline.tmp", "shell history file")
	fs.Int(ConfigComparePositions, 50, "random positions to compare when no board file is given")
	fs.Int(ConfigComparePlies, 8, "random plies played from the empty board to make each compared position")
	fs.String(ConfigCompareReportPath, "", "write the comparison report as YAML to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("MORRIS")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	// Only flags that were actually given should override the environment.
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err == nil {
			err = c.BindPFlag(f.Name, f)
		}
	})
	return err
}

// Args returns the positional arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings is printed at startup.
func (c *Config) SanitizedSettings() string {
	var sb strings.Builder
	for _, k := range c.AllKeys() {
		sb.WriteString(fmt.Sprintf("%s=%v ", k, c.Get(k)))
	}
	return strings.TrimSpace(sb.String())
}
