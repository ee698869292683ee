// Package config loads settings from flags and TICTACTOE_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug           = "debug"
	ConfigBotPlaysX       = "bot-plays-x"
	ConfigBotPlaysO       = "bot-plays-o"
	ConfigTiebreak        = "tiebreak"
	ConfigSeed            = "seed"
	ConfigAutoplayGames   = "autoplay-games"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigAutoplayLogfile = "autoplay-logfile"
	ConfigCPUProfile      = "cpu-profile"
	ConfigMemProfile      = "mem-profile"
)

type Config struct {
	*viper.Viper
	// rest holds the positional arguments left over after flag parsing.
	rest []string
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("tictactoe", pflag.ContinueOnError)
	// flags stop at the first positional argument, which starts a command
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Bool(ConfigBotPlaysX, false, "the bot plays X in new games")
	fs.Bool(ConfigBotPlaysO, true, "the bot plays O in new games")
	fs.String(ConfigTiebreak, "random", "how the bot chooses among equally good moves: random or lowest")
	fs.Uint64(ConfigSeed, 0, "seed for the random tiebreak; 0 means unseeded")
	fs.Int(ConfigAutoplayGames, 1000, "number of games for autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "number of autoplay workers")
	fs.String(ConfigAutoplayLogfile, "/tmp/tictactoe_autoplay.txt", "file that autoplay writes finished games to")
	fs.String(ConfigCPUProfile, "", "file to write a cpu profile to")
	fs.String(ConfigMemProfile, "", "file to write a memory profile to")
	return fs
}

// Load parses args and the environment. Flags win over environment
// variables, which win over defaults.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("tictactoe")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	c.rest = fs.Args()
	return c.validate()
}

func (c *Config) validate() error {
	switch c.GetString(ConfigTiebreak) {
	case "random", "lowest":
	default:
		return fmt.Errorf("%v must be random or lowest, got %q", ConfigTiebreak, c.GetString(ConfigTiebreak))
	}
	if c.GetInt(ConfigAutoplayThreads) < 1 {
		return fmt.Errorf("%v must be at least 1", ConfigAutoplayThreads)
	}
	return nil
}

// Args returns the positional arguments, which the shell runs as a single
// command.
func (c *Config) Args() []string {
	return c.rest
}

// DefaultConfig returns the defaults, ignoring the environment.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	fs := newFlagSet()
	fs.VisitAll(func(f *pflag.Flag) {
		c.SetDefault(f.Name, f.DefValue)
	})
	return c
}

// SanitizedSettings returns every setting for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
