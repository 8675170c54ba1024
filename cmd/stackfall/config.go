package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/plus3/stackfall/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	cellSize        int
	configFile      string
	debug           bool
	height          int
	logFormat       string
	resultsDuration time.Duration
	seed            uint64
	verbose         bool
	version         bool
	width           int

	players []string
}

func (c *Config) validate() error {
	if c.width < 1 || c.height < 1 {
		return fmt.Errorf("invalid window size (must be positive): %dx%d", c.width, c.height)
	}
	if c.cellSize < 0 {
		return fmt.Errorf("invalid cell size (must be 0 or positive): %d", c.cellSize)
	}
	if c.resultsDuration < 0 {
		return fmt.Errorf("invalid results duration (must not be negative): %s", c.resultsDuration)
	}
	if c.logFormat != "text" && c.logFormat != "json" {
		return fmt.Errorf("invalid log format (must be text or json): %q", c.logFormat)
	}
	if len(c.players) > session.MaxPlayers {
		return fmt.Errorf("too many players (at most %d): %d", session.MaxPlayers, len(c.players))
	}
	return nil
}

// names returns the player names, one anonymous player when none are given.
func (c *Config) names() []string {
	if len(c.players) == 0 {
		return []string{""}
	}
	return c.players
}

func (c *Config) newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if c.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if c.logFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// applyViper copies values viper knows about into flags the user did not set.
func applyViper(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newCmd(cfg *Config, run func(context.Context, *Config) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("STACKFALL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "stackfall [player]...",
		Short:         "Falling block puzzle for up to four players on one screen.",
		Args:          cobra.MaximumNArgs(session.MaxPlayers),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.configFile != "" {
				v.SetConfigFile(cfg.configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
				applyViper(v, cmd.Flags())
			}

			cfg.players = args
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVar(&cfg.cellSize, "cell-size", 0, "board cell size in pixels, 0 picks one from the player count (env: STACKFALL_CELL_SIZE)")
	fs.StringVarP(&cfg.configFile, "config", "c", "", "path to a yaml, toml or json config file (env: STACKFALL_CONFIG)")
	fs.BoolVarP(&cfg.debug, "debug", "d", false, "show the debug overlay (env: STACKFALL_DEBUG)")
	fs.IntVar(&cfg.height, "height", 720, "window height (env: STACKFALL_HEIGHT)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format, text or json (env: STACKFALL_LOG_FORMAT)")
	fs.DurationVar(&cfg.resultsDuration, "results-duration", 5*time.Second, "how long the winner is shown at exit (env: STACKFALL_RESULTS_DURATION)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for piece draws, 0 picks one from the clock (env: STACKFALL_SEED)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: STACKFALL_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: STACKFALL_VERSION)")
	fs.IntVar(&cfg.width, "width", 1280, "window width (env: STACKFALL_WIDTH)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
	})
	applyViper(v, fs)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("stackfall v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
