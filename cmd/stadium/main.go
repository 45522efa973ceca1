// stadium is a terminal race simulator: up to a hundred runners, two laps of
// a ten-lane stadium oval, a director camera and live commentary.
//
// Usage:
//
//	stadium run            - Watch a race in the terminal
//	stadium simulate       - Run a race headless and print the standings
//	stadium serve          - Start SSH server, one race per session
//	stadium commentators   - List commentary providers
//
// Global flags:
//
//	--runners <n>        - Runner count, 1-100 (default: from config)
//	--seed <value>       - RNG seed for reproducible races
//	--config <path>      - Custom stadium config YAML
//	--pace <preset>      - calm, normal or frantic
//	--commentator <name> - Commentary provider (default: from config)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stadium/internal/commentary"
	"github.com/vovakirdan/tui-stadium/internal/config"
)

var (
	// Global flags
	flagRunners     int
	flagSeed        int64
	flagConfig      string
	flagPace        string
	flagCommentator string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stadium",
	Short: "Stadium - watch a hundred-runner race in your terminal",
	Long: `Stadium simulates a two-lap race on a ten-lane stadium oval and
films it with a director camera that follows the leader.

Available commands:
  run          - Watch a race interactively
  simulate     - Run a race headless and print the standings
  serve        - Start SSH server, every session gets its own race
  commentators - List commentary providers

Examples:
  stadium run
  stadium run --runners 100 --pace frantic
  stadium simulate --seed 42
  stadium serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagRunners, "runners", 0, "Runner count, 1-100 (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom stadium config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Pace preset: calm, normal, frantic")
	rootCmd.PersistentFlags().StringVar(&flagCommentator, "commentator", "", "Commentary provider (see 'stadium commentators')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(commentatorsCmd)
}

// loadStadium resolves the stadium config from the global flags.
func loadStadium() (config.StadiumConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPace != "" {
		preset := config.PacePreset(flagPace)
		if !preset.Valid() {
			return cfg, fmt.Errorf("unknown pace %q (want calm, normal or frantic)", flagPace)
		}
		config.ApplyPacePreset(&cfg.Race, preset)
	}

	if flagRunners != 0 {
		cfg.Race.Runners = config.ClampRunners(flagRunners)
	}

	if flagCommentator != "" {
		if !commentary.Exists(flagCommentator) {
			return cfg, fmt.Errorf("%w %q", commentary.ErrUnknownProvider, flagCommentator)
		}
		cfg.Commentary.Provider = flagCommentator
	}

	return cfg, nil
}

// newLogger builds the CLI logger. fallback receives logs when no
// --log-file is given.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "stadium",
	})
	return logger, closeFn, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
