// justjump is a single-screen endless runner: jump the cacti, clear the pits,
// and survive five ever faster stages.
//
// Usage:
//
//	justjump                 - Play in the terminal
//	justjump play            - Play in the terminal
//	justjump window          - Play in a desktop window
//	justjump serve           - Start SSH server for remote play
//	justjump stages          - Show the stage table
//	justjump config          - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Host poll rate (default: 120)
//	--seed <value>        - RNG seed for reproducible worlds
//	--config <path>       - Custom runner config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log <path>          - Write game events to a log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/just-jump/internal/config"
	"github.com/vovakirdan/just-jump/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "justjump",
	Short: "Just Jump - an endless runner for your terminal",
	Long: `Just Jump is a single-screen endless runner. Jump over cacti and
pits while the world scrolls ever faster across five stages.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  stages   - Show the stage table
  config   - Print the default config YAML

Examples:
  justjump
  justjump --difficulty hard
  justjump window --scale 2
  justjump serve --ssh :2222
  justjump stages --config ./my-runner.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 120, "Host poll rate (iterations per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write game events to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRunnerConfig resolves the runner config and applies the difficulty preset.
func loadRunnerConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig builds the host settings for a screen of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.PollRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

// openLogger returns a logger writing to --log, or fallback when the flag is
// unset. The returned close function is never nil.
func openLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	if flagLog == "" {
		return log.NewWithOptions(fallback, log.Options{
			ReportTimestamp: true,
			Prefix:          prefix,
		}), noop, nil
	}

	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f.Close, nil
}
