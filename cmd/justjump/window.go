package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/just-jump/internal/platform/gui"
	"github.com/vovakirdan/just-jump/internal/storage"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Just Jump in a desktop window at the logical resolution of the
config (640x480 by default), scaled by --scale.

Controls:
  Space/Up/W - Jump, start, continue
  Esc        - Quit (title, playing, game over)

Examples:
  justjump window
  justjump window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per logical pixel")
}

func runWindow(_ *cobra.Command, _ []string) error {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("justjump", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	err = gui.Run(gui.Options{
		Runner:  runnerCfg,
		Runtime: runtimeConfig(runnerCfg.Screen.Width, runnerCfg.Screen.Height),
		Store:   store,
		Player:  localPlayer(),
		Logger:  logger,
		Scale:   flagScale,
	})
	if err != nil {
		return fmt.Errorf("error running window: %w", err)
	}
	return nil
}
