package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/just-jump/internal/platform/tui"
	"github.com/vovakirdan/just-jump/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Just Jump in the terminal.

Controls:
  Space/Up/W - Jump, start, continue
  Esc        - Quit (title, playing, game over)
  Tab        - Run journal
  ?          - More keys
  Ctrl+C     - Exit immediately

Terminals report key repeats but not releases: a jump counts as released
a moment after the last repeat.

Difficulty options:
  easy   - Every stage scrolls 15% slower
  normal - The built-in stage table
  hard   - Every stage scrolls 20% faster

Examples:
  justjump play
  justjump play --difficulty easy
  justjump play --seed 42
  justjump play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs go to --log or nowhere.
	logger, closeLog, err := openLogger("justjump", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil { //#nosec G115 -- file descriptors fit in int
		width = w
		height = h
	}

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Runner:  runnerCfg,
		Runtime: runtimeConfig(width, height),
		Store:   store,
		Player:  localPlayer(),
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// localPlayer names local runs after the OS user.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
