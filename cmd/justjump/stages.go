package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/just-jump/internal/config"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Show the stage table",
	Long: `Print the stage table after --config and --difficulty are applied.

Examples:
  justjump stages
  justjump stages --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runStages,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in runner config. Save it to
~/.justjump/configs/runner.yaml or ./configs/runner.yaml and edit it to
change the tuning.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Stdout
	},
}

func runStages(_ *cobra.Command, _ []string) error {
	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	preset, _ := config.ParsePreset(flagDifficulty) // Already validated
	fmt.Printf("Stages (%s, %d lives, %d points per obstacle)\n", preset, cfg.Lives, cfg.Scoring.PerObstacle)
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-8s  %-5s  %s\n", "Stage", "Speed", "Clear", "Pits")
	fmt.Printf("  %-5s  %-8s  %-5s  %s\n", "-----", "-----", "-----", "----")

	for i, st := range cfg.Stages {
		pits := "no"
		if st.Pits {
			pits = "yes"
		}
		fmt.Printf("  %-5d  %-8.1f  %-5d  %s\n", i+1, -st.ScrollSpeed, st.ClearScore, pits)
	}
	return nil
}
