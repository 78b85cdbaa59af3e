package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const runnerFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.justjump/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// A custom path that cannot be read, parsed, or validated is an error. Files
// found on the implicit search path are skipped when broken.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		cfg, err := readRunner(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(runnerFile); userCfgPath != "" {
		if cfg, err := readRunner(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := readRunner(filepath.Join("configs", runnerFile)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readRunner parses a YAML file on top of the hard-coded defaults, so a file
// only needs the keys it changes.
func readRunner(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".justjump", "configs", filename)
}

// Validate rejects tuning the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if len(c.Stages) == 0 {
		errs = append(errs, errors.New("at least one stage is required"))
	}
	for i, st := range c.Stages {
		if st.ScrollSpeed >= 0 {
			errs = append(errs, fmt.Errorf("stage %d: scroll_speed must be negative, got %g", i+1, st.ScrollSpeed))
		}
		if st.ClearScore <= 0 {
			errs = append(errs, fmt.Errorf("stage %d: clear_score must be positive, got %d", i+1, st.ClearScore))
		}
	}

	if c.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Lives))
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen must have a positive size, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %d", c.Player.Size))
	}
	if c.Timing.Tick <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick must be positive, got %s", c.Timing.Tick))
	}

	errs = append(errs,
		checkRange("obstacles height", c.Obstacles.MinHeight, c.Obstacles.MaxHeight),
		checkRange("obstacles spacing", c.Obstacles.MinSpacing, c.Obstacles.MaxSpacing),
		checkRange("ground start width", c.Ground.StartMinWidth, c.Ground.StartMaxWidth),
		checkRange("ground width", c.Ground.MinWidth, c.Ground.MaxWidth),
		checkRange("pit width", c.Ground.PitMinWidth, c.Ground.PitMaxWidth),
	)

	// Obstacles are placed at a random offset inside a new segment.
	if c.Ground.MinWidth <= c.Obstacles.Width {
		errs = append(errs, fmt.Errorf("ground.min_width (%d) must exceed obstacles.width (%d)", c.Ground.MinWidth, c.Obstacles.Width))
	}
	errs = append(errs, c.checkGroundSpan())

	if c.Obstacles.SpawnOdds <= 0 || c.Ground.PitOdds <= 0 {
		errs = append(errs, errors.New("spawn_odds and pit_odds must be positive"))
	}

	return errors.Join(errs...)
}

// checkGroundSpan checks that the ground ring reaches far enough. The stage
// layout must cover the screen. Just before a recycle the leftmost segment
// ends near x=0, so the other GroundSegments-1 segments are all that extends
// the ring: solid ground alone must reach the right edge, and with pits the
// ring must at least stay under the player.
func (c RunnerConfig) checkGroundSpan() error {
	g := c.Ground
	rest := GroundSegments - 1
	footing := int(c.Player.StartX) + c.Player.Size

	var errs []error
	if GroundSegments*g.StartMinWidth < c.Screen.Width {
		errs = append(errs, fmt.Errorf("%d segments of ground.start_min_width (%d) do not cover screen.width (%d)",
			GroundSegments, g.StartMinWidth, c.Screen.Width))
	}
	if rest*g.MinWidth < c.Screen.Width {
		errs = append(errs, fmt.Errorf("%d segments of ground.min_width (%d) do not cover screen.width (%d)",
			rest, g.MinWidth, c.Screen.Width))
	}
	if rest*min(g.MinWidth, g.PitMinWidth) <= footing {
		errs = append(errs, fmt.Errorf("%d segments of ground.pit_min_width (%d) do not reach past the player (%d)",
			rest, min(g.MinWidth, g.PitMinWidth), footing))
	}
	return errors.Join(errs...)
}

// checkRange validates a half-open [min, max) range.
func checkRange(name string, min, max int) error {
	if min < 0 || max <= min {
		return fmt.Errorf("%s range [%d, %d) is empty", name, min, max)
	}
	return nil
}
