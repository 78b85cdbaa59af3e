package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML drifted from DefaultRunnerConfig:\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
	if cfg.Timing.Tick != 16*time.Millisecond {
		t.Errorf("tick = %s, expected 16ms", cfg.Timing.Tick)
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := "lives: 5\nstages:\n  - scroll_speed: -3\n    clear_score: 20\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Lives != 5 {
		t.Errorf("lives = %d, expected 5", cfg.Lives)
	}
	if len(cfg.Stages) != 1 || cfg.Stages[0].ClearScore != 20 || cfg.Stages[0].Pits {
		t.Errorf("stages = %+v, expected the single stage from the file", cfg.Stages)
	}
	// Keys the file omits keep their defaults.
	if cfg.Physics.Gravity != 0.4 || cfg.Player.GroundY != 400 {
		t.Errorf("unset keys lost defaults: %+v %+v", cfg.Physics, cfg.Player)
	}
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd := t.TempDir()
	t.Chdir(wd)

	write := func(dir, body string) {
		t.Helper()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "runner.yaml"), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write(filepath.Join(wd, "configs"), "lives: 7\n")
	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lives != 7 {
		t.Errorf("local config: lives = %d, expected 7", cfg.Lives)
	}

	write(filepath.Join(home, ".justjump", "configs"), "lives: 9\n")
	cfg, err = LoadRunner("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lives != 9 {
		t.Errorf("user config should win: lives = %d, expected 9", cfg.Lives)
	}

	// A broken user file falls through to the next location.
	write(filepath.Join(home, ".justjump", "configs"), "lives: [\n")
	cfg, err = LoadRunner("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lives != 7 {
		t.Errorf("broken user config: lives = %d, expected 7", cfg.Lives)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file: err = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lives: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("bad yaml: err = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("invalid config: err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"no stages", func(c *RunnerConfig) { c.Stages = nil }, "at least one stage"},
		{"positive speed", func(c *RunnerConfig) { c.Stages[2].ScrollSpeed = 1 }, "stage 3: scroll_speed"},
		{"zero clear score", func(c *RunnerConfig) { c.Stages[0].ClearScore = 0 }, "stage 1: clear_score"},
		{"no lives", func(c *RunnerConfig) { c.Lives = 0 }, "lives must be positive"},
		{"empty height range", func(c *RunnerConfig) { c.Obstacles.MaxHeight = c.Obstacles.MinHeight }, "obstacles height"},
		{"segment narrower than obstacle", func(c *RunnerConfig) { c.Ground.MinWidth = 30 }, "ground.min_width"},
		{"zero tick", func(c *RunnerConfig) { c.Timing.Tick = 0 }, "timing.tick"},
		{"zero odds", func(c *RunnerConfig) { c.Ground.PitOdds = 0 }, "pit_odds"},
		{"start widths short of screen", func(c *RunnerConfig) { c.Screen.Width = 2100 }, "ground.start_min_width"},
		{"solid ring short of screen", func(c *RunnerConfig) { c.Screen.Width = 1000 }, "9 segments of ground.min_width"},
		{"pit ring short of player", func(c *RunnerConfig) {
			c.Ground.PitMinWidth = 10
			c.Ground.PitMaxWidth = 20
			c.Player.StartX = 200
		}, "ground.pit_min_width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", DifficultyNormal, true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.Stages[0].ScrollSpeed != -4.0 {
		t.Errorf("normal changed speed to %g", cfg.Stages[0].ScrollSpeed)
	}

	hard := DefaultRunnerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Stages[0].ScrollSpeed != -4.8 || hard.Stages[4].ScrollSpeed != -7.2 {
		t.Errorf("hard speeds = %g .. %g", hard.Stages[0].ScrollSpeed, hard.Stages[4].ScrollSpeed)
	}

	easy := DefaultRunnerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Stages[0].ScrollSpeed != -3.4 {
		t.Errorf("easy stage 1 speed = %g, expected -3.4", easy.Stages[0].ScrollSpeed)
	}

	// The default table is not shared with the scaled copy.
	if DefaultRunnerConfig().Stages[0].ScrollSpeed != -4.0 {
		t.Error("ApplyPreset mutated the default table")
	}
}

func TestStageSpeed(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if cfg.StageSpeed(0) != -4.0 || cfg.StageSpeed(4) != -6.0 || cfg.StageSpeed(99) != -6.0 || cfg.StageSpeed(-1) != -4.0 {
		t.Error("StageSpeed should clamp to the stage table")
	}
}
