package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning: a 640x480 field, five
// stages from -4.0 to -6.0 px/tick, pits from stage 2 on.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity:     0.4,
			JumpImpulse: -10.0,
		},
		Player: PlayerConfig{
			Size:    20,
			StartX:  100,
			GroundY: 400,
		},
		Obstacles: ObstacleConfig{
			Width:       30,
			MinHeight:   30,
			MaxHeight:   80,
			FirstOffset: 100,
			MinSpacing:  250,
			MaxSpacing:  400,
			SpawnOdds:   3,
		},
		Ground: GroundConfig{
			StartMinWidth: 200,
			StartMaxWidth: 300,
			MinWidth:      100,
			MaxWidth:      300,
			PitMinWidth:   60,
			PitMaxWidth:   100,
			PitOdds:       5,
		},
		Popups: PopupConfig{
			Lifetime: 1000 * time.Millisecond,
			Drift:    0.5,
			OffsetY:  15,
		},
		Timing: TimingConfig{
			Tick:        16 * time.Millisecond,
			MissDelay:   1000 * time.Millisecond,
			Invincible:  2000 * time.Millisecond,
			BlinkPeriod: 100 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			PerObstacle: 10,
		},
		Lives: 3,
		Stages: []StageConfig{
			{ScrollSpeed: -4.0, ClearScore: 150, Pits: false},
			{ScrollSpeed: -4.5, ClearScore: 150, Pits: true},
			{ScrollSpeed: -5.0, ClearScore: 150, Pits: true},
			{ScrollSpeed: -5.5, ClearScore: 150, Pits: true},
			{ScrollSpeed: -6.0, ClearScore: 150, Pits: true},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a starter
// config file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
