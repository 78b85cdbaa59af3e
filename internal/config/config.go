// Package config provides YAML-based tuning for the runner: physics, world
// generation, timing, and the stage table, plus difficulty presets.
package config

import "time"

// GroundSegments is the size of the ground ring. Validate needs it to check
// that the ring can span the screen.
const GroundSegments = 10

// RunnerConfig contains all tuning for the runner simulation.
type RunnerConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Ground    GroundConfig   `yaml:"ground"`
	Popups    PopupConfig    `yaml:"popups"`
	Timing    TimingConfig   `yaml:"timing"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Lives     int            `yaml:"lives"`
	Stages    []StageConfig  `yaml:"stages"`
}

// ScreenConfig is the logical playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-tick player physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PlayerConfig defines the player square and where it stands.
type PlayerConfig struct {
	Size    int     `yaml:"size"`
	StartX  float64 `yaml:"start_x"`
	GroundY int     `yaml:"ground_y"` // Top of the ground strip
}

// ObstacleConfig defines obstacle shape and placement ranges.
// Ranges are half-open: [Min, Max).
type ObstacleConfig struct {
	Width       int     `yaml:"width"`
	MinHeight   int     `yaml:"min_height"`
	MaxHeight   int     `yaml:"max_height"`
	FirstOffset float64 `yaml:"first_offset"` // Past the right screen edge
	MinSpacing  int     `yaml:"min_spacing"`
	MaxSpacing  int     `yaml:"max_spacing"`
	SpawnOdds   int     `yaml:"spawn_odds"` // 1-in-N per new solid segment
}

// GroundConfig defines ground segment widths and pit odds.
type GroundConfig struct {
	StartMinWidth int `yaml:"start_min_width"`
	StartMaxWidth int `yaml:"start_max_width"`
	MinWidth      int `yaml:"min_width"`
	MaxWidth      int `yaml:"max_width"`
	PitMinWidth   int `yaml:"pit_min_width"`
	PitMaxWidth   int `yaml:"pit_max_width"`
	PitOdds       int `yaml:"pit_odds"` // 1-in-N per recycled segment
}

// PopupConfig defines the floating score label.
type PopupConfig struct {
	Lifetime time.Duration `yaml:"lifetime"`
	Drift    float64       `yaml:"drift"`    // Pixels per tick, upward
	OffsetY  float64       `yaml:"offset_y"` // Above the player's top edge
}

// TimingConfig defines the fixed tick and the player state timers.
type TimingConfig struct {
	Tick        time.Duration `yaml:"tick"`
	MissDelay   time.Duration `yaml:"miss_delay"`
	Invincible  time.Duration `yaml:"invincible"`
	BlinkPeriod time.Duration `yaml:"blink_period"`
}

// ScoringConfig defines points per obstacle.
type ScoringConfig struct {
	PerObstacle int `yaml:"per_obstacle"`
}

// StageConfig is one row of the stage table.
type StageConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // Negative scrolls left
	ClearScore  int     `yaml:"clear_score"`
	Pits        bool    `yaml:"pits"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
