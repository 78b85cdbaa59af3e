package config

import (
	"fmt"
	"math"
	"strings"
)

// presetScale maps a preset to its scroll speed multiplier.
var presetScale = map[DifficultyPreset]float64{
	DifficultyEasy:   0.85,
	DifficultyNormal: 1.0,
	DifficultyHard:   1.2,
}

// ParsePreset parses a preset name. An empty name is normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return DifficultyNormal, nil
	}
	if _, ok := presetScale[p]; !ok {
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// Scale returns the scroll speed multiplier for the preset.
func (p DifficultyPreset) Scale() float64 {
	if s, ok := presetScale[p]; ok {
		return s
	}
	return 1.0
}

// ApplyPreset scales every stage's scroll speed by the preset multiplier.
// Speeds are rounded to a tenth of a pixel per tick.
func ApplyPreset(cfg *RunnerConfig, p DifficultyPreset) {
	scale := p.Scale()
	if scale == 1.0 {
		return
	}
	stages := make([]StageConfig, len(cfg.Stages))
	for i, st := range cfg.Stages {
		st.ScrollSpeed = roundTenth(st.ScrollSpeed * scale)
		stages[i] = st
	}
	cfg.Stages = stages
}

// StageSpeed returns the scroll speed for a zero-based stage index, clamped
// to the table.
func (c RunnerConfig) StageSpeed(stage int) float64 {
	if len(c.Stages) == 0 {
		return 0
	}
	return c.Stages[clampI(stage, 0, len(c.Stages)-1)].ScrollSpeed
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// clampI restricts an int to [min, max].
func clampI(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
