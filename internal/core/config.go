package core

import "time"

// RuntimeConfig contains host-level settings handed to a simulation and its
// platform wrapper.
type RuntimeConfig struct {
	ScreenW    int           // Host output width (cells or pixels)
	ScreenH    int           // Host output height (cells or pixels)
	PollRate   int           // Host loop iterations per second
	Seed       int64         // RNG seed; 0 means derive one from the clock
	HoldWindow time.Duration // How long a terminal key event counts as held
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		PollRate:   120,
		Seed:       0,
		HoldWindow: 150 * time.Millisecond,
	}
}

// ResolveSeed returns the configured seed, or one derived from now when the
// seed is unset.
func (c RuntimeConfig) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
