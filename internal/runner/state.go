package runner

// State is the top-level game state. It selects the update and render
// routine run on each tick.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateStageClear
	StateGameClear
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StateStageClear:
		return "StageClear"
	case StateGameClear:
		return "GameClear"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PlayerState is the player's sub-state while Playing.
type PlayerState int

const (
	PlayerNormal     PlayerState = iota
	PlayerMiss                   // Hit something; frozen and hidden until the miss delay ends
	PlayerRespawning             // Back at the start position, blinking and invulnerable
)

// String returns a human-readable name for the player state.
func (s PlayerState) String() string {
	switch s {
	case PlayerNormal:
		return "Normal"
	case PlayerMiss:
		return "Miss"
	case PlayerRespawning:
		return "Respawning"
	default:
		return "Unknown"
	}
}

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeGameOver Outcome = "game_over"
	OutcomeCleared  Outcome = "cleared"
	OutcomeQuit     Outcome = "quit"
)
