package runner

import "math"

// Snapshot captures the observable game state for determinism testing and
// for hosts that show status outside the canvas.
type Snapshot struct {
	Tick        uint64
	State       State
	Stage       int // 1-based, 0 before the first stage
	Score       int
	StageScore  int
	HighScore   int
	Lives       int
	PlayerX     float64
	PlayerY     float64
	PlayerVY    float64
	OnGround    bool
	PlayerState PlayerState
	Obstacles   int // Active obstacles
	Popups      int // Active popups
	GroundX     float64

	// Pool contents by value, inactive slots included.
	ObstaclePool [ObstacleSlots]Obstacle
	Ground       [GroundSegments]GroundSegment
	PopupPool    [PopupSlots]Popup
}

// Snapshot returns the current game snapshot.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.tick,
		State:       s.state,
		Stage:       s.stageIndex + 1,
		Score:       s.score,
		StageScore:  s.stageScore,
		HighScore:   s.highScore,
		Lives:       s.lives,
		PlayerX:     s.player.X,
		PlayerY:     s.player.Y,
		PlayerVY:    s.player.VY,
		OnGround:    s.player.OnGround,
		PlayerState: s.player.State,
		GroundX:     s.ground[0].X,

		ObstaclePool: s.obstacles,
		Ground:       s.ground,
		PopupPool:    s.popups,
	}
	for _, o := range s.obstacles {
		if o.Active {
			snap.Obstacles++
		}
	}
	for _, p := range s.popups {
		if p.Active {
			snap.Popups++
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StageScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + uint64(snap.PlayerState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Obstacles)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Popups)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.GroundX)
	for _, o := range snap.ObstaclePool {
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + uint64(o.Height) //#nosec G115 -- hash computation
	}
	for _, g := range snap.Ground {
		h = h*31 + math.Float64bits(g.X)
		h = h*31 + uint64(g.Width) //#nosec G115 -- hash computation
	}
	return h
}
