package runner

import (
	"time"

	"github.com/vovakirdan/just-jump/internal/core"
)

// Player is the jumping square. Y grows downward; (X, Y) is the top-left
// corner.
type Player struct {
	X, Y     float64
	VY       float64
	OnGround bool
	State    PlayerState
	Since    time.Time // Last State change
}

// resetPlayer puts the player at the start position, standing on the ground.
func (s *Simulation) resetPlayer(st PlayerState) {
	s.player = Player{
		X:        s.cfg.Player.StartX,
		Y:        s.standY(),
		OnGround: true,
		State:    st,
		Since:    s.now,
	}
}

// standY is the player's Y when standing on the ground.
func (s *Simulation) standY() float64 {
	return float64(s.cfg.Player.GroundY - s.cfg.Player.Size)
}

// playerRect returns the player's hitbox with coordinates truncated to
// whole pixels.
func (s *Simulation) playerRect() core.Rect {
	return core.RectAt(s.player.X, s.player.Y, s.cfg.Player.Size, s.cfg.Player.Size)
}

// updatePlayer runs the player's sub-state machine for one Playing tick.
func (s *Simulation) updatePlayer(jump bool) {
	p := &s.player

	switch p.State {
	case PlayerNormal, PlayerRespawning:
		if jump && p.OnGround {
			p.VY = s.cfg.Physics.JumpImpulse
			p.OnGround = false
		}
		p.VY += s.cfg.Physics.Gravity
		p.Y += p.VY

		onSolid := s.solidUnder(p.X)
		if onSolid && p.Y >= s.standY() {
			p.Y = s.standY()
			p.VY = 0
			p.OnGround = true
		} else {
			p.OnGround = false
		}

		if p.State == PlayerNormal && s.missed(onSolid) {
			s.miss()
		}

		s.scorePassed()

		if s.stageScore >= s.stage().ClearScore {
			s.log.Info("stage cleared", "stage", s.stageIndex+1, "score", s.score)
			s.enter(StateStageClear)
		}

		if p.State == PlayerRespawning && s.now.Sub(p.Since) > s.cfg.Timing.Invincible {
			p.State = PlayerNormal
			p.Since = s.now
		}

	case PlayerMiss:
		if s.now.Sub(p.Since) <= s.cfg.Timing.MissDelay {
			return
		}
		if s.lives > 0 {
			s.resetPlayer(PlayerRespawning)
			return
		}
		s.endGame(OutcomeGameOver)
		s.enter(StateGameOver)
	}
}

// missed reports whether the player hit an obstacle or fell into a pit.
func (s *Simulation) missed(onSolid bool) bool {
	pr := s.playerRect()
	for i := range s.obstacles {
		if s.obstacles[i].Active && pr.Intersects(s.obstacleRect(&s.obstacles[i])) {
			return true
		}
	}
	return !onSolid && s.player.Y > float64(s.cfg.Player.GroundY)
}

func (s *Simulation) miss() {
	s.lives--
	s.player.State = PlayerMiss
	s.player.Since = s.now
	s.log.Debug("miss", "lives", s.lives, "stage", s.stageIndex+1)
}

// scorePassed awards points for every obstacle whose right edge is behind
// the player, once per obstacle.
func (s *Simulation) scorePassed() {
	w := float64(s.cfg.Obstacles.Width)
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Active || o.Scored || o.X+w >= s.player.X {
			continue
		}
		o.Scored = true
		s.score += s.cfg.Scoring.PerObstacle
		s.stageScore += s.cfg.Scoring.PerObstacle
		s.spawnPopup(s.player.X, s.player.Y-s.cfg.Popups.OffsetY)
	}
}

// playerVisible reports whether the player is drawn this frame. The player
// is hidden during a miss and blinks while respawning.
func (s *Simulation) playerVisible() bool {
	switch s.player.State {
	case PlayerMiss:
		return false
	case PlayerRespawning:
		period := s.cfg.Timing.BlinkPeriod.Milliseconds()
		if period <= 0 {
			return true
		}
		return (s.now.UnixMilli()/period)%2 == 0
	default:
		return true
	}
}
