package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/just-jump/internal/core"
)

func TestJumpOnlyFromGround(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()
	cfg := h.sim.cfg.Physics

	h.step(core.ActionJump)
	p := h.sim.player
	if p.OnGround {
		t.Fatal("jump should leave the ground")
	}
	if !approx(p.VY, cfg.JumpImpulse+cfg.Gravity) {
		t.Errorf("Expected vy %.2f after the jump tick, got %.4f", cfg.JumpImpulse+cfg.Gravity, p.VY)
	}

	// Holding jump in the air adds nothing.
	h.step(core.ActionJump)
	if !approx(h.sim.player.VY, p.VY+cfg.Gravity) {
		t.Errorf("airborne jump changed velocity: %.4f", h.sim.player.VY)
	}
}

func TestJumpImpulseReplacesVelocity(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()

	// Standing with a stale velocity: the impulse overwrites it.
	h.sim.player.VY = 3
	h.step(core.ActionJump)
	want := h.sim.cfg.Physics.JumpImpulse + h.sim.cfg.Physics.Gravity
	if !approx(h.sim.player.VY, want) {
		t.Errorf("Expected vy %.2f, got %.4f", want, h.sim.player.VY)
	}
}

func TestGravityIntegration(t *testing.T) {
	tests := []struct {
		name string
		v0   float64
		n    int
	}{
		{"rising", -3, 10},
		{"falling", 1, 5},
		{"apex", 0, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, constSource(1))
			h.start()
			h.clearObstacles()
			h.sim.player.Y = 100
			h.sim.player.VY = tc.v0
			h.sim.player.OnGround = false

			h.steps(tc.n)
			want := tc.v0 + float64(tc.n)*h.sim.cfg.Physics.Gravity
			if !approx(h.sim.player.VY, want) {
				t.Errorf("vy after %d ticks = %.6f, expected %.6f", tc.n, h.sim.player.VY, want)
			}
			if h.sim.player.OnGround {
				t.Error("player should still be airborne")
			}
		})
	}
}

func TestLanding(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()
	h.clearObstacles()

	h.step(core.ActionJump)
	for i := 0; i < 100 && !h.sim.player.OnGround; i++ {
		h.step()
	}
	p := h.sim.player
	if !p.OnGround || p.Y != 380 || p.VY != 0 {
		t.Errorf("Expected to land at y=380 with vy=0, got %+v", p)
	}
}

func TestScoringOncePerObstacle(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()
	h.clearObstacles()
	h.place(0, 60, 31)

	h.step()
	if h.sim.score != 10 || h.sim.stageScore != 10 {
		t.Fatalf("Expected 10/10 after passing one obstacle, got %d/%d", h.sim.score, h.sim.stageScore)
	}
	if !h.sim.obstacles[0].Scored {
		t.Error("obstacle should be marked scored")
	}

	h.steps(5)
	if h.sim.score != 10 {
		t.Errorf("scored obstacle counted again: score %d", h.sim.score)
	}

	// Two more behind the player score together.
	h.place(1, 40, 31)
	h.place(2, 20, 31)
	h.step()
	if h.sim.score != 30 || h.sim.stageScore != 30 {
		t.Errorf("Expected 30/30, got %d/%d", h.sim.score, h.sim.stageScore)
	}
}

func TestScoringNeedsRightEdgeBehindPlayer(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()
	h.clearObstacles()

	// After the scroll the right edge sits exactly on the player's left edge.
	h.place(0, 74, 31)
	h.sim.player.Y = 200
	h.sim.player.OnGround = false
	h.step()
	if h.sim.score != 0 {
		t.Fatalf("edge touching the player should not score, got %d", h.sim.score)
	}
	h.step()
	if h.sim.score != 10 {
		t.Errorf("Expected 10 once the edge is behind, got %d", h.sim.score)
	}
}

// A miss with the last life ends the game after the miss delay.
func TestMissWithLastLifeEndsGame(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()
	h.clearObstacles()
	h.sim.lives = 1
	h.sim.score = 40
	h.sim.highScore = 30
	h.place(0, 104, 31)

	h.step()
	missAt := h.now
	if h.sim.player.State != PlayerMiss || h.sim.lives != 0 {
		t.Fatalf("Expected Miss with 0 lives, got %s with %d", h.sim.player.State, h.sim.lives)
	}

	var res StepResult
	for h.now.Add(tick).Sub(missAt) <= time.Second {
		res = h.step()
		if h.sim.State() != StatePlaying || h.sim.player.State != PlayerMiss {
			t.Fatalf("left Miss early at +%s", h.now.Sub(missAt))
		}
		if res.Run != nil {
			t.Fatal("run ended before the miss delay")
		}
	}

	res = h.step()
	if h.sim.State() != StateGameOver {
		t.Fatalf("Expected GameOver at +%s, got %s", h.now.Sub(missAt), h.sim.State())
	}
	if h.sim.player.State == PlayerRespawning {
		t.Error("no lives left: must not respawn")
	}
	if h.sim.HighScore() != 40 {
		t.Errorf("Expected high score 40, got %d", h.sim.HighScore())
	}
	if res.Run == nil || res.Run.Outcome != OutcomeGameOver || !res.Run.NewRecord || res.Run.Score != 40 {
		t.Errorf("unexpected run result: %+v", res.Run)
	}
}

func TestGameOverKeepsBetterHighScore(t *testing.T) {
	h := newHarness(t, constSource(1), WithHighScore(500))
	h.start()
	h.clearObstacles()
	h.sim.lives = 1
	h.sim.score = 40
	h.place(0, 104, 31)

	h.step()
	h.steps(63)
	if h.sim.State() != StateGameOver {
		t.Fatalf("Expected GameOver, got %s", h.sim.State())
	}
	if h.sim.HighScore() != 500 {
		t.Errorf("high score lowered to %d", h.sim.HighScore())
	}
}

// A miss with lives left respawns, grants invulnerability, then expires.
func TestMissRespawnAndInvulnerability(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()
	h.clearObstacles()
	h.place(0, 104, 31)

	h.step()
	if h.sim.player.State != PlayerMiss || h.sim.lives != 2 {
		t.Fatalf("Expected Miss with 2 lives, got %s with %d", h.sim.player.State, h.sim.lives)
	}

	h.steps(62) // +992ms
	if h.sim.player.State != PlayerMiss {
		t.Fatalf("Expected Miss at +992ms, got %s", h.sim.player.State)
	}
	h.step() // +1008ms
	p := h.sim.player
	if p.State != PlayerRespawning {
		t.Fatalf("Expected Respawning after the miss delay, got %s", p.State)
	}
	if p.X != 100 || p.Y != 380 || p.VY != 0 || !p.OnGround {
		t.Errorf("respawned at the wrong place: %+v", p)
	}
	respawnAt := h.now

	// Overlapping an obstacle while respawning costs nothing.
	h.clearObstacles()
	h.place(0, 104, 31)
	h.steps(5)
	if h.sim.player.State != PlayerRespawning || h.sim.lives != 2 {
		t.Fatalf("invulnerable player took a miss: %s, lives %d", h.sim.player.State, h.sim.lives)
	}

	for h.now.Sub(respawnAt) < 2*time.Second {
		h.step()
		if h.now.Sub(respawnAt) <= 2*time.Second && h.sim.player.State != PlayerRespawning {
			t.Fatalf("invulnerability ended early at +%s", h.now.Sub(respawnAt))
		}
	}
	h.step()
	if h.sim.player.State != PlayerNormal {
		t.Errorf("Expected Normal after invulnerability, got %s", h.sim.player.State)
	}
}

func TestPitFall(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()
	h.clearObstacles()

	h.sim.ground[0] = GroundSegment{X: 0, Width: 90}
	h.sim.ground[1] = GroundSegment{X: 90, Width: 60, Pit: true}
	x := 150.0
	for i := 2; i < GroundSegments; i++ {
		h.sim.ground[i] = GroundSegment{X: x, Width: 200}
		x += 200
	}

	for i := 0; i < 9; i++ {
		h.step()
		if h.sim.player.State != PlayerNormal {
			t.Fatalf("missed too early on tick %d at y=%.2f", i+1, h.sim.player.Y)
		}
		if h.sim.player.OnGround {
			t.Fatalf("player stood on a pit at tick %d", i+1)
		}
	}

	h.step()
	if h.sim.player.State != PlayerMiss {
		t.Errorf("Expected Miss once below ground level, y=%.2f", h.sim.player.Y)
	}
}

func TestGroundFirstOverlapWins(t *testing.T) {
	h := newHarness(t, constSource(1))
	h.start()

	tests := []struct {
		name  string
		first GroundSegment
		next  GroundSegment
		solid bool
	}{
		{"solid first", GroundSegment{X: 0, Width: 110}, GroundSegment{X: 110, Width: 80, Pit: true}, true},
		{"pit first", GroundSegment{X: 110, Width: 80, Pit: true}, GroundSegment{X: 0, Width: 110}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := range h.sim.ground {
				h.sim.ground[i] = GroundSegment{X: 2000 + float64(i)*100, Width: 100}
			}
			h.sim.ground[0] = tc.first
			h.sim.ground[1] = tc.next
			if got := h.sim.solidUnder(100); got != tc.solid {
				t.Errorf("solidUnder = %v, expected %v", got, tc.solid)
			}
		})
	}

	// Nothing under the player at all.
	for i := range h.sim.ground {
		h.sim.ground[i] = GroundSegment{X: 500, Width: 100}
	}
	if h.sim.solidUnder(100) {
		t.Error("no overlapping segment should mean no ground")
	}
}
