package runner

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/just-jump/internal/config"
	"github.com/vovakirdan/just-jump/internal/core"
)

// t0 is an even 100ms phase, so a respawning player is visible at t0.
var t0 = time.UnixMilli(1_000_000)

const tick = 16 * time.Millisecond

// constSource returns v mod n for every draw.
type constSource int

func (c constSource) Intn(n int) int {
	return int(c) % n
}

type harness struct {
	t    *testing.T
	sim  *Simulation
	list *core.DisplayList
	now  time.Time
}

func newHarness(t *testing.T, src Source, opts ...Option) *harness {
	t.Helper()
	list := core.NewDisplayList()
	opts = append([]Option{WithSource(src)}, opts...)
	return &harness{
		t:    t,
		sim:  New(config.DefaultRunnerConfig(), list, opts...),
		list: list,
		now:  t0,
	}
}

// step advances the clock by one tick interval and updates with the given
// actions held.
func (h *harness) step(actions ...core.Action) StepResult {
	h.now = h.now.Add(tick)
	return h.sim.Update(h.now, core.HeldFrame(actions...))
}

// texts returns the strings drawn in the last published frame.
func (h *harness) texts() []string {
	var out []string
	for _, op := range h.list.Frame() {
		if op.Text {
			out = append(out, op.S)
		}
	}
	return out
}

// steps runs n ticks with nothing held and returns the last result.
func (h *harness) steps(n int) StepResult {
	var res StepResult
	for i := 0; i < n; i++ {
		res = h.step()
	}
	return res
}

// start idles one tick, then presses and releases jump on the title screen.
func (h *harness) start() {
	h.t.Helper()
	h.step()
	h.step(core.ActionJump)
	h.step()
	if h.sim.State() != StatePlaying {
		h.t.Fatalf("Expected Playing after start, got %s", h.sim.State())
	}
}

// clearObstacles empties the obstacle pool.
func (h *harness) clearObstacles() {
	for i := range h.sim.obstacles {
		h.sim.obstacles[i] = Obstacle{}
	}
}

// place puts an unscored obstacle in slot i.
func (h *harness) place(i int, x float64, height int) {
	h.sim.obstacles[i] = Obstacle{X: x, Height: height, Active: true}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
