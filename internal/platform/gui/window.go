// Package gui hosts Just Jump in a desktop window via ebiten. ebiten drives
// the loop at the configured TPS; the simulation keeps its own fixed tick.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/just-jump/internal/config"
	"github.com/vovakirdan/just-jump/internal/core"
	"github.com/vovakirdan/just-jump/internal/runner"
	"github.com/vovakirdan/just-jump/internal/storage"
)

// Options configures a window session.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Run journal; nil disables recording
	Player  string
	Logger  *log.Logger
	Scale   int // Window pixels per logical pixel
}

// bindings maps physical keys to game actions.
var bindings = map[ebiten.Key]core.Action{
	ebiten.KeySpace:   core.ActionJump,
	ebiten.KeyArrowUp: core.ActionJump,
	ebiten.KeyW:       core.ActionJump,
	ebiten.KeyEscape:  core.ActionQuit,
}

// Window implements ebiten.Game around one simulation.
type Window struct {
	sim    *runner.Simulation
	list   *core.DisplayList
	canvas *imageCanvas
	store  *storage.Store
	player string
	log    *log.Logger
	width  int
	height int
	title  string
}

// NewWindow creates a window session on the title screen.
func NewWindow(o Options) *Window {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = "local"
	}

	seed := o.Runtime.ResolveSeed(time.Now())
	opts := []runner.Option{
		runner.WithSource(runner.NewRandSource(seed)),
		runner.WithLogger(o.Logger),
	}
	if o.Store != nil {
		best, err := o.Store.HighScore()
		if err != nil {
			o.Logger.Warn("could not read high score", "error", err)
		}
		opts = append(opts, runner.WithHighScore(best))
	}

	list := core.NewDisplayList()
	sim := runner.New(o.Runner, list, opts...)
	screen := sim.Config().Screen
	return &Window{
		sim:    sim,
		list:   list,
		canvas: newImageCanvas(screen.Width),
		store:  o.Store,
		player: o.Player,
		log:    o.Logger,
		width:  screen.Width,
		height: screen.Height,
		title:  "Just Jump",
	}
}

// pollKeys samples the keyboard. Windows report real key state, so no hold
// emulation is needed.
func pollKeys() core.InputFrame {
	var held []core.Action
	for k, a := range bindings {
		if ebiten.IsKeyPressed(k) {
			held = append(held, a)
		}
	}
	return core.HeldFrame(held...)
}

// Update polls the simulation once per ebiten tick.
func (w *Window) Update() error {
	res := w.sim.Update(time.Now(), pollKeys())
	w.record(res.Run)
	w.updateTitle()

	if res.Quit {
		w.record(w.sim.Abandon())
		return ebiten.Termination
	}
	return nil
}

// windowTitle names the stage and score shown in the title bar.
func windowTitle(snap runner.Snapshot) string {
	if snap.State != runner.StatePlaying && snap.State != runner.StateStageClear {
		return "Just Jump"
	}
	return fmt.Sprintf("Just Jump - stage %d - score %d", snap.Stage, snap.Score)
}

func (w *Window) updateTitle() {
	if t := windowTitle(w.sim.Snapshot()); t != w.title {
		w.title = t
		ebiten.SetWindowTitle(t)
	}
}

// Draw replays the last published frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.list.Replay(w.canvas)
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

func (w *Window) record(run *runner.RunResult) {
	if run == nil || w.store == nil {
		return
	}
	if _, err := w.store.SaveRun(storage.Run{
		Player:  w.player,
		Score:   run.Score,
		Stage:   run.Stage,
		Outcome: string(run.Outcome),
		Ticks:   int64(run.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
	}); err != nil {
		w.log.Warn("could not record run", "error", err)
	}
}

// Run opens the window and blocks until the player quits or closes it.
func Run(o Options) error {
	scale := max(o.Scale, 1)
	ebiten.SetWindowSize(o.Runner.Screen.Width*scale, o.Runner.Screen.Height*scale)
	ebiten.SetWindowTitle("Just Jump")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if o.Runtime.PollRate > 0 {
		ebiten.SetTPS(o.Runtime.PollRate)
	}

	w := NewWindow(o)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
