// Package runner implements Just Jump, a single-screen endless runner: the
// player jumps obstacles and pits across a table of stages that scroll ever
// faster.
//
// A Simulation owns every entity of the game. Hosts poll Update once per loop
// iteration with the wall clock and the keys currently held; the simulation
// advances at most one fixed tick per call and draws the resulting frame on
// its Canvas.
package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/just-jump/internal/config"
	"github.com/vovakirdan/just-jump/internal/core"
)

// Pool capacities. Allocation is first-fit; a full pool drops the request.
const (
	ObstacleSlots  = 3
	PopupSlots     = 5
	GroundSegments = config.GroundSegments
)

// Simulation holds all mutable game state.
type Simulation struct {
	cfg    config.RunnerConfig
	canvas core.Canvas
	rng    Source
	log    *log.Logger

	state  State
	player Player
	edge   core.ReleaseEdge

	obstacles [ObstacleSlots]Obstacle
	ground    [GroundSegments]GroundSegment
	popups    [PopupSlots]Popup

	score      int
	stageScore int
	highScore  int
	lives      int
	stageIndex int // -1 before the first stage of a game

	now      time.Time // Time of the tick being executed
	lastTick time.Time
	ticked   bool // Whether any tick has executed yet
	tick     uint64
	runStart uint64 // Tick the current game started on

	quit     bool
	finished *RunResult
}

// StepResult reports what one Update call did.
type StepResult struct {
	Ticked bool       // A tick executed
	Quit   bool       // The quit key was honored; the host should exit
	Run    *RunResult // Set on the tick a game ends
}

// RunResult summarizes one finished game.
type RunResult struct {
	Score     int
	Stage     int // 1-based stage the game ended on
	Outcome   Outcome
	NewRecord bool
	Ticks     uint64
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithSource sets the random source used by world generation.
func WithSource(src Source) Option {
	return func(s *Simulation) {
		s.rng = src
	}
}

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		s.log = l
	}
}

// WithHighScore seeds the high score, e.g. from the run journal.
func WithHighScore(score int) Option {
	return func(s *Simulation) {
		s.highScore = score
	}
}

// New creates a simulation on the title screen. A nil canvas draws into a
// private DisplayList.
func New(cfg config.RunnerConfig, canvas core.Canvas, opts ...Option) *Simulation {
	if canvas == nil {
		canvas = core.NewDisplayList()
	}
	s := &Simulation{
		cfg:        cfg,
		canvas:     canvas,
		state:      StateTitle,
		lives:      cfg.Lives,
		stageIndex: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRandSource(time.Now().UnixNano())
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	return s
}

// Update executes one tick if at least one tick interval has passed since
// the previous one. Early calls return without touching any state; missed
// time is never made up.
func (s *Simulation) Update(now time.Time, in core.InputFrame) StepResult {
	if s.ticked && now.Sub(s.lastTick) < s.cfg.Timing.Tick {
		return StepResult{}
	}
	s.ticked = true
	s.lastTick = now
	s.now = now
	s.tick++
	s.quit = false
	s.finished = nil

	jump := in.Has(core.ActionJump)
	quit := in.Has(core.ActionQuit)

	switch s.state {
	case StateTitle:
		s.updateTitle(jump, quit)
		s.renderTitle()
	case StatePlaying:
		s.updatePlaying(jump, quit)
		s.renderPlaying()
	case StateStageClear:
		s.updateStageClear(jump)
		s.renderStageClear()
	case StateGameClear:
		s.updateGameClear(jump)
		s.renderGameClear()
	case StateGameOver:
		s.updateGameOver(jump, quit)
		s.renderGameOver()
	}
	s.canvas.Present()

	return StepResult{Ticked: true, Quit: s.quit, Run: s.finished}
}

func (s *Simulation) updateTitle(jump, quit bool) {
	if quit {
		s.quit = true
	}
	if s.edge.Sample(jump) {
		s.resetGame()
	}
}

func (s *Simulation) updatePlaying(jump, quit bool) {
	if quit {
		s.quit = true
	}

	speed := s.cfg.StageSpeed(s.stageIndex)
	s.updatePopups()
	s.scrollObstacles(speed)
	s.scrollGround(speed)
	s.updatePlayer(jump)
}

// The clear screens do not honor the quit key.
func (s *Simulation) updateStageClear(jump bool) {
	if s.edge.Sample(jump) {
		s.startNextStage()
	}
}

func (s *Simulation) updateGameClear(jump bool) {
	if s.edge.Sample(jump) {
		s.enter(StateTitle)
	}
}

func (s *Simulation) updateGameOver(jump, quit bool) {
	if s.edge.Sample(jump) {
		s.enter(StateTitle)
	}
	if quit {
		s.quit = true
	}
}

// enter switches the top-level state. Screens that wait for a key release
// start with a disarmed detector.
func (s *Simulation) enter(st State) {
	if st != s.state {
		s.log.Debug("state change", "from", s.state, "to", st)
	}
	s.state = st
	if st != StatePlaying {
		s.edge.Disarm()
	}
}

// endGame finalizes the high score and records the run result.
func (s *Simulation) endGame(outcome Outcome) {
	record := s.score > s.highScore
	if record {
		s.highScore = s.score
	}
	s.finished = &RunResult{
		Score:     s.score,
		Stage:     core.Clamp(s.stageIndex+1, 1, len(s.cfg.Stages)),
		Outcome:   outcome,
		NewRecord: record,
		Ticks:     s.tick - s.runStart,
	}
	s.log.Info("game ended", "outcome", outcome, "score", s.score, "stage", s.finished.Stage, "record", record)
}

// Abandon ends a game in progress without waiting for its natural end, e.g.
// when the host shuts down. It returns nil outside a game.
func (s *Simulation) Abandon() *RunResult {
	if s.state != StatePlaying && s.state != StateStageClear {
		return nil
	}
	s.endGame(OutcomeQuit)
	res := s.finished
	s.finished = nil
	s.enter(StateTitle)
	return res
}

// State returns the current top-level state.
func (s *Simulation) State() State {
	return s.state
}

// HighScore returns the best score seen by this simulation.
func (s *Simulation) HighScore() int {
	return s.highScore
}

// Config returns the tuning the simulation runs with.
func (s *Simulation) Config() config.RunnerConfig {
	return s.cfg
}
