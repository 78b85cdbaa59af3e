package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/just-jump/internal/config"
	"github.com/vovakirdan/just-jump/internal/core"
	"github.com/vovakirdan/just-jump/internal/runner"
	"github.com/vovakirdan/just-jump/internal/storage"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Options configures a terminal game session.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Run journal; nil disables recording
	Player  string         // Name recorded with finished runs
	Logger  *log.Logger
}

// Model is the Bubble Tea model hosting one runner simulation.
type Model struct {
	sim     *runner.Simulation
	list    *core.DisplayList
	canvas  *ScaledCanvas
	hold    *HoldTracker
	keys    KeyMap
	help    help.Model
	journal JournalModel

	store   *storage.Store
	player  string
	log     *log.Logger
	runtime core.RuntimeConfig
	clock   func() time.Time

	showJournal bool
	quitting    bool
}

// NewModel creates a session on the title screen.
func NewModel(o Options) Model {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	rt := o.Runtime
	if rt.HoldWindow <= 0 {
		rt.HoldWindow = core.DefaultConfig().HoldWindow
	}

	seed := rt.ResolveSeed(time.Now())
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
	o.Logger.Debug("session created", "player", o.Player, "seed", seed)

	list := core.NewDisplayList()
	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-footerHeight, 1))

	return Model{
		sim:     runner.New(o.Runner, list, opts...),
		list:    list,
		canvas:  NewScaledCanvas(screen, o.Runner.Screen.Width, o.Runner.Screen.Height),
		hold:    NewHoldTracker(rt.HoldWindow),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		journal: NewJournalModel(o.Store, rt.ScreenW, rt.ScreenH),
		store:   o.Store,
		player:  o.Player,
		log:     o.Logger,
		runtime: rt,
		clock:   time.Now,
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.PollRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		m.record(m.sim.Abandon())
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Journal):
		m.showJournal = !m.showJournal
		if m.showJournal {
			// Keys pressed before the overlay opened must not stay held.
			m.hold.Release()
			m.journal.Refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.showJournal {
		// Esc closes the overlay instead of reaching the game.
		if key.Matches(msg, m.keys.Quit) {
			m.showJournal = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Switch) {
			m.journal.SwitchView()
			return m, nil
		}
		var cmd tea.Cmd
		m.journal, cmd = m.journal.Update(msg)
		return m, cmd
	}

	m.hold.Press(m.keys.MapKey(msg), m.clock())
	return m, nil
}

// handleResize processes window resize events. The simulation keeps running
// in logical pixels; only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	m.journal.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick polls the simulation once.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.hold.Frame(now)
	if m.showJournal {
		in = core.NewInputFrame()
	}

	res := m.sim.Update(now, in)
	m.record(res.Run)

	if res.Quit {
		m.record(m.sim.Abandon())
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.PollRate)
}

// record saves a finished run to the journal.
func (m Model) record(run *runner.RunResult) {
	if run == nil || m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		Player:  m.player,
		Score:   run.Score,
		Stage:   run.Stage,
		Outcome: string(run.Outcome),
		Ticks:   int64(run.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
	})
	if err != nil {
		m.log.Warn("could not record run", "error", err)
		return
	}
	snap := m.sim.Snapshot()
	m.log.Debug("run recorded", "id", id, "player", m.player, "score", run.Score, "tick", snap.Tick, "hash", snap.Hash())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showJournal {
		return m.journal.View()
	}

	m.canvas.Screen().Clear()
	m.list.Replay(m.canvas)
	return RenderScreen(m.canvas.Screen()) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local session.
func Run(o Options) error {
	p := tea.NewProgram(
		NewModel(o),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
