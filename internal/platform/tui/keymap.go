package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/just-jump/internal/core"
)

// KeyMap defines the key bindings of the terminal host.
type KeyMap struct {
	Jump    key.Binding
	Quit    key.Binding
	Journal key.Binding
	Switch  key.Binding // Journal: best or recent runs
	Help    key.Binding
	Exit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Quit, k.Journal, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Quit},
		{k.Journal, k.Switch, k.Help, k.Exit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump / confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Journal: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "run journal"),
		),
		Switch: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "best / recent runs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit now"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// HoldTracker turns terminal key events into held-key polling. Terminals
// report presses and auto-repeats but no releases, so an action counts as
// held until the hold window has passed since its last event.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key event for the action.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.last[a] = now
}

// Frame returns the actions held at now.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	var held []core.Action
	for a, at := range h.last {
		if now.Sub(at) < h.window {
			held = append(held, a)
		}
	}
	return core.HeldFrame(held...)
}

// Release forgets every recorded event.
func (h *HoldTracker) Release() {
	clear(h.last)
}
