// Package tui provides the Bubble Tea host for Just Jump: the terminal loop,
// key hold tracking, scaled rendering, the run journal overlay, and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to poll the simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(pollRate int) tea.Cmd {
	if pollRate <= 0 {
		pollRate = 60
	}
	interval := time.Second / time.Duration(pollRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
