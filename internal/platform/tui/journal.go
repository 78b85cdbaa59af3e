package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/just-jump/internal/runner"
	"github.com/vovakirdan/just-jump/internal/storage"
)

// maxJournalRuns is how many runs the overlay loads.
const maxJournalRuns = 50

// JournalView selects which runs the overlay lists.
type JournalView int

const (
	JournalBest   JournalView = iota // Highest scores first
	JournalRecent                    // Newest runs first
)

// String returns the view's heading.
func (v JournalView) String() string {
	if v == JournalRecent {
		return "recent runs"
	}
	return "best runs"
}

// JournalModel is the run journal overlay over the runs of this process.
type JournalModel struct {
	store  *storage.Store
	view   JournalView
	runs   []storage.Run
	total  int
	table  table.Model
	err    error
	width  int
	height int
}

// NewJournalModel creates a journal overlay backed by store. A nil store
// shows an empty journal.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	m := JournalModel{
		store:  store,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	first := "Rank"
	if m.view == JournalRecent {
		first = "Run"
	}
	columns := []table.Column{
		{Title: first, Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Stage", Width: 6},
		{Title: "Outcome", Width: 10},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the current view from the store.
func (m *JournalModel) Refresh() {
	m.runs, m.total, m.err = nil, 0, nil
	if m.store != nil {
		m.runs, m.err = m.load()
		if m.err == nil {
			m.total, m.err = m.store.RunCount()
		}
	}
	m.updateTableRows()
}

func (m *JournalModel) load() ([]storage.Run, error) {
	if m.view == JournalRecent {
		return m.store.RecentRuns(maxJournalRuns)
	}
	return m.store.TopRuns(maxJournalRuns)
}

// SwitchView flips between best and recent runs and reloads.
func (m *JournalModel) SwitchView() {
	if m.view == JournalBest {
		m.view = JournalRecent
	} else {
		m.view = JournalBest
	}
	m.table = m.createTable()
	m.Refresh()
}

// updateTableRows updates the table with current runs.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		n := int64(i + 1)
		if m.view == JournalRecent {
			n = r.ID
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", n),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Stage),
			outcomeLabel(r.Outcome),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

func outcomeLabel(o string) string {
	switch runner.Outcome(o) {
	case runner.OutcomeCleared:
		return "cleared"
	case runner.OutcomeGameOver:
		return "game over"
	case runner.OutcomeQuit:
		return "quit"
	default:
		return o
	}
}

// Resize rebuilds the table for a new terminal size.
func (m *JournalModel) Resize(width, height int) {
	m.width, m.height = width, height
	m.table = m.createTable()
	m.updateTableRows()
}

// Update passes scrolling keys to the table.
func (m JournalModel) Update(msg tea.Msg) (JournalModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the overlay centered in the terminal.
func (m JournalModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RUN JOURNAL"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).
		Render(fmt.Sprintf("%s · %d recorded · left/right to switch", m.view, m.total)))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	case len(m.runs) == 0:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("No finished runs yet."))
	default:
		b.WriteString(m.table.View())
	}

	return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center, b.String())
}
