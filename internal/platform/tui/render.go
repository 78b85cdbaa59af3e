package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/just-jump/internal/core"
)

// cellStyle is the color pair a run of cells is rendered with.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles. SSH sessions render
// concurrently.
var (
	styleMu    sync.Mutex
	styleCache = map[cellStyle]lipgloss.Style{}
)

// lipColor converts a palette entry to a lipgloss hex color.
func lipColor(c core.Color) lipgloss.Color {
	rgba := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B))
}

func styleFor(cs cellStyle) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if st, ok := styleCache[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !cs.fg.IsDefault() {
		st = st.Foreground(lipColor(cs.fg))
	}
	if !cs.bg.IsDefault() {
		st = st.Background(lipColor(cs.bg))
	}
	styleCache[cs] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
