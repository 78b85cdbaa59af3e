package tui

import (
	"math"

	"github.com/vovakirdan/just-jump/internal/core"
)

// ScaledCanvas draws logical-pixel Canvas calls onto a terminal Screen,
// scaling the logical playfield to the screen's cell grid.
type ScaledCanvas struct {
	screen        *core.Screen
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // cells per logical pixel
	scaleY        float64 // rows per logical pixel
}

// NewScaledCanvas creates a canvas mapping a logicalW x logicalH playfield
// onto screen.
func NewScaledCanvas(screen *core.Screen, logicalW, logicalH int) *ScaledCanvas {
	c := &ScaledCanvas{
		screen:        screen,
		logicalWidth:  float64(max(logicalW, 1)),
		logicalHeight: float64(max(logicalH, 1)),
	}
	c.rescale()
	return c
}

// Resize resizes the underlying screen and keeps the logical size.
func (c *ScaledCanvas) Resize(width, height int) {
	c.screen.Resize(width, height)
	c.rescale()
}

func (c *ScaledCanvas) rescale() {
	c.scaleX = float64(c.screen.Width()) / c.logicalWidth
	c.scaleY = float64(c.screen.Height()) / c.logicalHeight
}

// Screen returns the target screen.
func (c *ScaledCanvas) Screen() *core.Screen {
	return c.screen
}

// Cell returns the cell holding logical pixel (x, y).
func (c *ScaledCanvas) Cell(x, y int) (int, int) {
	return int(math.Floor(float64(x) * c.scaleX)), int(math.Floor(float64(y) * c.scaleY))
}

// span maps the logical range [p, p+n) to cells [from, to). A non-empty
// range always covers at least one cell.
func span(p, n int, scale float64) (int, int) {
	from := int(math.Floor(float64(p) * scale))
	to := int(math.Floor(float64(p+n) * scale))
	if n > 0 && to <= from {
		to = from + 1
	}
	return from, to
}

// FillRect fills every cell the rectangle maps to.
func (c *ScaledCanvas) FillRect(x, y, w, h int, col core.Color) {
	if core.NewRect(x, y, w, h).Empty() {
		return
	}
	x0, x1 := span(x, w, c.scaleX)
	y0, y1 := span(y, h, c.scaleY)
	c.screen.FillBg(core.NewRect(x0, y0, x1-x0, y1-y0), col)
}

// DrawText writes text starting at the cell holding (x, y), one rune per
// cell, over whatever background is already there.
func (c *ScaledCanvas) DrawText(x, y int, text string, col core.Color) {
	cx, cy := c.Cell(x, y)
	c.screen.DrawText(cx, cy, text, col)
}

// Present is a no-op: the screen is read directly by the renderer.
func (c *ScaledCanvas) Present() {}
