package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/just-jump/internal/core"
)

// Debug font glyph cell.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// imageCanvas draws Canvas calls onto an ebiten image. Logical pixels map
// one to one; the window scales the whole image.
type imageCanvas struct {
	dst     *ebiten.Image
	width   int
	scratch *ebiten.Image // One text line, tinted when drawn
}

func newImageCanvas(width int) *imageCanvas {
	return &imageCanvas{width: max(width, glyphWidth)}
}

func (c *imageCanvas) FillRect(x, y, w, h int, col core.Color) {
	if col.IsDefault() || core.NewRect(x, y, w, h).Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.RGBA(), false)
}

// DrawText prints with the debug font, which is always white, then tints the
// line to the requested color.
func (c *imageCanvas) DrawText(x, y int, text string, col core.Color) {
	if c.scratch == nil {
		c.scratch = ebiten.NewImage(c.width, glyphHeight)
	}
	c.scratch.Clear()
	ebitenutil.DebugPrintAt(c.scratch, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	if !col.IsDefault() {
		op.ColorScale.ScaleWithColor(col.RGBA())
	}
	c.dst.DrawImage(c.scratch, op)
}

func (c *imageCanvas) Present() {}
