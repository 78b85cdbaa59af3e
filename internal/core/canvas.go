package core

// Canvas is the render collaborator consumed by the simulation.
// Coordinates are logical pixels; hosts scale them to their output.
type Canvas interface {
	// FillRect fills a w x h rectangle whose top-left corner is (x, y).
	FillRect(x, y, w, h int, c Color)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)

	// Present marks the end of a frame.
	Present()
}

// DrawOp is one recorded Canvas call.
type DrawOp struct {
	Text bool // DrawText when true, FillRect otherwise
	X, Y int
	W, H int
	S    string
	C    Color
}

// DisplayList records Canvas calls into a back buffer and publishes it on
// Present. Hosts whose draw callback is decoupled from the update loop (a
// window toolkit, tests) replay the last published frame.
type DisplayList struct {
	back  []DrawOp
	front []DrawOp
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{
		back:  make([]DrawOp, 0, 64),
		front: make([]DrawOp, 0, 64),
	}
}

// FillRect records a filled rectangle.
func (d *DisplayList) FillRect(x, y, w, h int, c Color) {
	d.back = append(d.back, DrawOp{X: x, Y: y, W: w, H: h, C: c})
}

// DrawText records a text line.
func (d *DisplayList) DrawText(x, y int, text string, c Color) {
	d.back = append(d.back, DrawOp{Text: true, X: x, Y: y, S: text, C: c})
}

// Present publishes the recorded frame and starts a new one.
func (d *DisplayList) Present() {
	d.front, d.back = d.back, d.front[:0]
}

// Frame returns the last published frame. The slice is reused by the next
// Present; callers must not keep it.
func (d *DisplayList) Frame() []DrawOp {
	return d.front
}

// Replay draws the last published frame onto dst without presenting it.
func (d *DisplayList) Replay(dst Canvas) {
	for _, op := range d.Frame() {
		if op.Text {
			dst.DrawText(op.X, op.Y, op.S, op.C)
		} else {
			dst.FillRect(op.X, op.Y, op.W, op.H, op.C)
		}
	}
}
