package core

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionJump        // Space, Up, W - jump and confirm screens
	ActionQuit        // Esc - leave the game from screens that allow it
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held down when the host sampled input
// for one tick. It has polling semantics: an action stays in the frame for
// as long as its key is held.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// HeldFrame builds a frame with the given actions held.
func HeldFrame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is held in this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// ReleaseEdge fires once when a held key is let go. It remembers whether the
// key was down at the previous sample, so holding a key can never fire twice.
//
// A disarmed detector ignores the key until it has seen it released and then
// pressed again; screens disarm it on entry so a key still held from the
// previous screen does not skip the new one.
type ReleaseEdge struct {
	wasDown  bool
	disarmed bool
}

// Sample feeds the current key state and reports whether a release edge
// (down at the previous sample, up now) occurred.
func (e *ReleaseEdge) Sample(down bool) bool {
	if e.disarmed {
		if !down {
			e.disarmed = false
		}
		e.wasDown = false
		return false
	}

	fired := e.wasDown && !down
	e.wasDown = down
	return fired
}

// Disarm makes the detector wait for a fresh press before it can fire.
func (e *ReleaseEdge) Disarm() {
	e.disarmed = true
	e.wasDown = false
}
