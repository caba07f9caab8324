package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move the cursor up
	ActionDown             // S, Down arrow - move the cursor down
	ActionLeft             // A, Left arrow - move the cursor left
	ActionRight            // D, Right arrow - move the cursor right
	ActionSelect           // Space, Enter - start or finish a keyboard selection
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - replay the same puzzle
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause the timer
	ActionZoomIn           // + or = - larger cells
	ActionZoomOut          // - - smaller cells
	ActionZoomReset        // 0 - default cell size
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionZoomReset:
		return "ZoomReset"
	default:
		return "Unknown"
	}
}

// PointerPhase is the stage of a mouse or touch gesture.
type PointerPhase int

const (
	PointerPress   PointerPhase = iota // Button pressed
	PointerDrag                        // Moved while pressed
	PointerRelease                     // Button released
	PointerCancel                      // Gesture interrupted (focus lost, resize)
)

// PointerEvent is a pointer event in screen cell coordinates.
type PointerEvent struct {
	X, Y  int
	Phase PointerPhase
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointers holds pointer events in arrival order. Order matters: a press
	// followed by a release in the same tick is a complete click.
	Pointers []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to the frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointers) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointers) > 0 {
		clone.Pointers = append([]PointerEvent(nil), f.Pointers...)
	}
	return clone
}
