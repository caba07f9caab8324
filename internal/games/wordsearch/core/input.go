package core

// Phase is the stage of a pointer gesture.
type Phase int

const (
	PhaseDown   Phase = iota // Button pressed / touch started
	PhaseMove                // Pointer moved while pressed
	PhaseUp                  // Button released / touch ended
	PhaseCancel              // Gesture interrupted by the host
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Pointer is a normalized pointer event in host coordinates. Mouse and
// touch sources are both converted to this shape before reaching the engine.
type Pointer struct {
	X     int
	Y     int
	Phase Phase
}

// HitTester resolves host coordinates to a grid cell. The renderer owns the
// geometry and implements it.
type HitTester interface {
	HitTest(x, y int) (Cell, bool)
}

// HitTestFunc adapts a function to HitTester.
type HitTestFunc func(x, y int) (Cell, bool)

// HitTest calls f(x, y).
func (f HitTestFunc) HitTest(x, y int) (Cell, bool) {
	return f(x, y)
}

// InputAdapter turns pointer events into Begin/Extend/Release calls.
type InputAdapter struct {
	state *State
	hits  HitTester
}

// NewInputAdapter binds an adapter to a state and a hit tester.
func NewInputAdapter(state *State, hits HitTester) *InputAdapter {
	return &InputAdapter{state: state, hits: hits}
}

// SetHitTester swaps the geometry, e.g. after a resize or zoom change.
func (a *InputAdapter) SetHitTester(hits HitTester) {
	a.hits = hits
}

// Handle processes one pointer event. Releases are honoured wherever the
// pointer is, so a drag that ends outside the grid is still evaluated.
func (a *InputAdapter) Handle(ev Pointer) Result {
	switch ev.Phase {
	case PhaseUp, PhaseCancel:
		return a.state.Release()
	}

	cell, ok := a.hits.HitTest(ev.X, ev.Y)
	if !ok {
		// Off-grid presses start nothing; off-grid moves keep the last line.
		return Result{Outcome: OutcomeIdle}
	}
	return a.HandleCell(cell, ev.Phase)
}

// HandleCell processes an event that is already resolved to a cell, as
// produced by a keyboard cursor.
func (a *InputAdapter) HandleCell(cell Cell, phase Phase) Result {
	switch phase {
	case PhaseDown:
		var res Result
		if a.state.Selecting() {
			// The host lost the previous release; evaluate it before starting over.
			res = a.state.Release()
		}
		// An out-of-bounds cell from a misbehaving hit tester starts nothing.
		_ = a.state.Begin(cell)
		return res
	case PhaseMove:
		if a.state.Selecting() {
			a.state.Extend(cell)
		}
	case PhaseUp, PhaseCancel:
		return a.state.Release()
	}
	return Result{Outcome: OutcomeIdle}
}
