package core

// Selection is an ordered run of collinear, contiguous cells.
// An empty Selection means "no valid line".
type Selection []Cell

// Len returns the number of cells.
func (s Selection) Len() int {
	return len(s)
}

// Empty reports whether the selection has no cells.
func (s Selection) Empty() bool {
	return len(s) == 0
}

// First returns the first cell. The selection must not be empty.
func (s Selection) First() Cell {
	return s[0]
}

// Last returns the last cell. The selection must not be empty.
func (s Selection) Last() Cell {
	return s[len(s)-1]
}

// Contains reports whether c is part of the selection.
func (s Selection) Contains(c Cell) bool {
	for _, sc := range s {
		if sc == c {
			return true
		}
	}
	return false
}

// Reversed returns a copy with the cells in reverse order.
func (s Selection) Reversed() Selection {
	out := make(Selection, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}

// Clone returns a copy of the selection.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	copy(out, s)
	return out
}

// Equal reports whether both selections hold the same cells in the same order.
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Line returns the cells from start to current inclusive when they lie on a
// horizontal, vertical or 45-degree diagonal line. Any other pair yields an
// empty selection. start == current is a valid one-cell line.
func Line(start, current Cell) Selection {
	dr := current.Row - start.Row
	dc := current.Col - start.Col

	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return Selection{}
	}

	d := Dir{DR: sign(dr), DC: sign(dc)}
	count := max(abs(dr), abs(dc)) + 1

	cells := make(Selection, count)
	for i := range count {
		cells[i] = start.Step(d, i)
	}
	return cells
}

// Tracker follows one drag gesture at a time and keeps the last valid line.
// The line is recomputed from the start cell on every Extend.
type Tracker struct {
	grid    *Grid
	start   Cell
	current Selection
	active  bool
}

// NewTracker creates a tracker bound to the grid's bounds.
func NewTracker(grid *Grid) *Tracker {
	return &Tracker{grid: grid}
}

// Begin starts a gesture at c and returns the one-cell selection.
func (t *Tracker) Begin(c Cell) (Selection, error) {
	if !t.grid.InBounds(c) {
		return nil, &OutOfBoundsError{Cell: c, Rows: t.grid.Rows(), Cols: t.grid.Cols()}
	}
	t.start = c
	t.active = true
	t.current = Selection{c}
	return t.current.Clone(), nil
}

// Extend recomputes the line from the start cell to c. When c is out of
// bounds or not on one of the 8 directions the previous selection is kept
// and false is returned.
func (t *Tracker) Extend(c Cell) (Selection, bool) {
	if !t.active {
		return nil, false
	}
	if !t.grid.InBounds(c) {
		return t.current.Clone(), false
	}

	line := Line(t.start, c)
	if line.Empty() {
		return t.current.Clone(), false
	}

	t.current = line
	return t.current.Clone(), true
}

// End finishes the gesture and returns its last valid selection.
// The tracker is cleared for the next gesture.
func (t *Tracker) End() Selection {
	sel := t.current
	t.active = false
	t.current = nil
	t.start = Cell{}
	return sel
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Start returns the gesture's start cell.
func (t *Tracker) Start() (Cell, bool) {
	return t.start, t.active
}

// Current returns a copy of the in-progress selection.
func (t *Tracker) Current() Selection {
	return t.current.Clone()
}
