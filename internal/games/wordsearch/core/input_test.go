package core

import "testing"

// gridHits maps 2-column-wide cells starting at (ox, oy).
func gridHits(ox, oy, rows, cols int) HitTester {
	return HitTestFunc(func(x, y int) (Cell, bool) {
		if x < ox || y < oy {
			return Cell{}, false
		}
		c := Cell{Row: y - oy, Col: (x - ox) / 2}
		if c.Row >= rows || c.Col >= cols {
			return Cell{}, false
		}
		return c, true
	})
}

func TestInputAdapterDrag(t *testing.T) {
	s := newSillyWishes(t)
	a := NewInputAdapter(s, gridHits(4, 2, 15, 15))

	// TREES runs (0,7)..(4,7): x = 4 + 7*2, y = 2..6.
	a.Handle(Pointer{X: 18, Y: 2, Phase: PhaseDown})
	for y := 3; y <= 6; y++ {
		a.Handle(Pointer{X: 19, Y: y, Phase: PhaseMove})
	}
	res := a.Handle(Pointer{X: 18, Y: 6, Phase: PhaseUp})

	if res.Outcome != OutcomeMatch || res.Found.Word != "TREES" {
		t.Fatalf("drag = %v %q, want TREES", res.Outcome, res.Found.Word)
	}
}

func TestInputAdapterMoveOffGridKeepsSelection(t *testing.T) {
	s := newSillyWishes(t)
	a := NewInputAdapter(s, gridHits(0, 0, 15, 15))

	a.Handle(Pointer{X: 0, Y: 0, Phase: PhaseDown})
	a.Handle(Pointer{X: 4, Y: 0, Phase: PhaseMove})
	a.Handle(Pointer{X: 100, Y: 100, Phase: PhaseMove})

	if got := s.Selection(); got.Len() != 3 || got.Last() != At(0, 2) {
		t.Errorf("selection after off-grid move = %v", got)
	}
}

func TestInputAdapterReleaseOffGrid(t *testing.T) {
	s := newSillyWishes(t)
	a := NewInputAdapter(s, gridHits(0, 0, 15, 15))

	// BEANS runs (11,2)..(11,6).
	a.Handle(Pointer{X: 4, Y: 11, Phase: PhaseDown})
	a.Handle(Pointer{X: 12, Y: 11, Phase: PhaseMove})
	res := a.Handle(Pointer{X: 500, Y: 500, Phase: PhaseUp})

	if res.Outcome != OutcomeMatch || res.Found.Word != "BEANS" {
		t.Errorf("off-grid release = %v %q, want BEANS", res.Outcome, res.Found.Word)
	}
}

func TestInputAdapterDownOffGrid(t *testing.T) {
	s := newSillyWishes(t)
	a := NewInputAdapter(s, gridHits(10, 10, 15, 15))

	if res := a.Handle(Pointer{X: 1, Y: 1, Phase: PhaseDown}); res.Outcome != OutcomeIdle {
		t.Errorf("off-grid press = %v", res.Outcome)
	}
	if s.Selecting() {
		t.Error("off-grid press must not start a gesture")
	}
	if res := a.Handle(Pointer{X: 1, Y: 1, Phase: PhaseMove}); res.Outcome != OutcomeIdle {
		t.Errorf("move without gesture = %v", res.Outcome)
	}
}

func TestInputAdapterDownWhileActive(t *testing.T) {
	s := newSillyWishes(t)
	a := NewInputAdapter(s, gridHits(0, 0, 15, 15))

	path := sillyWishesPaths["SAUSAGES"]
	a.HandleCell(path[0], PhaseDown)
	a.HandleCell(path[1], PhaseMove)

	// A second press without a release evaluates the stale gesture.
	res := a.HandleCell(At(0, 0), PhaseDown)
	if res.Outcome != OutcomeMatch || res.Found.Word != "SAUSAGES" {
		t.Fatalf("stale gesture = %v %q, want SAUSAGES", res.Outcome, res.Found.Word)
	}
	if !s.Selecting() || s.Selection().First() != At(0, 0) {
		t.Error("new gesture should start at (0,0)")
	}
}

func TestInputAdapterCancel(t *testing.T) {
	s := newSillyWishes(t)
	a := NewInputAdapter(s, gridHits(0, 0, 15, 15))

	a.HandleCell(At(0, 0), PhaseDown)
	res := a.Handle(Pointer{Phase: PhaseCancel})
	if res.Outcome != OutcomeMiss {
		t.Errorf("cancel = %v, want miss", res.Outcome)
	}
	if s.Selecting() {
		t.Error("cancel should close the gesture")
	}
}

func TestInputAdapterSetHitTester(t *testing.T) {
	s := newSillyWishes(t)
	a := NewInputAdapter(s, gridHits(0, 0, 15, 15))
	a.SetHitTester(gridHits(50, 0, 15, 15))

	a.Handle(Pointer{X: 0, Y: 0, Phase: PhaseDown})
	if s.Selecting() {
		t.Error("old geometry should no longer hit")
	}
	a.Handle(Pointer{X: 50, Y: 0, Phase: PhaseDown})
	if !s.Selecting() {
		t.Error("new geometry should hit")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseDown, "down"},
		{PhaseMove, "move"},
		{PhaseUp, "up"},
		{PhaseCancel, "cancel"},
		{Phase(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tc.phase, got, tc.expected)
		}
	}
}
