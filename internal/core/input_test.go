package core

import (
	"testing"
	"time"
)

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionZoomIn)
	if !f.Has(ActionZoomIn) || f.Has(ActionZoomOut) {
		t.Error("Set should mark only the given action")
	}
	if f.Empty() {
		t.Error("frame with an action is not empty")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFramePointersKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerEvent{X: 1, Y: 2, Phase: PointerPress})
	f.AddPointer(PointerEvent{X: 3, Y: 2, Phase: PointerDrag})
	f.AddPointer(PointerEvent{X: 3, Y: 2, Phase: PointerRelease})

	want := []PointerPhase{PointerPress, PointerDrag, PointerRelease}
	for i, p := range f.Pointers {
		if p.Phase != want[i] {
			t.Errorf("pointer %d phase = %d, want %d", i, p.Phase, want[i])
		}
	}

	clone := f.Clone()
	f.Clear()
	if len(clone.Pointers) != 3 {
		t.Errorf("Clone should be independent of Clear, got %d pointers", len(clone.Pointers))
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionSelect, "Select"},
		{ActionZoomReset, "ZoomReset"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60, got %v", got)
	}
}

func TestEventString(t *testing.T) {
	if EventMatch.String() != "match" || EventMiss.String() != "miss" || EventComplete.String() != "complete" {
		t.Error("unexpected event names")
	}
	if Event(0).String() != "unknown" {
		t.Error("zero event should be unknown")
	}
}
