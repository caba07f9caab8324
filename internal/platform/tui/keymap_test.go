package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"left h", runeKey("h"), core.ActionLeft, false},
		{"right d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionSelect, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect, false},
		{"plus", runeKey("+"), core.ActionZoomIn, false},
		{"equals", runeKey("="), core.ActionZoomIn, false},
		{"minus", runeKey("-"), core.ActionZoomOut, false},
		{"zero", runeKey("0"), core.ActionZoomReset, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"replay", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameSkipsBack(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame)
	if !frame.Empty() {
		t.Errorf("Back should not reach the game, frame = %+v", frame)
	}

	km.MapKeyToFrame(runeKey("+"), &frame)
	if !frame.Has(core.ActionZoomIn) {
		t.Error("ZoomIn missing from frame")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.MouseMsg
		ok    bool
		phase core.PointerPhase
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, core.PointerPress},
		{"left drag", tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, true, core.PointerDrag},
		{"release", tea.MouseMsg{X: 6, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, true, core.PointerRelease},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false, 0},
		{"hover", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tt.msg)
			if ok != tt.ok {
				t.Fatalf("MapMouse ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Phase != tt.phase || ev.X != tt.msg.X || ev.Y != tt.msg.Y {
				t.Errorf("MapMouse = %+v, want phase %v at (%d,%d)", ev, tt.phase, tt.msg.X, tt.msg.Y)
			}
		})
	}
}

func TestMapMouseToFrameCtrlWheelZooms(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, Ctrl: true}, &frame)
	if !frame.Has(core.ActionZoomIn) || len(frame.Pointers) != 0 {
		t.Errorf("ctrl+wheel up: frame = %+v", frame)
	}

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, &frame)
	if !frame.Empty() {
		t.Errorf("plain wheel should be ignored, frame = %+v", frame)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
