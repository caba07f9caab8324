package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/tui-wordsearch/internal/registry"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	useCatPuzzle(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewSessionModel(cfg, Options{Store: openTestStore(t), Player: "dave"})
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)
	if m.SessionID() == "" {
		t.Error("session without ID")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.gameModel.game.ID() != wordsearch.IDFixed {
		t.Errorf("started %q", m.gameModel.game.ID())
	}

	m = send(t, m, TickMsg{Loop: m.gameModel.loop})
	if got := m.gameModel.State().Level; got != "cat" {
		t.Errorf("playing %q, want cat", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("Esc should return to the menu, screen = %v", m.screen)
	}
	if m.quitting {
		t.Error("session quit on back")
	}
}

func TestSessionRandomSetup(t *testing.T) {
	m := newTestSession(t)

	// The generator entry is last
	for range len(m.menu.items) - 1 {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenRandom {
		t.Fatalf("screen = %v, want random setup", m.screen)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("Esc from random setup: screen = %v, want menu", m.screen)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, want scoreboard", m.screen)
	}
	if m.View() == "" {
		t.Error("empty scoreboard view")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}

func TestApplyRandomSelection(t *testing.T) {
	g, err := registry.Create(wordsearch.IDRandom)
	if err != nil {
		t.Fatal(err)
	}
	deck := wordsearch.Config().Generator.Deck
	if err := applyRandomSelection(g, RandomSelection{Difficulty: "easy", Deck: deck}); err != nil {
		t.Fatalf("applyRandomSelection() failed: %v", err)
	}
	if err := applyRandomSelection(g, RandomSelection{Difficulty: "brutal"}); err == nil {
		t.Error("unknown difficulty should fail")
	}

	fixed, err := registry.Create(wordsearch.IDFixed)
	if err != nil {
		t.Fatal(err)
	}
	if err := applyRandomSelection(fixed, RandomSelection{Difficulty: "easy"}); err == nil {
		t.Error("fixed game should reject a difficulty")
	}
}
