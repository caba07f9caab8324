package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("registry_test_a", func() Game { return &stubGame{id: "registry_test_a"} })

	if !Exists("registry_test_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("registry_test_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "registry_test_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "registry_test_a" {
			found = true
			if info.Title != "Stub registry_test_a" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List should include the registered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry_test_b", func() Game { return &stubGame{id: "registry_test_b"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("registry_test_b", func() Game { return &stubGame{id: "registry_test_b"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("error = %v, want ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("unknown game should not exist")
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}
