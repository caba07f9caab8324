package core

import "testing"

type recorder struct {
	matches   []string
	misses    int
	completes int
}

func (r *recorder) OnMatch(fw FoundWord) { r.matches = append(r.matches, fw.Word) }
func (r *recorder) OnMiss(Selection)     { r.misses++ }
func (r *recorder) OnComplete()          { r.completes++ }

func TestStateMatchOnce(t *testing.T) {
	s := newSillyWishes(t)
	path := sillyWishesPaths["TREES"]

	res := drag(t, s, path[0], path[1])
	if res.Outcome != OutcomeMatch || res.Found.Word != "TREES" {
		t.Fatalf("first drag = %v %q, want match TREES", res.Outcome, res.Found.Word)
	}
	if !s.IsFound("TREES") {
		t.Error("TREES should be found")
	}

	res = drag(t, s, path[1], path[0])
	if res.Outcome != OutcomeMiss {
		t.Errorf("second drag over a found word = %v, want miss", res.Outcome)
	}

	if found, _ := s.Progress(); found != 1 {
		t.Errorf("found = %d, want 1", found)
	}
	if s.Selecting() || !s.Selection().Empty() {
		t.Error("Release should clear the selection")
	}
}

func TestStateMissClearsSelection(t *testing.T) {
	s := newSillyWishes(t)
	rec := &recorder{}
	s.Subscribe(rec)

	res := drag(t, s, At(0, 0), At(0, 3))
	if res.Outcome != OutcomeMiss {
		t.Fatalf("outcome = %v, want miss", res.Outcome)
	}
	if res.Selection.Len() != 4 {
		t.Errorf("evaluated selection = %v, want 4 cells", res.Selection)
	}
	if rec.misses != 1 || len(rec.matches) != 0 {
		t.Errorf("observer saw %d misses %v matches", rec.misses, rec.matches)
	}
	if !s.Selection().Empty() {
		t.Error("a miss should discard the selection")
	}
}

func TestStateReleaseWithoutGesture(t *testing.T) {
	s := newSillyWishes(t)
	rec := &recorder{}
	s.Subscribe(rec)

	if res := s.Release(); res.Outcome != OutcomeIdle {
		t.Errorf("Release with no gesture = %v, want idle", res.Outcome)
	}
	if rec.misses != 0 {
		t.Error("an idle release must not notify observers")
	}
}

func TestStateCompletionFiresOnce(t *testing.T) {
	s := newSillyWishes(t)
	rec := &recorder{}
	s.Subscribe(rec)

	for i, word := range sillyWishesWords {
		path := sillyWishesPaths[word]
		res := drag(t, s, path[0], path[1])
		if res.Outcome != OutcomeMatch {
			t.Fatalf("drag for %s = %v", word, res.Outcome)
		}

		last := i == len(sillyWishesWords)-1
		if res.Completed != last {
			t.Errorf("%s: Completed = %v, want %v", word, res.Completed, last)
		}
		if s.IsComplete() != last {
			t.Errorf("%s: IsComplete = %v, want %v", word, s.IsComplete(), last)
		}
	}

	if rec.completes != 1 {
		t.Fatalf("completion fired %d times, want 1", rec.completes)
	}

	// More releases after completion never re-fire.
	drag(t, s, At(0, 0), At(0, 2))
	drag(t, s, At(0, 7), At(4, 7))
	if rec.completes != 1 {
		t.Errorf("completion fired again after more releases: %d", rec.completes)
	}
	if len(rec.matches) != len(sillyWishesWords) {
		t.Errorf("matches = %d, want %d", len(rec.matches), len(sillyWishesWords))
	}
}

func TestStateResetRearmsCompletion(t *testing.T) {
	grid, _ := NewGrid([]string{"AB"})
	words, _ := NewWordList([]string{"AB"})
	s := NewState(grid, words)

	completes := 0
	s.Subscribe(ObserverFuncs{Complete: func() { completes++ }})

	drag(t, s, At(0, 0), At(0, 1))
	s.Reset()
	s.Reset()

	if found, total := s.Progress(); found != 0 || total != 1 {
		t.Errorf("after Reset progress = %d/%d", found, total)
	}
	if s.IsComplete() {
		t.Error("IsComplete after Reset should be false")
	}

	res := drag(t, s, At(0, 1), At(0, 0))
	if !res.Completed {
		t.Error("completing again after Reset should fire")
	}
	if completes != 2 {
		t.Errorf("completes = %d, want 2", completes)
	}
}

func TestStateResetClearsGesture(t *testing.T) {
	s := newSillyWishes(t)
	if err := s.Begin(At(1, 1)); err != nil {
		t.Fatal(err)
	}
	s.Reset()

	if s.Selecting() {
		t.Error("Reset should close the open gesture")
	}
	if res := s.Release(); res.Outcome != OutcomeIdle {
		t.Errorf("Release after Reset = %v, want idle", res.Outcome)
	}
}

func TestStateFoundCells(t *testing.T) {
	s := newSillyWishes(t)
	path := sillyWishesPaths["BEANS"]
	drag(t, s, path[1], path[0])

	fw, ok := s.FoundWord("BEANS")
	if !ok {
		t.Fatal("BEANS should be found")
	}
	if fw.Cells.First() != path[1] {
		t.Errorf("found cells should keep drag order, first = %s", fw.Cells.First())
	}
	for col := 2; col <= 6; col++ {
		if !s.IsFoundCell(At(11, col)) {
			t.Errorf("(11,%d) should be a found cell", col)
		}
	}
	if s.IsFoundCell(At(11, 7)) {
		t.Error("(11,7) should not be a found cell")
	}

	snap := s.Snapshot()
	if snap.FoundN != 1 || snap.Total != 14 || snap.Complete {
		t.Errorf("snapshot = %d/%d complete=%v", snap.FoundN, snap.Total, snap.Complete)
	}
	if len(snap.Rows) != 15 || snap.Rows[11] != "HUBEANSRVUWOTBI" {
		t.Error("snapshot rows should mirror the grid")
	}
}

func TestStateBeginOutOfBounds(t *testing.T) {
	s := newSillyWishes(t)
	if err := s.Begin(At(20, 0)); err == nil {
		t.Error("Begin out of bounds should fail")
	}
	if s.Selecting() {
		t.Error("failed Begin must not open a gesture")
	}
}
