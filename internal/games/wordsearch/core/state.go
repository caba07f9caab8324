package core

// Outcome classifies what a Release did.
type Outcome int

const (
	OutcomeIdle  Outcome = iota // No gesture was open
	OutcomeMatch                // Selection spelled an unfound word
	OutcomeMiss                 // Selection was evaluated and rejected
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMatch:
		return "match"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Result is returned by Release.
type Result struct {
	Outcome   Outcome
	Found     FoundWord // Set when Outcome == OutcomeMatch
	Selection Selection // The evaluated selection
	Completed bool      // True only on the release that found the last word
}

// Observer receives engine events. Calls happen synchronously inside
// Release; implementations must not block.
type Observer interface {
	OnMatch(fw FoundWord)
	OnMiss(sel Selection)
	OnComplete()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Match    func(FoundWord)
	Miss     func(Selection)
	Complete func()
}

func (o ObserverFuncs) OnMatch(fw FoundWord) {
	if o.Match != nil {
		o.Match(fw)
	}
}

func (o ObserverFuncs) OnMiss(sel Selection) {
	if o.Miss != nil {
		o.Miss(sel)
	}
}

func (o ObserverFuncs) OnComplete() {
	if o.Complete != nil {
		o.Complete()
	}
}

// State owns a puzzle's grid, word list, the open gesture and the found words.
type State struct {
	grid      *Grid
	words     *WordList
	tracker   *Tracker
	found     []FoundWord
	foundIdx  map[string]int
	completed bool // completion already signalled since the last reset
	observers []Observer
}

// NewState creates a fresh game over the given puzzle.
func NewState(grid *Grid, words *WordList) *State {
	return &State{
		grid:     grid,
		words:    words,
		tracker:  NewTracker(grid),
		foundIdx: make(map[string]int),
	}
}

// Subscribe registers an observer for match, miss and completion events.
func (s *State) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Grid returns the puzzle grid.
func (s *State) Grid() *Grid {
	return s.grid
}

// Words returns the puzzle word list.
func (s *State) Words() *WordList {
	return s.words
}

// Begin opens a gesture at c.
func (s *State) Begin(c Cell) error {
	_, err := s.tracker.Begin(c)
	return err
}

// Extend moves the open gesture's end to c and returns the current selection.
// Invalid targets leave the selection unchanged.
func (s *State) Extend(c Cell) Selection {
	sel, _ := s.tracker.Extend(c)
	return sel
}

// Selecting reports whether a gesture is open.
func (s *State) Selecting() bool {
	return s.tracker.Active()
}

// Selection returns the open gesture's cells for live highlighting.
func (s *State) Selection() Selection {
	return s.tracker.Current()
}

// Release closes the open gesture and evaluates it. The selection is
// discarded whether or not it matched.
func (s *State) Release() Result {
	if !s.tracker.Active() {
		return Result{Outcome: OutcomeIdle}
	}

	sel := s.tracker.End()
	fw, ok := Evaluate(s.grid, s.words, s, sel)
	if !ok {
		for _, o := range s.observers {
			o.OnMiss(sel)
		}
		return Result{Outcome: OutcomeMiss, Selection: sel}
	}

	s.foundIdx[fw.Word] = len(s.found)
	s.found = append(s.found, fw)

	res := Result{Outcome: OutcomeMatch, Found: fw, Selection: sel}
	for _, o := range s.observers {
		o.OnMatch(fw)
	}

	if s.IsComplete() && !s.completed {
		s.completed = true
		res.Completed = true
		for _, o := range s.observers {
			o.OnComplete()
		}
	}
	return res
}

// IsFound reports whether word has been found.
func (s *State) IsFound(word string) bool {
	_, ok := s.foundIdx[word]
	return ok
}

// Found returns the found words in the order they were found.
func (s *State) Found() []FoundWord {
	out := make([]FoundWord, len(s.found))
	for i, fw := range s.found {
		out[i] = FoundWord{Word: fw.Word, Cells: fw.Cells.Clone()}
	}
	return out
}

// FoundWord returns the record for word, if found.
func (s *State) FoundWord(word string) (FoundWord, bool) {
	i, ok := s.foundIdx[word]
	if !ok {
		return FoundWord{}, false
	}
	fw := s.found[i]
	return FoundWord{Word: fw.Word, Cells: fw.Cells.Clone()}, true
}

// IsFoundCell reports whether c belongs to any found word.
func (s *State) IsFoundCell(c Cell) bool {
	for _, fw := range s.found {
		if fw.Cells.Contains(c) {
			return true
		}
	}
	return false
}

// Progress returns (found, total).
func (s *State) Progress() (int, int) {
	return len(s.found), s.words.Len()
}

// IsComplete reports whether every word has been found.
func (s *State) IsComplete() bool {
	return len(s.found) == s.words.Len()
}

// Reset clears the found words and any open gesture. The grid and word list
// are kept so the same puzzle can be replayed.
func (s *State) Reset() {
	s.tracker.End()
	s.found = nil
	s.foundIdx = make(map[string]int)
	s.completed = false
}

// Snapshot is a read-only copy of the state for renderers.
type Snapshot struct {
	Rows      []string
	Words     []string
	Selection Selection
	Found     []FoundWord
	FoundN    int
	Total     int
	Complete  bool
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	found, total := s.Progress()
	return Snapshot{
		Rows:      s.grid.Lines(),
		Words:     s.words.Words(),
		Selection: s.Selection(),
		Found:     s.Found(),
		FoundN:    found,
		Total:     total,
		Complete:  s.IsComplete(),
	}
}
