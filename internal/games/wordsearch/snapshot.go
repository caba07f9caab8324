package wordsearch

import (
	"time"

	wscore "github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateComplete    GameStateType = "complete"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "fixed" or "random"
	PuzzleID  string
	Rows      []string
	Words     []string
	Found     []string // In the order they were found
	Selection wscore.Selection
	Cursor    wscore.Cell
	Zoom      int
	CellW     int // Effective cell width after fitting the screen
	Elapsed   time.Duration
	Flights   int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil || g.state == nil:
		return Snapshot{Tick: g.tick, Mode: string(g.mode), State: StateError}
	case g.tooSmall:
		state = StatePausedSmall
	case g.completed:
		state = StateComplete
	case g.paused:
		state = StatePaused
	}

	es := g.state.Snapshot()
	found := make([]string, len(es.Found))
	for i, fw := range es.Found {
		found[i] = fw.Word
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		PuzzleID:  g.puzzle.ID,
		Rows:      es.Rows,
		Words:     es.Words,
		Found:     found,
		Selection: es.Selection,
		Cursor:    g.cursor,
		Zoom:      g.zoom,
		CellW:     g.layout.CellW,
		Elapsed:   g.elapsed,
		Flights:   len(g.flights),
		State:     state,
	}
}
