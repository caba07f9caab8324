package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for generated puzzles
	Zoom     int   // Zoom level restored from preferences, 0 means default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int           // Current score
	GameOver  bool          // Whether the round has ended
	Paused    bool          // Whether the game is paused
	Completed bool          // Every word found
	Level     string        // Puzzle ID, used as the scoreboard key
	Found     int           // Words found so far
	Total     int           // Words in the puzzle
	Elapsed   time.Duration // Time played, excluding pauses
	Zoom      int           // Current zoom level
}

// Event is something the platform reacts to outside the screen, such as
// sound feedback.
type Event int

const (
	EventMatch    Event = iota + 1 // A selection spelled an unfound word
	EventMiss                      // A selection was rejected
	EventComplete                  // The last word was found
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventMatch:
		return "match"
	case EventMiss:
		return "miss"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
