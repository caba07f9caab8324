// Package audio plays short feedback sounds for matches, misses and
// completed puzzles.
package audio

import (
	"io"
	"sync"

	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

// Signal is a feedback sound.
type Signal int

const (
	SignalMatch    Signal = iota // Rising chirp
	SignalMiss                   // Low falling buzz
	SignalComplete               // Short arpeggio
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalMatch:
		return "match"
	case SignalMiss:
		return "miss"
	case SignalComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Sink plays signals. Play must return quickly; implementations that
// produce sound do so asynchronously.
type Sink interface {
	Play(s Signal)
}

// FromEvent maps a game event to its signal.
func FromEvent(e core.Event) (Signal, bool) {
	switch e {
	case core.EventMatch:
		return SignalMatch, true
	case core.EventMiss:
		return SignalMiss, true
	case core.EventComplete:
		return SignalComplete, true
	}
	return 0, false
}

// PlayEvents forwards every mapped event to the sink.
func PlayEvents(sink Sink, events []core.Event) {
	if sink == nil {
		return
	}
	for _, e := range events {
		if s, ok := FromEvent(e); ok {
			sink.Play(s)
		}
	}
}

// Nop discards every signal.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Signal) {}

// Multi fans a signal out to several sinks.
type Multi []Sink

// Play forwards s to every non-nil sink.
func (m Multi) Play(s Signal) {
	for _, sink := range m {
		if sink != nil {
			sink.Play(s)
		}
	}
}

// Bell rings the terminal bell. It is the fallback when no audio device is
// available and the only option inside an SSH session.
type Bell struct {
	mu sync.Mutex
	w  io.Writer

	// OnMatch also rings for matches; by default only misses and
	// completions ring so a fast solver is not drowned in beeps.
	OnMatch bool
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL for the signals the bell reacts to. Write errors are ignored.
func (b *Bell) Play(s Signal) {
	if s == SignalMatch && !b.OnMatch {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}
