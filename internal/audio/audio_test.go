package audio

import (
	"bytes"
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/vovakirdan/tui-wordsearch/internal/core"
)

type recordingSink struct{ got []Signal }

func (r *recordingSink) Play(s Signal) { r.got = append(r.got, s) }

func TestFromEvent(t *testing.T) {
	tests := []struct {
		event  core.Event
		signal Signal
		ok     bool
	}{
		{core.EventMatch, SignalMatch, true},
		{core.EventMiss, SignalMiss, true},
		{core.EventComplete, SignalComplete, true},
		{core.Event(0), 0, false},
	}

	for _, tc := range tests {
		s, ok := FromEvent(tc.event)
		if ok != tc.ok || (ok && s != tc.signal) {
			t.Errorf("FromEvent(%v) = %v, %v; want %v, %v", tc.event, s, ok, tc.signal, tc.ok)
		}
	}
}

func TestPlayEventsAndMulti(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	sink := Multi{a, nil, b, Nop{}}

	PlayEvents(sink, []core.Event{core.EventMatch, core.EventComplete, core.Event(42)})

	for _, r := range []*recordingSink{a, b} {
		if len(r.got) != 2 || r.got[0] != SignalMatch || r.got[1] != SignalComplete {
			t.Errorf("sink got %v", r.got)
		}
	}

	PlayEvents(nil, []core.Event{core.EventMiss})
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)

	bell.Play(SignalMatch)
	bell.Play(SignalMiss)
	bell.Play(SignalComplete)
	if buf.String() != "\a\a" {
		t.Errorf("bell wrote %q, want two BELs", buf.String())
	}

	buf.Reset()
	bell.OnMatch = true
	bell.Play(SignalMatch)
	if buf.String() != "\a" {
		t.Errorf("bell with OnMatch wrote %q", buf.String())
	}
}

// drain reads a streamer to the end and returns the sample count and peak.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestSignalStreamerLengths(t *testing.T) {
	rate := beep.SampleRate(8000)

	tests := []struct {
		signal Signal
		want   int
	}{
		{SignalMatch, rate.N(MatchTone.Duration)},
		{SignalMiss, rate.N(MissTone.Duration)},
		{SignalComplete, rate.N(completeNoteLen) * len(CompleteNotes)},
	}

	for _, tc := range tests {
		n, peak := drain(SignalStreamer(tc.signal, 1, rate))
		if n != tc.want {
			t.Errorf("%v: %d samples, want %d", tc.signal, n, tc.want)
		}
		if peak <= 0 || peak > 0.31 {
			t.Errorf("%v: peak %v outside (0, 0.31]", tc.signal, peak)
		}
	}
}

func TestToneVolumeScales(t *testing.T) {
	rate := beep.SampleRate(8000)

	_, loud := drain(NewTone(MatchTone, 1, rate))
	_, quiet := drain(NewTone(MatchTone, 0.5, rate))
	if math.Abs(quiet-loud/2) > 1e-9 {
		t.Errorf("half volume peak = %v, want %v", quiet, loud/2)
	}

	_, silent := drain(NewTone(MissTone, 0, rate))
	if silent != 0 {
		t.Errorf("zero volume should be silent, peak %v", silent)
	}
}

func TestRamp(t *testing.T) {
	if got := ramp(100, 200, 0.5, RampLinear); got != 150 {
		t.Errorf("linear midpoint = %v", got)
	}
	if got := ramp(100, 400, 0.5, RampExponential); math.Abs(got-200) > 1e-9 {
		t.Errorf("exponential midpoint = %v, want 200", got)
	}
	if got := ramp(0, 1, 0.5, RampExponential); got != 0.5 {
		t.Errorf("exponential from zero should fall back to linear, got %v", got)
	}
}
