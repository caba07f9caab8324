package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
)

// Ramp is how a parameter moves from its start to its end value.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExponential
)

// Tone describes one swept note.
type Tone struct {
	Wave      WaveType
	Duration  time.Duration
	FreqStart float64
	FreqEnd   float64
	FreqRamp  Ramp
	GainStart float64
	GainEnd   float64
	GainRamp  Ramp
}

// Feedback tones. The match chirp sweeps an octave from C5 to C6.
var (
	MatchTone = Tone{
		Wave: WaveSine, Duration: 300 * time.Millisecond,
		FreqStart: 523.25, FreqEnd: 1046.50, FreqRamp: RampExponential,
		GainStart: 0.3, GainEnd: 0.01, GainRamp: RampExponential,
	}
	MissTone = Tone{
		Wave: WaveSaw, Duration: 200 * time.Millisecond,
		FreqStart: 150, FreqEnd: 100, FreqRamp: RampLinear,
		GainStart: 0.1, GainEnd: 0.01, GainRamp: RampLinear,
	}
	// CompleteNotes are played one after another: C5 E5 G5 C6.
	CompleteNotes = []float64{523.25, 659.25, 783.99, 1046.50}
)

const completeNoteLen = 120 * time.Millisecond

// ramp moves from a to b as t goes from 0 to 1.
func ramp(a, b, t float64, kind Ramp) float64 {
	if kind == RampExponential && a > 0 && b > 0 {
		return a * math.Pow(b/a, t)
	}
	return a + (b-a)*t
}

// sweep is a streamer that renders one Tone.
type sweep struct {
	tone     Tone
	rate     beep.SampleRate
	volume   float64
	phase    float64
	position int
	total    int
}

// NewTone creates a streamer for the tone scaled by volume (0..1).
func NewTone(t Tone, volume float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		tone:   t,
		rate:   rate,
		volume: volume,
		total:  rate.N(t.Duration),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.total)
		freq := ramp(s.tone.FreqStart, s.tone.FreqEnd, progress, s.tone.FreqRamp)
		gain := ramp(s.tone.GainStart, s.tone.GainEnd, progress, s.tone.GainRamp)

		var val float64
		switch s.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		}
		val *= gain * s.volume

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// SignalStreamer builds the sound for a signal.
func SignalStreamer(sig Signal, volume float64, rate beep.SampleRate) beep.Streamer {
	switch sig {
	case SignalMatch:
		return NewTone(MatchTone, volume, rate)
	case SignalMiss:
		return NewTone(MissTone, volume, rate)
	case SignalComplete:
		notes := make([]beep.Streamer, len(CompleteNotes))
		for i, f := range CompleteNotes {
			notes[i] = NewTone(Tone{
				Wave: WaveSine, Duration: completeNoteLen,
				FreqStart: f, FreqEnd: f, FreqRamp: RampLinear,
				GainStart: 0.25, GainEnd: 0.01, GainRamp: RampExponential,
			}, volume, rate)
		}
		return beep.Seq(notes...)
	}
	return beep.Silence(0)
}
