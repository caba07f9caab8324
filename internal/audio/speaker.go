package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// The beep speaker is process-global; it is initialized at most once.
var (
	speakerOnce sync.Once
	speakerErr  error
	speakerMix  *beep.Mixer
)

// Speaker synthesizes feedback tones on the local audio device.
type Speaker struct {
	volume float64
}

// NewSpeaker opens the audio device and returns a sink playing at volume
// (0..1). It fails when no device is available, e.g. on a headless server.
func NewSpeaker(volume float64) (*Speaker, error) {
	speakerOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
			speakerErr = fmt.Errorf("audio: speaker init: %w", err)
			return
		}
		speakerMix = &beep.Mixer{}
		speaker.Play(speakerMix)
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	return &Speaker{volume: volume}, nil
}

// Play queues the signal's sound on the mixer and returns immediately.
// Overlapping signals are mixed.
func (s *Speaker) Play(sig Signal) {
	if s == nil || s.volume <= 0 {
		return
	}
	st := SignalStreamer(sig, s.volume, sampleRate)

	speaker.Lock()
	speakerMix.Add(st)
	speaker.Unlock()
}

// Close silences anything still playing. The device stays open for the
// life of the process.
func (s *Speaker) Close() {
	if speakerMix == nil {
		return
	}
	speaker.Lock()
	speakerMix.Clear()
	speaker.Unlock()
}
