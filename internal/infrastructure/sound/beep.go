package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/clickball/internal/infrastructure/config"
)

// BeepPlayer plays cues through the system speaker via beep
type BeepPlayer struct {
	rate   beep.SampleRate
	freqs  map[Cue]float64
	dur    time.Duration
	volume float64
}

// NewBeepPlayer initializes the speaker. Call Close when done.
func NewBeepPlayer(cfg config.AudioConfig) (*BeepPlayer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &BeepPlayer{
		rate:   rate,
		freqs:  Frequencies(cfg),
		dur:    Duration(cfg),
		volume: cfg.Volume,
	}, nil
}

// Play mixes the cue into whatever is already playing
func (p *BeepPlayer) Play(c Cue) {
	s, err := p.streamer(c)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (p *BeepPlayer) streamer(c Cue) (beep.Streamer, error) {
	freq, ok := p.freqs[c]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %s", c)
	}
	tone, err := generators.SineTone(p.rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone for cue %s: %w", c, err)
	}
	// Gain scales by 1+Gain
	quiet := &effects.Gain{Streamer: tone, Gain: p.volume - 1}
	return beep.Take(p.rate.N(p.dur), quiet), nil
}

// Close stops playback and releases the audio device
func (p *BeepPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}
