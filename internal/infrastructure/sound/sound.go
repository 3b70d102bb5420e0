// Package sound plays short synthesized cues for game events.
package sound

import (
	"math"
	"time"

	"github.com/younwookim/clickball/internal/infrastructure/config"
)

// Cue identifies a game event with a sound
type Cue int

const (
	CueHit Cue = iota
	CueTimeout
	CueWin
	CueLose
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "Hit"
	case CueTimeout:
		return "Timeout"
	case CueWin:
		return "Win"
	case CueLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Player plays cues. Implementations must not block the game loop.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that stays silent
type Nop struct{}

// Play does nothing
func (Nop) Play(Cue) {}

// Frequencies maps each cue to its tone in Hz
func Frequencies(cfg config.AudioConfig) map[Cue]float64 {
	return map[Cue]float64{
		CueHit:     cfg.HitFreq,
		CueTimeout: cfg.TimeoutFreq,
		CueWin:     cfg.WinFreq,
		CueLose:    cfg.LoseFreq,
	}
}

// Duration returns the configured cue length
func Duration(cfg config.AudioConfig) time.Duration {
	return time.Duration(cfg.DurationMs) * time.Millisecond
}

// fadeSamples is the length of the linear fade at each end of a tone
const fadeSamples = 64

// SinePCM synthesizes a sine tone as 16-bit little-endian stereo PCM.
// The ends are faded to avoid clicks.
func SinePCM(sampleRate int, freq float64, dur time.Duration, volume float64) []byte {
	n := int(float64(sampleRate) * dur.Seconds())
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1.0
		if i < fadeSamples {
			env = float64(i) / fadeSamples
		} else if n-i < fadeSamples {
			env = float64(n-i) / fadeSamples
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * env
		s := int16(v * math.MaxInt16)
		// left, right
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
