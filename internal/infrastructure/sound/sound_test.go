package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/clickball/internal/infrastructure/config"
)

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{
		Enabled:     true,
		SampleRate:  44100,
		DurationMs:  100,
		Volume:      0.5,
		HitFreq:     880,
		TimeoutFreq: 220,
		WinFreq:     1320,
		LoseFreq:    110,
	}
}

func TestCue_String(t *testing.T) {
	assert.Equal(t, "Hit", CueHit.String())
	assert.Equal(t, "Timeout", CueTimeout.String())
	assert.Equal(t, "Win", CueWin.String())
	assert.Equal(t, "Lose", CueLose.String())
	assert.Equal(t, "Unknown", Cue(42).String())
}

func TestFrequencies(t *testing.T) {
	freqs := Frequencies(testAudioConfig())

	assert.Len(t, freqs, 4)
	assert.Equal(t, 880.0, freqs[CueHit])
	assert.Equal(t, 110.0, freqs[CueLose])
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, Duration(testAudioConfig()))
}

func TestSinePCM(t *testing.T) {
	pcm := SinePCM(44100, 440, 100*time.Millisecond, 0.5)

	// 4410 stereo frames of two 16-bit samples
	require.Len(t, pcm, 4410*4)

	// Faded in from silence
	assert.Equal(t, byte(0), pcm[0])
	assert.Equal(t, byte(0), pcm[1])

	// Left and right channels carry the same sample
	for i := 0; i < 4410; i += 97 {
		assert.Equal(t, pcm[4*i], pcm[4*i+2])
		assert.Equal(t, pcm[4*i+1], pcm[4*i+3])
	}

	// Volume caps the amplitude
	peak := 0
	for i := 0; i < 4410; i++ {
		s := int(int16(uint16(pcm[4*i]) | uint16(pcm[4*i+1])<<8))
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	assert.LessOrEqual(t, peak, 32767/2+1)
	assert.Greater(t, peak, 32767/4)
}

func TestNop_Play(t *testing.T) {
	var p Player = Nop{}
	assert.NotPanics(t, func() { p.Play(CueWin) })
}

func TestBeepPlayer_Streamer(t *testing.T) {
	// Exercise stream construction without opening an audio device
	p := &BeepPlayer{
		rate:   beep.SampleRate(44100),
		freqs:  Frequencies(testAudioConfig()),
		dur:    50 * time.Millisecond,
		volume: 0.5,
	}

	s, err := p.streamer(CueHit)
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, p.rate.N(50*time.Millisecond), total)

	_, err = p.streamer(Cue(42))
	assert.Error(t, err)
}
