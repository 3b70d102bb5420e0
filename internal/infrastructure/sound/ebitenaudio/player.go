// Package ebitenaudio plays sound cues in the window build.
package ebitenaudio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/clickball/internal/infrastructure/config"
	"github.com/younwookim/clickball/internal/infrastructure/sound"
)

// Player plays cues through ebiten's audio context
type Player struct {
	players map[sound.Cue]*audio.Player
}

// NewPlayer synthesizes every cue up front.
// Only one audio context can exist per process; an existing one is reused.
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.SampleRate)
	}
	if ctx.SampleRate() != cfg.SampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, config wants %d Hz", ctx.SampleRate(), cfg.SampleRate)
	}

	p := &Player{players: make(map[sound.Cue]*audio.Player)}
	for cue, freq := range sound.Frequencies(cfg) {
		pcm := sound.SinePCM(cfg.SampleRate, freq, sound.Duration(cfg), cfg.Volume)
		p.players[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	return p, nil
}

// Play restarts the cue from the beginning
func (p *Player) Play(c sound.Cue) {
	pl, ok := p.players[c]
	if !ok {
		return
	}
	_ = pl.Rewind()
	pl.Play()
}
