// Package playing provides the main gameplay scene.
package playing

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/clickball/internal/application/scene"
	"github.com/younwookim/clickball/internal/application/session"
		"github.com/younwookim/clickball/internal/domain/entity"
	"github.com/younwookim/clickball/internal/infrastructure/config"
	"github.com/younwookim/clickball/internal/infrastructure/input"
	"github.com/younwookim/clickball/internal/infrastructure/render"
	"github.com/younwookim/clickball/internal/infrastructure/sound"
)

// Options configures a Playing scene. Zero values pick the defaults:
// no recording, silence, wall clock, ebiten input, no way back.
type Options struct {
	RecordPath string
	Sound      sound.Player
	Clock      func() time.Time
	Input      func() input.State
	// Back builds the scene Escape returns to
	Back func() scene.Scene
}

// Playing is the main gameplay scene
type Playing struct {
	mode     string
	session  *session.Session
	renderer *render.Renderer
	viewport render.Viewport
	sound    sound.Player
	clock    func() time.Time
	input    func() input.State
	back     func() scene.Scene
	start    time.Time

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for the named mode of play.json.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.PlayConfig, mode string, opts Options) (*Playing, error) {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	read := opts.Input
	if read == nil {
		read = input.NewSystem().GetInput
	}
	player := opts.Sound
	if player == nil {
		player = sound.Nop{}
	}

	start := clock()
	s, err := session.NewFromConfig(cfg, mode, start)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		mode:           mode,
		session:        s,
		renderer:       render.NewRenderer(),
		viewport:       render.NewViewport(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		sound:          player,
		clock:          clock,
		input:          read,
		back:           opts.Back,
		start:          start,
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(mode, start)
		log.Printf("Recording enabled: %s (mode: %s)", opts.RecordPath, mode)
	}

	// Sound cues follow the session's scoring events
	s.OnPlayerScore = func(int) { p.sound.Play(sound.CueHit) }
	s.OnComputerScore = func(int) { p.sound.Play(sound.CueTimeout) }
	s.OnGameOver = func(won bool) {
		if won {
			p.sound.Play(sound.CueWin)
		} else {
			p.sound.Play(sound.CueLose)
		}
	}
	s.OnRestart = func() {
		pl, c := s.Scores()
		log.Printf("New round (player %d, computer %d)", pl, c)
	}

	return p, nil
}

// Update handles the click, if any, then advances the session one tick
// (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	in := p.input()

	if in.Back && p.back != nil {
		return p.back(), nil
	}

	now := p.clock()

	var at entity.Vec2
	if in.MouseClick {
		at = p.viewport.ScreenToWorld(float64(in.MouseX), float64(in.MouseY))
		p.session.Click(at)
	}
	p.session.Tick(now)

	if p.recorder != nil {
		p.recorder.RecordFrame(now.Sub(p.start), in.MouseClick, at)
	}

	return nil, nil // nil = stay on this scene
}

// Draw renders the session. Showing a result lets a restarting mode
// begin its next round.
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.session.Snapshot()
	p.renderer.Draw(screen, p.viewport, snap)
	if snap.Over() {
		p.session.MarkResultShown()
	}
}

// Resize keeps the projection in step with the window (implements scene.Resizer)
func (p *Playing) Resize(width, height int) {
	p.viewport.Resize(width, height)
}

// OnEnter is called when entering the scene
func (p *Playing) OnEnter() {
	log.Printf("Playing %s", p.mode)
}

// OnExit saves the recording, if any
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
	pl, c := p.session.Scores()
	log.Printf("Left %s: player %d, computer %d", p.mode, pl, c)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Session exposes the running session (for tests and tools)
func (p *Playing) Session() *session.Session {
	return p.session
}

