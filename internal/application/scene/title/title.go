// Package title provides the mode select scene.
package title

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/clickball/internal/application/scene"
		"github.com/younwookim/clickball/internal/domain/entity"
	"github.com/younwookim/clickball/internal/infrastructure/config"
	"github.com/younwookim/clickball/internal/infrastructure/input"
	"github.com/younwookim/clickball/internal/infrastructure/render"
)

// Layout in world units
const (
	headingY  = 0.6
	firstY    = 0.25
	lineStep  = 0.2
	lineHalfH = 0.08
	leftX     = -0.8
	footerY   = -0.8
)

// StartFunc builds the scene that plays mode
type StartFunc func(mode string) (scene.Scene, error)

// Title lists the configured modes. A digit key, a click on a line, or
// Enter on the highlighted line starts that mode.
type Title struct {
	modes    []string
	lines    []string
	selected int

	start    StartFunc
	input    func() input.State
	renderer *render.Renderer
	viewport render.Viewport
}

// New creates the title scene. A nil read uses ebiten input.
func New(cfg *config.PlayConfig, start StartFunc, read func() input.State) *Title {
	if read == nil {
		read = input.NewSystem().GetInput
	}

	modes := cfg.ModeNames()
	lines := make([]string, len(modes))
	for i, name := range modes {
		lines[i] = fmt.Sprintf("%d  %s", i+1, Describe(name, cfg.Modes[name]))
	}

	return &Title{
		modes:    modes,
		lines:    lines,
		start:    start,
		input:    read,
		renderer: render.NewRenderer(),
		viewport: render.NewViewport(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
	}
}

// Describe summarizes a mode in one line
func Describe(name string, m config.ModeConfig) string {
	var s string
	if m.TargetScore == 0 {
		s = fmt.Sprintf("%s: one %ds round", name, m.RoundSeconds)
	} else {
		s = fmt.Sprintf("%s: %ds rounds, first to %d", name, m.RoundSeconds, m.TargetScore)
	}
	if m.Restart {
		s += ", repeats"
	}
	return s
}

// Update implements scene.Scene
func (t *Title) Update() (scene.Scene, error) {
	in := t.input()

	if hover := t.lineAt(in.MouseX, in.MouseY); hover >= 0 {
		t.selected = hover
		if in.MouseClick {
			return t.choose(hover)
		}
	}

	if in.Select >= 1 && in.Select <= len(t.modes) {
		return t.choose(in.Select - 1)
	}
	if in.Confirm && len(t.modes) > 0 {
		return t.choose(t.selected)
	}

	return nil, nil
}

func (t *Title) choose(i int) (scene.Scene, error) {
	next, err := t.start(t.modes[i])
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", t.modes[i], err)
	}
	return next, nil
}

// lineAt returns the index of the mode line under a pixel, or -1.
// A line is hit across the width of its text.
func (t *Title) lineAt(sx, sy int) int {
	p := t.viewport.ScreenToWorld(float64(sx), float64(sy))
	for i, line := range t.lines {
		// Text sits on its baseline, so the hit band is centered a little above it
		center := lineY(i) + lineHalfH/2
		if math.Abs(p.Y-center) > lineHalfH {
			continue
		}
		x0, _ := t.viewport.WorldToScreen(entity.Vec2{X: leftX, Y: lineY(i)})
		if x := float64(sx); x >= x0 && x <= x0+t.renderer.TextWidth(line) {
			return i
		}
	}
	return -1
}

func lineY(i int) float64 {
	return firstY - float64(i)*lineStep
}

// Draw implements scene.Scene
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBG)

	r, vp := t.renderer, t.viewport
	r.DrawText(screen, vp, "Bouncing Ball", entity.Vec2{X: leftX, Y: headingY}, render.ColorBall)
	for i, line := range t.lines {
		clr := render.ColorDim
		if i == t.selected {
			clr = render.ColorText
		}
		r.DrawText(screen, vp, line, entity.Vec2{X: leftX, Y: lineY(i)}, clr)
	}
	r.DrawText(screen, vp, "Esc returns here", entity.Vec2{X: leftX, Y: footerY}, render.ColorDim)
}

// Resize implements scene.Resizer
func (t *Title) Resize(width, height int) {
	t.viewport.Resize(width, height)
}

// OnEnter implements scene.Scene
func (t *Title) OnEnter() {
	log.Printf("Title: %d modes", len(t.modes))
}

// OnExit implements scene.Scene
func (t *Title) OnExit() {}

// Selected returns the highlighted mode
func (t *Title) Selected() string {
	if len(t.modes) == 0 {
		return ""
	}
	return t.modes[t.selected]
}
