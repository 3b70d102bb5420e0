package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/clickball/internal/application/session"
	"github.com/younwookim/clickball/internal/domain/entity"
)

// Colors for rendering
var (
	ColorBG       = color.RGBA{0, 0, 0, 255}
	ColorBoundary = color.RGBA{0, 255, 0, 255}
	ColorBall     = color.RGBA{255, 0, 0, 255}
	ColorOutline  = color.RGBA{255, 160, 160, 255}
	ColorBallCore = color.RGBA{170, 0, 0, 255}
	ColorText     = color.RGBA{255, 255, 255, 255}
	ColorDim      = color.RGBA{140, 140, 140, 255}
)

// Text anchors in world coordinates (baseline-left)
var (
	bannerPos   = entity.Vec2{X: -0.4, Y: 0.95}
	timerPos    = entity.Vec2{X: -0.9, Y: 0.85}
	scorePos    = entity.Vec2{X: -0.9, Y: -0.95}
	playerWon   = entity.Vec2{X: -0.1, Y: 0}
	computerWon = entity.Vec2{X: -0.15, Y: 0}
)

// outlineWidth is how far the outline ring extends past the ball, in world units
const outlineWidth = 0.015

// Renderer draws a session snapshot onto an ebiten image
type Renderer struct {
	face *text.GoXFace
}

// NewRenderer creates a renderer using the built-in bitmap font
func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw renders one frame. While playing it shows the boundary, ball and
// HUD; once the game is over it shows the boundary and the result.
func (r *Renderer) Draw(screen *ebiten.Image, vp Viewport, snap session.Snapshot) {
	screen.Fill(ColorBG)

	r.drawBounds(screen, vp, snap.Bounds)

	if snap.Over() {
		pos := computerWon
		if snap.PlayerWon {
			pos = playerWon
		}
		r.DrawText(screen, vp, snap.ResultText(), pos, ColorText)
		r.DrawText(screen, vp, snap.ScoreText(), scorePos, ColorDim)
		return
	}

	r.drawBall(screen, vp, snap)
	r.DrawText(screen, vp, snap.Banner, bannerPos, ColorText)
	r.DrawText(screen, vp, snap.TimerText(), timerPos, ColorText)
	r.DrawText(screen, vp, snap.ScoreText(), scorePos, ColorText)
}

func (r *Renderer) drawBounds(screen *ebiten.Image, vp Viewport, b entity.Rect) {
	x0, y0 := vp.WorldToScreen(entity.Vec2{X: b.Left, Y: b.Top})
	x1, y1 := vp.WorldToScreen(entity.Vec2{X: b.Right, Y: b.Bottom})
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, ColorBoundary, false)
}

func (r *Renderer) drawBall(screen *ebiten.Image, vp Viewport, snap session.Snapshot) {
	cx, cy := vp.WorldToScreen(snap.Ball)
	scale := vp.Scale()

	if snap.OutlinedBall {
		// Light ring behind a darker core
		outer := (snap.Radius + outlineWidth) * scale
		vector.FillCircle(screen, float32(cx), float32(cy), float32(outer), ColorOutline, true)
		vector.FillCircle(screen, float32(cx), float32(cy), float32(snap.Radius*scale), ColorBallCore, true)
		return
	}
	vector.FillCircle(screen, float32(cx), float32(cy), float32(snap.Radius*scale), ColorBall, true)
}

// DrawText draws s with its baseline starting at the world point pos
func (r *Renderer) DrawText(screen *ebiten.Image, vp Viewport, s string, pos entity.Vec2, clr color.Color) {
	if s == "" {
		return
	}
	sx, sy := vp.WorldToScreen(pos)

	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy-r.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}

// TextWidth returns the advance of s in pixels
func (r *Renderer) TextWidth(s string) float64 {
	w, _ := text.Measure(s, r.face, 0)
	return w
}
