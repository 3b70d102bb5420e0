// Package render draws game sessions with ebiten and maps between
// window pixels and world coordinates.
package render

import "github.com/younwookim/clickball/internal/domain/entity"

// Viewport is an orthographic view of world space centered on the origin.
// The shorter window side always spans two world units and the longer
// side is widened by the aspect ratio, so circles stay round.
type Viewport struct {
	width, height int
}

// NewViewport creates a viewport for a window of w x h pixels
func NewViewport(w, h int) Viewport {
	v := Viewport{width: 1, height: 1}
	v.Resize(w, h)
	return v
}

// Resize updates the window size. Degenerate sizes (minimized windows)
// are ignored and the previous projection is kept.
func (v *Viewport) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.width = w
	v.height = h
}

// Size returns the window size in pixels
func (v Viewport) Size() (w, h int) {
	return v.width, v.height
}

// HalfExtents returns the visible world half-width and half-height
func (v Viewport) HalfExtents() (hx, hy float64) {
	aspect := float64(v.width) / float64(v.height)
	if v.width >= v.height {
		return aspect, 1
	}
	return 1, 1 / aspect
}

// Scale returns pixels per world unit
func (v Viewport) Scale() float64 {
	hx, _ := v.HalfExtents()
	return float64(v.width) / (2 * hx)
}

// WorldToScreen converts a world point to window pixels (y down)
func (v Viewport) WorldToScreen(p entity.Vec2) (sx, sy float64) {
	hx, hy := v.HalfExtents()
	sx = (p.X + hx) / (2 * hx) * float64(v.width)
	sy = (hy - p.Y) / (2 * hy) * float64(v.height)
	return sx, sy
}

// ScreenToWorld converts window pixels to a world point.
// Pixels are normalized to [-1,1] on each axis, y is flipped, and the
// long axis is scaled by the aspect ratio to match the projection.
func (v Viewport) ScreenToWorld(sx, sy float64) entity.Vec2 {
	hx, hy := v.HalfExtents()
	nx := sx/float64(v.width)*2 - 1
	ny := 1 - sy/float64(v.height)*2
	return entity.Vec2{X: nx * hx, Y: ny * hy}
}
