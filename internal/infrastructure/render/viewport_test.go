package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/clickball/internal/domain/entity"
)

func TestViewport_Square(t *testing.T) {
	v := NewViewport(500, 500)

	hx, hy := v.HalfExtents()
	assert.Equal(t, 1.0, hx)
	assert.Equal(t, 1.0, hy)
	assert.Equal(t, 250.0, v.Scale())

	tests := []struct {
		name   string
		sx, sy float64
		want   entity.Vec2
	}{
		{"center", 250, 250, entity.Vec2{X: 0, Y: 0}},
		{"top-left", 0, 0, entity.Vec2{X: -1, Y: 1}},
		{"bottom-right", 500, 500, entity.Vec2{X: 1, Y: -1}},
		{"quarter", 375, 125, entity.Vec2{X: 0.5, Y: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.ScreenToWorld(tt.sx, tt.sy)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestViewport_Wide(t *testing.T) {
	v := NewViewport(1000, 500)

	hx, hy := v.HalfExtents()
	assert.Equal(t, 2.0, hx)
	assert.Equal(t, 1.0, hy)
	assert.Equal(t, 250.0, v.Scale())

	// Right edge of the window is x = aspect
	got := v.ScreenToWorld(1000, 250)
	assert.InDelta(t, 2.0, got.X, 1e-12)
	assert.InDelta(t, 0.0, got.Y, 1e-12)
}

func TestViewport_Tall(t *testing.T) {
	v := NewViewport(400, 800)

	hx, hy := v.HalfExtents()
	assert.Equal(t, 1.0, hx)
	assert.Equal(t, 2.0, hy)
	assert.Equal(t, 200.0, v.Scale())

	got := v.ScreenToWorld(400, 0)
	assert.InDelta(t, 1.0, got.X, 1e-12)
	assert.InDelta(t, 2.0, got.Y, 1e-12)
}

func TestViewport_RoundTrip(t *testing.T) {
	sizes := [][2]int{{500, 500}, {640, 480}, {300, 900}}
	points := []entity.Vec2{{X: 0, Y: 0}, {X: 0.9, Y: -0.9}, {X: -0.35, Y: 0.6}}

	for _, size := range sizes {
		v := NewViewport(size[0], size[1])
		for _, p := range points {
			sx, sy := v.WorldToScreen(p)
			back := v.ScreenToWorld(sx, sy)
			assert.InDelta(t, p.X, back.X, 1e-9, "size %v point %v", size, p)
			assert.InDelta(t, p.Y, back.Y, 1e-9, "size %v point %v", size, p)
		}
	}
}

func TestViewport_CirclesStayRound(t *testing.T) {
	for _, size := range [][2]int{{500, 500}, {800, 400}, {400, 800}} {
		v := NewViewport(size[0], size[1])

		cx, cy := v.WorldToScreen(entity.Vec2{})
		rx, _ := v.WorldToScreen(entity.Vec2{X: 0.1})
		_, ry := v.WorldToScreen(entity.Vec2{Y: 0.1})

		assert.InDelta(t, rx-cx, cy-ry, 1e-9, "size %v", size)
	}
}

func TestViewport_ResizeIgnoresDegenerate(t *testing.T) {
	v := NewViewport(500, 500)

	v.Resize(0, 300)
	w, h := v.Size()
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)

	v.Resize(640, 480)
	w, h = v.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}
