package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBounds() Rect {
	// Binary-exact values so tangency checks are not float noise
	return Rect{Left: -1, Right: 1, Top: 1, Bottom: -1}
}

func TestBall_Step(t *testing.T) {
	b := NewBall(Vec2{}, Vec2{X: 0.008, Y: 0.01}, 0.1)

	b.Step()

	assert.InDelta(t, 0.008, b.Pos.X, 1e-12)
	assert.InDelta(t, 0.01, b.Pos.Y, 1e-12)
}

func TestBall_Reflect(t *testing.T) {
	tests := []struct {
		name    string
		pos     Vec2
		vel     Vec2
		wantVel Vec2
		wantX   bool
		wantY   bool
	}{
		{"inside no flip", Vec2{}, Vec2{X: 0.5, Y: 0.5}, Vec2{X: 0.5, Y: 0.5}, false, false},
		{"past right wall", Vec2{X: 0.8}, Vec2{X: 0.5, Y: 0.25}, Vec2{X: -0.5, Y: 0.25}, true, false},
		{"past left wall", Vec2{X: -0.8}, Vec2{X: -0.5, Y: 0.25}, Vec2{X: 0.5, Y: 0.25}, true, false},
		{"past top wall", Vec2{Y: 0.8}, Vec2{X: 0.25, Y: 0.5}, Vec2{X: 0.25, Y: -0.5}, false, true},
		{"past bottom wall", Vec2{Y: -0.8}, Vec2{X: 0.25, Y: -0.5}, Vec2{X: 0.25, Y: 0.5}, false, true},
		{"corner flips both", Vec2{X: 0.8, Y: 0.8}, Vec2{X: 0.5, Y: 0.5}, Vec2{X: -0.5, Y: -0.5}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(tt.pos, tt.vel, 0.25)

			fx, fy := b.Reflect(testBounds())

			assert.Equal(t, tt.wantX, fx)
			assert.Equal(t, tt.wantY, fy)
			assert.Equal(t, tt.wantVel, b.Vel)
		})
	}
}

func TestBall_Reflect_TangentDoesNotFlip(t *testing.T) {
	// x + r == right exactly; the wall test is strict
	b := NewBall(Vec2{X: 0.75, Y: -0.75}, Vec2{X: 0.5, Y: -0.5}, 0.25)

	fx, fy := b.Reflect(testBounds())

	assert.False(t, fx)
	assert.False(t, fy)
	assert.Equal(t, Vec2{X: 0.5, Y: -0.5}, b.Vel)
}

func TestBall_Contains(t *testing.T) {
	b := NewBall(Vec2{X: 0.5, Y: 0.5}, Vec2{}, 0.25)

	assert.True(t, b.Contains(Vec2{X: 0.5, Y: 0.5}), "center")
	assert.True(t, b.Contains(Vec2{X: 0.75, Y: 0.5}), "on the rim")
	assert.True(t, b.Contains(Vec2{X: 0.6, Y: 0.6}), "inside")
	assert.False(t, b.Contains(Vec2{X: 0.76, Y: 0.5}), "just outside")
	assert.False(t, b.Contains(Vec2{X: 0.7, Y: 0.7}), "diagonal outside")
}
