package system

import (
	"github.com/younwookim/clickball/internal/domain/entity"
)

// PhysicsSystem moves the ball and bounces it off the playfield walls
type PhysicsSystem struct {
	bounds entity.Rect
}

// NewPhysicsSystem creates a new physics system for the given playfield
func NewPhysicsSystem(bounds entity.Rect) *PhysicsSystem {
	return &PhysicsSystem{bounds: bounds}
}

// Bounds returns the playfield rectangle
func (s *PhysicsSystem) Bounds() entity.Rect {
	return s.bounds
}

// Update advances the ball one tick and reflects it off the walls.
// Movement is a fixed displacement per call, so speed follows the tick rate.
func (s *PhysicsSystem) Update(ball *entity.Ball) (flippedX, flippedY bool) {
	ball.Step()
	return ball.Reflect(s.bounds)
}
