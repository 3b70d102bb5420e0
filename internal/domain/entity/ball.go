package entity

// Ball is the bouncing target.
// Velocity is a fixed displacement per tick, not per second.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// NewBall creates a ball at pos moving by vel every tick
func NewBall(pos, vel Vec2, radius float64) *Ball {
	return &Ball{Pos: pos, Vel: vel, Radius: radius}
}

// Step advances the ball by one tick's displacement
func (b *Ball) Step() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Reflect negates each velocity component whose axis is past a wall of
// bounds. Both axes are checked so a corner flips both at once.
// Comparisons are strict: a ball exactly touching a wall keeps moving.
// Returns which axes flipped.
func (b *Ball) Reflect(bounds Rect) (flippedX, flippedY bool) {
	if b.Pos.X+b.Radius > bounds.Right || b.Pos.X-b.Radius < bounds.Left {
		b.Vel.X = -b.Vel.X
		flippedX = true
	}
	if b.Pos.Y+b.Radius > bounds.Top || b.Pos.Y-b.Radius < bounds.Bottom {
		b.Vel.Y = -b.Vel.Y
		flippedY = true
	}
	return flippedX, flippedY
}

// Contains reports whether p is within the ball (distance <= radius)
func (b *Ball) Contains(p Vec2) bool {
	return p.Dist(b.Pos) <= b.Radius
}
