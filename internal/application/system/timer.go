package system

import "time"

// RoundTimer is a countdown derived from wall-clock time.
// Remaining is recomputed from the round start on every Update, never
// decremented, so missed or late ticks do not accumulate drift.
type RoundTimer struct {
	length    int // seconds
	start     time.Time
	remaining int
}

// NewRoundTimer starts a countdown of seconds at now
func NewRoundTimer(seconds int, now time.Time) *RoundTimer {
	return &RoundTimer{
		length:    seconds,
		start:     now,
		remaining: seconds,
	}
}

// Reset starts a fresh round at now
func (t *RoundTimer) Reset(now time.Time) {
	t.start = now
	t.remaining = t.length
}

// Update recomputes the remaining whole seconds and returns them.
// The value may go negative if ticks stall past the deadline.
func (t *RoundTimer) Update(now time.Time) int {
	t.remaining = t.length - elapsedSeconds(t.start, now)
	return t.remaining
}

// Remaining returns the value computed by the last Update or Reset
func (t *RoundTimer) Remaining() int {
	return t.remaining
}

// Expired reports whether the last computed value reached zero
func (t *RoundTimer) Expired() bool {
	return t.remaining <= 0
}

// elapsedSeconds returns whole seconds from start to now.
// A clock that steps backwards counts as zero elapsed.
func elapsedSeconds(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
