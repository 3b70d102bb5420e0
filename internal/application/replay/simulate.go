package replay

import (
	"fmt"

	"github.com/younwookim/clickball/internal/application/session"
	"github.com/younwookim/clickball/internal/infrastructure/config"
)

// Result summarizes a headless replay
type Result struct {
	Frames   int
	Final    session.Snapshot
	Restarts int
}

// Simulate feeds recorded frames to a fresh session in recording order:
// the frame's click first, then its tick. A decided game is treated as
// drawn straight away, as the window build does between updates.
func Simulate(setup session.Setup, rules session.Rules, data ReplayData) Result {
	r := NewReplayer(data)
	start := r.StartTime()
	s := session.New(setup, rules, start)

	result := Result{}
	s.OnRestart = func() { result.Restarts++ }

	for {
		input, ok := r.GetInput()
		if !ok {
			break
		}
		if input.Click {
			s.Click(input.Point)
		}
		s.Tick(start.Add(input.Elapsed))
		if s.Snapshot().Over() {
			s.MarkResultShown()
		}
	}

	result.Frames = r.CurrentFrame()
	result.Final = s.Snapshot()
	return result
}

// SimulateWithConfig replays data using the mode named in its header
func SimulateWithConfig(cfg *config.PlayConfig, data ReplayData) (Result, error) {
	m, err := cfg.Mode(data.Mode)
	if err != nil {
		return Result{}, fmt.Errorf("replay mode: %w", err)
	}
	return Simulate(session.SetupFromConfig(cfg), session.RulesFromConfig(data.Mode, m), data), nil
}
