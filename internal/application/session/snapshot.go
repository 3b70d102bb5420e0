package session

import (
	"fmt"

	"github.com/younwookim/clickball/internal/application/state"
	"github.com/younwookim/clickball/internal/domain/entity"
)

// Snapshot is a copy of everything a frontend needs to draw one frame
type Snapshot struct {
	Mode          string
	Banner        string
	Ball          entity.Vec2
	Radius        float64
	Bounds        entity.Rect
	OutlinedBall  bool
	Phase         state.Phase
	PlayerWon     bool
	PlayerScore   int
	ComputerScore int
	TargetScore   int
	TimeLeft      int
}

// Over reports whether the game has been decided
func (s Snapshot) Over() bool {
	return s.Phase == state.PhaseGameOver
}

// TimerText is the countdown line
func (s Snapshot) TimerText() string {
	return fmt.Sprintf("Time: %d", s.TimeLeft)
}

// ScoreText is the score line
func (s Snapshot) ScoreText() string {
	text := fmt.Sprintf("Player: %d   Computer: %d", s.PlayerScore, s.ComputerScore)
	if s.TargetScore > 0 {
		text += fmt.Sprintf("   (to %d)", s.TargetScore)
	}
	return text
}

// ResultText announces the winner; empty while playing
func (s Snapshot) ResultText() string {
	if !s.Over() {
		return ""
	}
	if s.PlayerWon {
		return "Player Wins!"
	}
	return "Computer Wins!"
}
