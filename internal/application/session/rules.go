package session

import (
	"time"

	"github.com/younwookim/clickball/internal/domain/entity"
	"github.com/younwookim/clickball/internal/infrastructure/config"
)

// Rules decide how rounds end and when the game is over
type Rules struct {
	Mode         string
	RoundSeconds int
	// TargetScore ends the game when either side reaches it.
	// Zero means any point ends the game (single round).
	TargetScore  int
	Restart      bool          // Begin a new round automatically after game over
	RestartDelay time.Duration // How long the result stays up first
	OutlinedBall bool
	Banner       string
}

// SingleRound reports whether the first point decides the game
func (r Rules) SingleRound() bool {
	return r.TargetScore <= 0
}

// Classic is one 20 second round; the game restarts after each result and
// scores accumulate across rounds.
func Classic() Rules {
	return Rules{
		Mode:         "classic",
		RoundSeconds: 20,
		Restart:      true,
		Banner:       "Touch the ball & win the game!!",
	}
}

// Match is 10 second rounds, first side to 5 wins
func Match() Rules {
	return Rules{
		Mode:         "match",
		RoundSeconds: 10,
		TargetScore:  5,
		OutlinedBall: true,
		Banner:       "First to 5 wins! Touch the ball!",
	}
}

// RulesFromConfig converts a mode entry of play.json
func RulesFromConfig(name string, m config.ModeConfig) Rules {
	return Rules{
		Mode:         name,
		RoundSeconds: m.RoundSeconds,
		TargetScore:  m.TargetScore,
		Restart:      m.Restart,
		RestartDelay: time.Duration(m.RestartDelay * float64(time.Second)),
		OutlinedBall: m.OutlinedBall,
		Banner:       m.Banner,
	}
}

// Setup is the playfield and the ball's starting state
type Setup struct {
	Start  entity.Vec2
	Vel    entity.Vec2
	Radius float64
	Bounds entity.Rect
}

// DefaultSetup matches the shipped play.json
func DefaultSetup() Setup {
	return Setup{
		Start:  entity.Vec2{X: 0, Y: 0},
		Vel:    entity.Vec2{X: 0.008, Y: 0.01},
		Radius: 0.1,
		Bounds: entity.Rect{Left: -0.9, Right: 0.9, Top: 0.9, Bottom: -0.9},
	}
}

// SetupFromConfig reads the ball and bounds sections of play.json
func SetupFromConfig(cfg *config.PlayConfig) Setup {
	return Setup{
		Start:  entity.Vec2{X: cfg.Ball.StartX, Y: cfg.Ball.StartY},
		Vel:    entity.Vec2{X: cfg.Ball.SpeedX, Y: cfg.Ball.SpeedY},
		Radius: cfg.Ball.Radius,
		Bounds: entity.Rect{
			Left:   cfg.Bounds.Left,
			Right:  cfg.Bounds.Right,
			Top:    cfg.Bounds.Top,
			Bottom: cfg.Bounds.Bottom,
		},
	}
}
