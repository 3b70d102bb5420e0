// Package session implements the click-the-ball game state machine.
//
// A Session is driven by a host loop: Tick once per frame, Click for
// each mouse press already converted to world coordinates, and
// Snapshot for drawing. It is not safe for concurrent use; the host
// must call it from a single goroutine.
package session

import (
	"fmt"
	"time"

	"github.com/younwookim/clickball/internal/application/state"
	"github.com/younwookim/clickball/internal/application/system"
	"github.com/younwookim/clickball/internal/domain/entity"
	"github.com/younwookim/clickball/internal/infrastructure/config"
)

// Session owns all mutable game state
type Session struct {
	rules   Rules
	setup   Setup
	ball    *entity.Ball
	physics *system.PhysicsSystem
	timer   *system.RoundTimer

	playerScore   int
	computerScore int
	phase         state.Phase
	playerWon     bool

	// Classic restart handshake
	resultShown bool
	gameOverAt  time.Time

	// Callbacks
	OnPlayerScore   func(score int)
	OnComputerScore func(score int)
	OnGameOver      func(playerWon bool)
	OnRestart       func()
}

// New creates a session whose first round starts at now
func New(setup Setup, rules Rules, now time.Time) *Session {
	return &Session{
		rules:   rules,
		setup:   setup,
		ball:    entity.NewBall(setup.Start, setup.Vel, setup.Radius),
		physics: system.NewPhysicsSystem(setup.Bounds),
		timer:   system.NewRoundTimer(rules.RoundSeconds, now),
		phase:   state.PhasePlaying,
	}
}

// NewFromConfig creates a session for the named mode of play.json
func NewFromConfig(cfg *config.PlayConfig, mode string, now time.Time) (*Session, error) {
	m, err := cfg.Mode(mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return New(SetupFromConfig(cfg), RulesFromConfig(mode, m), now), nil
}

// Tick advances the game by one frame.
// While playing it moves the ball, reflects it off the walls and
// recomputes the countdown from now. After game over it only checks
// whether an automatic restart is due.
func (s *Session) Tick(now time.Time) {
	switch s.phase {
	case state.PhasePlaying:
		s.physics.Update(s.ball)
		s.timer.Update(now)
		if s.timer.Expired() {
			s.computerScored(now)
		}
	case state.PhaseGameOver:
		if s.gameOverAt.IsZero() {
			s.gameOverAt = now
		}
		if s.restartDue(now) {
			s.Restart(now)
		}
	}
}

// Click hit-tests a world-space point against the ball.
// Returns true if the click scored. Misses and clicks after game over
// change nothing.
func (s *Session) Click(p entity.Vec2) bool {
	if s.phase != state.PhasePlaying {
		return false
	}
	if !s.ball.Contains(p) {
		return false
	}

	s.playerScore++
	if s.OnPlayerScore != nil {
		s.OnPlayerScore(s.playerScore)
	}
	// The round timer keeps running after a hit
	if s.rules.SingleRound() || s.playerScore >= s.rules.TargetScore {
		s.endGame(true)
	}
	return true
}

// MarkResultShown records that the game-over result has been drawn.
// A restarting mode waits for this before starting the next round.
func (s *Session) MarkResultShown() {
	if s.phase == state.PhaseGameOver {
		s.resultShown = true
	}
}

// Restart puts the ball, timer and phase back to their initial values.
// Scores are kept as a running tally.
func (s *Session) Restart(now time.Time) {
	s.ball = entity.NewBall(s.setup.Start, s.setup.Vel, s.setup.Radius)
	s.timer.Reset(now)
	s.phase = state.PhasePlaying
	s.playerWon = false
	s.resultShown = false
	s.gameOverAt = time.Time{}

	if s.OnRestart != nil {
		s.OnRestart()
	}
}

func (s *Session) computerScored(now time.Time) {
	s.computerScore++
	if s.OnComputerScore != nil {
		s.OnComputerScore(s.computerScore)
	}

	if s.rules.SingleRound() || s.computerScore >= s.rules.TargetScore {
		s.endGame(false)
		return
	}
	// New round, same trajectory
	s.timer.Reset(now)
}

func (s *Session) endGame(playerWon bool) {
	s.phase = state.PhaseGameOver
	s.playerWon = playerWon
	if s.OnGameOver != nil {
		s.OnGameOver(playerWon)
	}
}

func (s *Session) restartDue(now time.Time) bool {
	if !s.rules.Restart || !s.resultShown {
		return false
	}
	return now.Sub(s.gameOverAt) >= s.rules.RestartDelay
}

// Phase returns the current phase
func (s *Session) Phase() state.Phase {
	return s.phase
}

// PlayerWon is meaningful only once the phase is GameOver
func (s *Session) PlayerWon() bool {
	return s.playerWon
}

// Scores returns the player and computer scores
func (s *Session) Scores() (player, computer int) {
	return s.playerScore, s.computerScore
}

// TimeLeft returns the whole seconds left in the round
func (s *Session) TimeLeft() int {
	return s.timer.Remaining()
}

// Ball returns a copy of the ball
func (s *Session) Ball() entity.Ball {
	return *s.ball
}

// Rules returns the rule set in effect
func (s *Session) Rules() Rules {
	return s.rules
}

// Snapshot returns the render-facing state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:          s.rules.Mode,
		Banner:        s.rules.Banner,
		Ball:          s.ball.Pos,
		Radius:        s.ball.Radius,
		Bounds:        s.physics.Bounds(),
		OutlinedBall:  s.rules.OutlinedBall,
		Phase:         s.phase,
		PlayerWon:     s.playerWon,
		PlayerScore:   s.playerScore,
		ComputerScore: s.computerScore,
		TargetScore:   s.rules.TargetScore,
		TimeLeft:      s.timer.Remaining(),
	}
}
