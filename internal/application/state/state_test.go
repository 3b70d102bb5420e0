package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlaying, "Playing"},
		{PhaseGameOver, "GameOver"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseConstants(t *testing.T) {
	// The zero value is a live game
	assert.Equal(t, Phase(0), PhasePlaying)
	assert.Equal(t, Phase(1), PhaseGameOver)
}
