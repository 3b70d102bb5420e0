// Package input reads mouse and keyboard state from ebiten.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// System reads mouse and keyboard state from ebiten
type System struct{}

// NewSystem creates a new input system
func NewSystem() *System {
	return &System{}
}

// State holds the input relevant to one tick.
// Mouse coordinates are in layout pixels, origin top-left.
type State struct {
	MouseX     int
	MouseY     int
	MouseClick bool // Left button went down this tick
	Back       bool // Escape
	Select     int  // 1-9 when a digit key went down, 0 otherwise
	Confirm    bool // Enter or Space
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GetInput reads the current input state
func (s *System) GetInput() State {
	mx, my := ebiten.CursorPosition()
	return State{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Back:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Select:     justPressedDigit(),
		Confirm:    inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

func justPressedDigit() int {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i + 1
		}
	}
	return 0
}
