// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/clickball/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current   scene.Scene
	screenW   int
	screenH   int
	resizable bool
}

// New creates a new Game with the given initial scene.
// A resizable game lays out at the window's size; otherwise the
// logical screen stays screenW x screenH and ebiten scales it.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, resizable bool) *Game {
	g := &Game{
		current:   initialScene,
		screenW:   screenW,
		screenH:   screenH,
		resizable: resizable,
	}
	g.enter(initialScene)
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update()
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.enter(next)
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resizable && outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.screenW || outsideHeight != g.screenH) {
		g.screenW = outsideWidth
		g.screenH = outsideHeight
		if r, ok := g.current.(scene.Resizer); ok {
			r.Resize(g.screenW, g.screenH)
		}
	}
	return g.screenW, g.screenH
}

// Close exits the current scene so it can flush state (recordings).
// Call once after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

func (g *Game) enter(s scene.Scene) {
	if r, ok := s.(scene.Resizer); ok {
		r.Resize(g.screenW, g.screenH)
	}
	s.OnEnter()
}
