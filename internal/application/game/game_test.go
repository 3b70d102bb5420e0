package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/clickball/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update() (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

// resizingScene also tracks Resize calls
type resizingScene struct {
	mockScene
	sizes [][2]int
}

func (r *resizingScene) Resize(w, h int) {
	r.sizes = append(r.sizes, [2]int{w, h})
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 500, 500, false)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 500, 500, false)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 500, 500, false)

	img := ebiten.NewImage(500, 500)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout_Fixed(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 500, 500, false)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 500, w)
	assert.Equal(t, 500, h)
}

func TestGame_Layout_ResizableForwardsSize(t *testing.T) {
	s := &resizingScene{}
	g := New(s, 500, 500, true)
	assert.Equal(t, [][2]int{{500, 500}}, s.sizes, "initial size given before OnEnter")

	w, h := g.Layout(800, 400)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)

	// Same size again is not re-sent
	g.Layout(800, 400)
	assert.Equal(t, [][2]int{{500, 500}, {800, 400}}, s.sizes)

	// Minimized windows report zero; keep the last layout
	w, h = g.Layout(0, 0)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &resizingScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, 500, 500, true)
	g.Layout(600, 300)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Equal(t, [][2]int{{600, 300}}, scene2.sizes, "new scene gets the current size")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := New(scene1, 500, 500, false)

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, 500, 500, false)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

func TestGame_Close(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 500, 500, false)

	g.Close()

	assert.Equal(t, 1, scene1.onExitCalled)
}
