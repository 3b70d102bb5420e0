package title

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/clickball/internal/application/scene"
	"github.com/younwookim/clickball/internal/infrastructure/config"
	"github.com/younwookim/clickball/internal/infrastructure/input"
)

func createTestConfig() *config.PlayConfig {
	return &config.PlayConfig{
		Display: config.DisplayConfig{ScreenWidth: 500, ScreenHeight: 500},
		Modes: map[string]config.ModeConfig{
			"classic": {RoundSeconds: 20, Restart: true},
			"match":   {RoundSeconds: 10, TargetScore: 5},
		},
	}
}

type namedScene struct {
	mode string
}

func (namedScene) Update() (scene.Scene, error) { return nil, nil }
func (namedScene) Draw(*ebiten.Image)           {}
func (namedScene) OnEnter()                     {}
func (namedScene) OnExit()                      {}

func startNamed(mode string) (scene.Scene, error) {
	return namedScene{mode: mode}, nil
}

func newTestTitle(in *input.State) *Title {
	return New(createTestConfig(), startNamed, func() input.State { return *in })
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		mode config.ModeConfig
		want string
	}{
		{"classic", config.ModeConfig{RoundSeconds: 20, Restart: true}, "classic: one 20s round, repeats"},
		{"match", config.ModeConfig{RoundSeconds: 10, TargetScore: 5}, "match: 10s rounds, first to 5"},
		{"sprint", config.ModeConfig{RoundSeconds: 5}, "sprint: one 5s round"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.name, tt.mode))
		})
	}
}

func TestTitle_LinesFollowSortedModes(t *testing.T) {
	title := newTestTitle(&input.State{})

	assert.Equal(t, []string{"classic", "match"}, title.modes)
	assert.Equal(t, "1  classic: one 20s round, repeats", title.lines[0])
	assert.Equal(t, "2  match: 10s rounds, first to 5", title.lines[1])
}

func TestTitle_IdleStays(t *testing.T) {
	title := newTestTitle(&input.State{})

	next, err := title.Update()

	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, "classic", title.Selected())
}

func TestTitle_DigitSelects(t *testing.T) {
	title := newTestTitle(&input.State{Select: 2})

	next, err := title.Update()

	require.NoError(t, err)
	assert.Equal(t, namedScene{mode: "match"}, next)
}

func TestTitle_DigitOutOfRangeIgnored(t *testing.T) {
	title := newTestTitle(&input.State{Select: 7})

	next, err := title.Update()

	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestTitle_HoverThenConfirm(t *testing.T) {
	in := &input.State{}
	title := newTestTitle(in)

	// Pixel row 228 lies in the second line's band
	in.MouseX, in.MouseY = 100, 228
	_, _ = title.Update()
	assert.Equal(t, "match", title.Selected())

	in.MouseX, in.MouseY = 0, 0
	in.Confirm = true
	next, err := title.Update()

	require.NoError(t, err)
	assert.Equal(t, namedScene{mode: "match"}, next)
}

func TestTitle_ClickOnLine(t *testing.T) {
	title := newTestTitle(&input.State{MouseX: 100, MouseY: 178, MouseClick: true})

	next, err := title.Update()

	require.NoError(t, err)
	assert.Equal(t, namedScene{mode: "classic"}, next)
}

func TestTitle_ClickPastLineEnd(t *testing.T) {
	// Row 178 is on the first line, but column 400 is right of its text
	title := newTestTitle(&input.State{MouseX: 400, MouseY: 178, MouseClick: true})

	next, err := title.Update()

	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, -1, title.lineAt(400, 178))
	assert.Equal(t, -1, title.lineAt(40, 178))
}

func TestTitle_ClickOffLines(t *testing.T) {
	title := newTestTitle(&input.State{MouseX: 100, MouseY: 450, MouseClick: true})

	next, err := title.Update()

	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestTitle_StartError(t *testing.T) {
	boom := errors.New("boom")
	title := New(createTestConfig(), func(string) (scene.Scene, error) { return nil, boom },
		func() input.State { return input.State{Select: 1} })

	_, err := title.Update()

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "start classic")
}

func TestTitle_ResizeMovesLines(t *testing.T) {
	title := newTestTitle(&input.State{})
	title.Resize(500, 1000)

	// Tall window: y spans [-2, 2], so line 0 moves to a new row
	assert.Equal(t, -1, title.lineAt(100, 178))
	assert.Equal(t, 0, title.lineAt(100, 427))
}

func TestTitle_DrawAndLifecycle(t *testing.T) {
	title := newTestTitle(&input.State{})
	screen := ebiten.NewImage(500, 500)

	assert.NotPanics(t, func() {
		title.OnEnter()
		title.Draw(screen)
		title.OnExit()
	})
}
