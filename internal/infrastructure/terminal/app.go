package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/clickball/internal/application/session"
	"github.com/younwookim/clickball/internal/infrastructure/config"
	"github.com/younwookim/clickball/internal/infrastructure/sound"
)

// App runs a session in a terminal. The session is only touched by the
// goroutine that calls Run.
type App struct {
	screen tcell.Screen
	view   *View
	play   *config.PlayConfig
	tick   time.Duration
	sound  sound.Player
	clock  func() time.Time

	modes   []string
	mode    string
	session *session.Session
	buttons tcell.ButtonMask
}

// NewApp creates an app playing mode on an initialized screen
func NewApp(screen tcell.Screen, cfg *config.GameConfig, mode string, player sound.Player) (*App, error) {
	view, err := NewView(screen, cfg.Terminal)
	if err != nil {
		return nil, fmt.Errorf("terminal.toml: %w", err)
	}
	if player == nil {
		player = sound.Nop{}
	}

	a := &App{
		screen: screen,
		view:   view,
		play:   cfg.Play,
		tick:   time.Duration(cfg.Terminal.TickMs) * time.Millisecond,
		sound:  player,
		clock:  time.Now,
		modes:  cfg.Play.ModeNames(),
	}
	if err := a.Start(mode); err != nil {
		return nil, err
	}
	return a, nil
}

// Start replaces the session with a fresh one in mode
func (a *App) Start(mode string) error {
	s, err := session.NewFromConfig(a.play, mode, a.clock())
	if err != nil {
		return err
	}

	s.OnPlayerScore = func(int) { a.sound.Play(sound.CueHit) }
	s.OnComputerScore = func(int) { a.sound.Play(sound.CueTimeout) }
	s.OnGameOver = func(won bool) {
		if won {
			a.sound.Play(sound.CueWin)
		} else {
			a.sound.Play(sound.CueLose)
		}
	}

	a.mode = mode
	a.session = s
	return nil
}

// Session returns the running session
func (a *App) Session() *session.Session {
	return a.session
}

// Run loops until ctx is done, the user quits, or the screen stops
// delivering events
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	a.Step(a.clock())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := a.HandleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case now := <-ticker.C:
			a.Step(now)
		}
	}
}

// Step ticks the session and redraws it
func (a *App) Step(now time.Time) {
	a.session.Tick(now)
	snap := a.session.Snapshot()
	a.view.Draw(snap)
	if snap.Over() {
		a.session.MarkResultShown()
	}
}

// HandleEvent applies one terminal event. It reports true when the
// user asked to quit.
func (a *App) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.view.Resize()
		a.screen.Sync()
	}
	return false, nil
}

func (a *App) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
	default:
		return false, nil
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return true, nil
	case r == 'r':
		log.Printf("Restarting %s", a.mode)
		return false, a.Start(a.mode)
	case r >= '1' && r <= '9':
		i := int(r - '1')
		if i < len(a.modes) {
			log.Printf("Switching to %s", a.modes[i])
			return false, a.Start(a.modes[i])
		}
	}
	return false, nil
}

// handleMouse clicks on the left button's press, not while it is held
func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = buttons
	if !pressed {
		return
	}

	col, row := ev.Position()
	a.session.Click(a.view.Grid().CellToWorld(col, row))
}
