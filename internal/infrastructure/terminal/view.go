package terminal

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/clickball/internal/application/session"
	"github.com/younwookim/clickball/internal/domain/entity"
	"github.com/younwookim/clickball/internal/infrastructure/config"
)

// Text anchors in world units, shared with the window build
var (
	bannerPos = entity.Vec2{X: -0.4, Y: 0.95}
	timerPos  = entity.Vec2{X: -0.9, Y: 0.85}
	scorePos  = entity.Vec2{X: -0.9, Y: -0.95}
	winPos    = entity.Vec2{X: -0.1, Y: 0}
	losePos   = entity.Vec2{X: -0.15, Y: 0}
)

// outlineScale sizes the outline ring relative to the ball
const outlineScale = 1.3

type glyphs struct {
	ball, outline, horizontal, vertical, corner rune
}

type styles struct {
	background, wall, ball, outline, text tcell.Style
}

// View draws session snapshots onto a tcell screen
type View struct {
	screen tcell.Screen
	grid   Grid
	glyphs glyphs
	styles styles
}

// NewView creates a view sized to the screen
func NewView(screen tcell.Screen, cfg *config.TerminalConfig) (*View, error) {
	g, err := parseGlyphs(cfg.Glyphs)
	if err != nil {
		return nil, err
	}
	st, err := parseStyles(cfg.Colors)
	if err != nil {
		return nil, err
	}

	cols, rows := screen.Size()
	return &View{
		screen: screen,
		grid:   NewGrid(cols, rows, cfg.CellAspect),
		glyphs: g,
		styles: st,
	}, nil
}

func parseGlyphs(c config.GlyphConfig) (glyphs, error) {
	var g glyphs
	fields := []struct {
		name string
		s    string
		dst  *rune
	}{
		{"ball", c.Ball, &g.ball},
		{"outline", c.Outline, &g.outline},
		{"horizontal", c.Horizontal, &g.horizontal},
		{"vertical", c.Vertical, &g.vertical},
		{"corner", c.Corner, &g.corner},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.s) != 1 {
			return glyphs{}, fmt.Errorf("glyph %s must be one character, got %q", f.name, f.s)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.s)
	}
	return g, nil
}

func parseStyles(c config.TerminalColors) (styles, error) {
	bg, err := parseColor("background", c.Background)
	if err != nil {
		return styles{}, err
	}
	base := tcell.StyleDefault.Background(bg)

	st := styles{background: base}
	fgs := []struct {
		name string
		s    string
		dst  *tcell.Style
	}{
		{"wall", c.Wall, &st.wall},
		{"ball", c.Ball, &st.ball},
		{"outline", c.Outline, &st.outline},
		{"text", c.Text, &st.text},
	}
	for _, f := range fgs {
		fg, err := parseColor(f.name, f.s)
		if err != nil {
			return styles{}, err
		}
		*f.dst = base.Foreground(fg)
	}
	return st, nil
}

func parseColor(name, s string) (tcell.Color, error) {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("color %s: unknown value %q", name, s)
	}
	return c, nil
}

// Grid returns the current cell mapping
func (v *View) Grid() Grid {
	return v.grid
}

// Resize re-reads the screen size
func (v *View) Resize() {
	v.grid.Resize(v.screen.Size())
}

// Draw renders snap and shows the screen
func (v *View) Draw(snap session.Snapshot) {
	v.screen.SetStyle(v.styles.background)
	v.screen.Clear()

	v.drawBounds(snap.Bounds)

	if snap.Over() {
		pos := losePos
		if snap.PlayerWon {
			pos = winPos
		}
		v.drawText(snap.ResultText(), pos)
		v.drawText(snap.ScoreText(), scorePos)
	} else {
		v.drawBall(snap)
		v.drawText(snap.Banner, bannerPos)
		v.drawText(snap.TimerText(), timerPos)
		v.drawText(snap.ScoreText(), scorePos)
	}

	v.screen.Show()
}

func (v *View) drawBounds(b entity.Rect) {
	c0, r0 := v.grid.WorldToCell(entity.Vec2{X: b.Left, Y: b.Top})
	c1, r1 := v.grid.WorldToCell(entity.Vec2{X: b.Right, Y: b.Bottom})

	for c := c0 + 1; c < c1; c++ {
		v.set(c, r0, v.glyphs.horizontal, v.styles.wall)
		v.set(c, r1, v.glyphs.horizontal, v.styles.wall)
	}
	for r := r0 + 1; r < r1; r++ {
		v.set(c0, r, v.glyphs.vertical, v.styles.wall)
		v.set(c1, r, v.glyphs.vertical, v.styles.wall)
	}
	v.set(c0, r0, v.glyphs.corner, v.styles.wall)
	v.set(c1, r0, v.glyphs.corner, v.styles.wall)
	v.set(c0, r1, v.glyphs.corner, v.styles.wall)
	v.set(c1, r1, v.glyphs.corner, v.styles.wall)
}

// drawBall fills the cells whose centers lie inside the ball. A ball
// smaller than a cell still gets the cell it sits in.
func (v *View) drawBall(snap session.Snapshot) {
	outer := snap.Radius
	if snap.OutlinedBall {
		outer *= outlineScale
	}

	tl, tr := v.grid.WorldToCell(entity.Vec2{X: snap.Ball.X - outer, Y: snap.Ball.Y + outer})
	bl, br := v.grid.WorldToCell(entity.Vec2{X: snap.Ball.X + outer, Y: snap.Ball.Y - outer})

	drawn := false
	for r := tr; r <= br; r++ {
		for c := tl; c <= bl; c++ {
			d := v.grid.CellToWorld(c, r).Dist(snap.Ball)
			switch {
			case d <= snap.Radius:
				v.set(c, r, v.glyphs.ball, v.styles.ball)
				drawn = true
			case d <= outer:
				v.set(c, r, v.glyphs.outline, v.styles.outline)
			}
		}
	}

	if !drawn {
		c, r := v.grid.WorldToCell(snap.Ball)
		v.set(c, r, v.glyphs.ball, v.styles.ball)
	}
}

// drawText writes s from the cell holding pos, shifted left to stay on screen
func (v *View) drawText(s string, pos entity.Vec2) {
	if s == "" {
		return
	}
	col, row := v.grid.WorldToCell(pos)
	cols, _ := v.grid.Size()
	if n := utf8.RuneCountInString(s); col+n > cols {
		col = cols - n
	}
	if col < 0 {
		col = 0
	}
	for _, r := range s {
		v.set(col, row, r, v.styles.text)
		col++
	}
}

func (v *View) set(col, row int, r rune, st tcell.Style) {
	if v.grid.InBounds(col, row) {
		v.screen.SetContent(col, row, r, nil, st)
	}
}
