// Package terminal draws the game in a tcell screen and turns terminal
// events into session input.
package terminal

import (
	"math"

	"github.com/younwookim/clickball/internal/domain/entity"
)

// Grid maps terminal cells to world coordinates. Cells are aspect times
// taller than wide, so the grid is projected like a window of cols by
// rows*aspect pixels.
type Grid struct {
	cols, rows int
	aspect     float64
}

// NewGrid creates a grid. A non-positive aspect is treated as square cells.
func NewGrid(cols, rows int, aspect float64) Grid {
	if aspect <= 0 {
		aspect = 1
	}
	g := Grid{aspect: aspect}
	g.Resize(cols, rows)
	return g
}

// Resize updates the grid size; non-positive sizes are ignored
func (g *Grid) Resize(cols, rows int) {
	if cols > 0 && rows > 0 {
		g.cols, g.rows = cols, rows
	}
}

// Size returns the grid size in cells
func (g Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// HalfExtents returns the visible world half-width and half-height
func (g Grid) HalfExtents() (hx, hy float64) {
	if g.cols == 0 || g.rows == 0 {
		return 1, 1
	}
	a := float64(g.cols) / (float64(g.rows) * g.aspect)
	if a >= 1 {
		return a, 1
	}
	return 1, 1 / a
}

// CellToWorld returns the world point at the center of a cell
func (g Grid) CellToWorld(col, row int) entity.Vec2 {
	hx, hy := g.HalfExtents()
	nx := (float64(col)+0.5)/float64(g.cols)*2 - 1
	ny := 1 - (float64(row)+0.5)/float64(g.rows)*2
	return entity.Vec2{X: nx * hx, Y: ny * hy}
}

// WorldToCell returns the cell containing a world point.
// The result may lie outside the grid.
func (g Grid) WorldToCell(p entity.Vec2) (col, row int) {
	hx, hy := g.HalfExtents()
	col = int(math.Floor((p.X + hx) / (2 * hx) * float64(g.cols)))
	row = int(math.Floor((hy - p.Y) / (2 * hy) * float64(g.rows)))
	return col, row
}

// InBounds reports whether a cell is on the grid
func (g Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}
