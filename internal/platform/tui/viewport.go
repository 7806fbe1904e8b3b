package tui

import (
	"math"

	"github.com/vovakirdan/conga/internal/core"
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

// Viewport maps world coordinates onto terminal cells. The whole world
// rectangle is stretched over the field, which starts below the HUD.
type Viewport struct {
	cols, rows     int // field size in cells
	worldW, worldH float64
}

// NewViewport fits a worldW x worldH world into a cols x rows field.
// Degenerate sizes are raised to a single cell.
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{
		cols:   core.Max(cols, 1),
		rows:   core.Max(rows, 1),
		worldW: worldW,
		worldH: worldH,
	}
}

// Cols returns the field width in cells.
func (v Viewport) Cols() int { return v.cols }

// Rows returns the field height in cells.
func (v Viewport) Rows() int { return v.rows }

func (v Viewport) scaleX() float64 { return v.worldW / float64(v.cols) }
func (v Viewport) scaleY() float64 { return v.worldH / float64(v.rows) }

// CellToWorld returns the world point at the center of screen cell (x, y).
// Cells outside the field map outside the world; the session clamps them.
func (v Viewport) CellToWorld(x, y int) core.Vec {
	return core.V(
		(float64(x)+0.5)*v.scaleX(),
		(float64(y-hudRows)+0.5)*v.scaleY(),
	)
}

// WorldToCell returns the screen cell containing world point p.
func (v Viewport) WorldToCell(p core.Vec) (x, y int) {
	x = int(math.Floor(p.X / v.scaleX()))
	y = int(math.Floor(p.Y/v.scaleY())) + hudRows
	return x, y
}

// WorldRect returns the cells covered by r, at least one cell in each direction.
func (v Viewport) WorldRect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.MinX() / v.scaleX()))
	y0 := int(math.Floor(r.MinY() / v.scaleY()))
	x1 := int(math.Ceil(r.MaxX() / v.scaleX()))
	y1 := int(math.Ceil(r.MaxY() / v.scaleY()))
	return core.NewRect(x0, y0+hudRows, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// CellStep returns the world distance covered by one cell in each direction.
func (v Viewport) CellStep() core.Vec {
	return core.V(v.scaleX(), v.scaleY())
}
