package canvas

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Glyphs used when rasterizing shapes onto cells.
const (
	FillGlyph = '█'
	BallGlyph = '●'
)

// CellSurface rasterizes logical-pixel drawing onto a core.Screen.
// The logical size stays fixed; the screen may be resized at any time and
// the scale follows.
type CellSurface struct {
	screen        *core.Screen
	logicalWidth  float64
	logicalHeight float64
}

// NewCellSurface wraps screen with a logicalWidth x logicalHeight coordinate space.
func NewCellSurface(screen *core.Screen, logicalWidth, logicalHeight float64) *CellSurface {
	return &CellSurface{
		screen:        screen,
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
}

// Screen returns the backing screen buffer.
func (c *CellSurface) Screen() *core.Screen {
	return c.screen
}

// Size implements Surface.
func (c *CellSurface) Size() (w, h float64) {
	return c.logicalWidth, c.logicalHeight
}

// Clear implements Surface.
func (c *CellSurface) Clear() {
	c.screen.Clear()
}

// cellSize returns the logical size of one cell.
func (c *CellSurface) cellSize() (sx, sy float64) {
	w, h := c.screen.Width(), c.screen.Height()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return c.logicalWidth / float64(w), c.logicalHeight / float64(h)
}

// ToCell converts logical coordinates to the cell containing them.
func (c *CellSurface) ToCell(x, y float64) (col, row int) {
	sx, sy := c.cellSize()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return int(math.Floor(x / sx)), int(math.Floor(y / sy))
}

// FillCircle implements Surface. Cells whose centers fall inside the circle
// are filled; a circle smaller than a cell still marks the cell holding its
// center with a round glyph.
func (c *CellSurface) FillCircle(cx, cy, r float64, col core.Color) {
	sx, sy := c.cellSize()
	if sx == 0 || sy == 0 {
		return
	}

	filled := c.fillWhere(cx-r, cy-r, cx+r, cy+r, col, FillGlyph, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r*r
	})
	if filled == 0 {
		x, y := c.ToCell(cx, cy)
		c.screen.SetCell(x, y, core.Cell{Rune: BallGlyph, Color: col})
	}
}

// FillRoundRect implements Surface.
func (c *CellSurface) FillRoundRect(x, y, w, h, r float64, col core.Color) {
	sx, sy := c.cellSize()
	if sx == 0 || sy == 0 || w <= 0 || h <= 0 {
		return
	}
	r = core.ClampF(r, 0, math.Min(w, h)/2)

	filled := c.fillWhere(x, y, x+w, y+h, col, FillGlyph, func(px, py float64) bool {
		return insideRoundRect(px, py, x, y, w, h, r)
	})
	if filled == 0 {
		cx, cy := c.ToCell(x+w/2, y+h/2)
		c.screen.SetCell(cx, cy, core.Cell{Rune: FillGlyph, Color: col})
	}
}

// DrawText implements Surface. Font size only shifts the text so that its
// visual middle, not its baseline, lands on the row.
func (c *CellSurface) DrawText(s string, x, y float64, style TextStyle) {
	n := utf8.RuneCountInString(s)
	col, row := c.ToCell(x, y-style.Size/2)

	switch style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	c.screen.DrawText(col, row, s, style.Color)
}

// fillWhere fills every cell in the logical box whose center satisfies inside.
// Returns the number of cells written.
func (c *CellSurface) fillWhere(x0, y0, x1, y1 float64, col core.Color, glyph rune, inside func(px, py float64) bool) int {
	sx, sy := c.cellSize()
	c0, r0 := c.ToCell(x0, y0)
	c1, r1 := c.ToCell(x1, y1)

	c0 = core.Clamp(c0, 0, c.screen.Width()-1)
	c1 = core.Clamp(c1, 0, c.screen.Width()-1)
	r0 = core.Clamp(r0, 0, c.screen.Height()-1)
	r1 = core.Clamp(r1, 0, c.screen.Height()-1)

	filled := 0
	for row := r0; row <= r1; row++ {
		for cl := c0; cl <= c1; cl++ {
			px := (float64(cl) + 0.5) * sx
			py := (float64(row) + 0.5) * sy
			if inside(px, py) {
				c.screen.SetCell(cl, row, core.Cell{Rune: glyph, Color: col})
				filled++
			}
		}
	}
	return filled
}

// insideRoundRect reports whether (px, py) lies in the rounded rectangle.
func insideRoundRect(px, py, x, y, w, h, r float64) bool {
	if px < x || px > x+w || py < y || py > y+h {
		return false
	}
	// Nearest point on the inner rectangle shrunk by r.
	nx := core.ClampF(px, x+r, x+w-r)
	ny := core.ClampF(py, y+r, y+h-r)
	dx, dy := px-nx, py-ny
	return dx*dx+dy*dy <= r*r
}
