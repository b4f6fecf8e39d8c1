// Package canvas defines the drawing surface the game renders onto, plus a
// terminal rasterizer and a recording surface for tests.
package canvas

import "github.com/vovakirdan/tui-breakout/internal/core"

// Align is the horizontal alignment of drawn text relative to its anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle configures DrawText.
type TextStyle struct {
	Size  float64 // Font size in logical pixels
	Color core.Color
	Align Align
}

// Surface is a 2D drawing target in logical pixel coordinates.
// Text y is the alphabetic baseline.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)
	Clear()
	FillCircle(cx, cy, r float64, c core.Color)
	FillRoundRect(x, y, w, h, r float64, c core.Color)
	DrawText(s string, x, y float64, style TextStyle)
}
