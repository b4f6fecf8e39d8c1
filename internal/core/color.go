package core

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit color stored as a "#rrggbb" hex string.
// The zero value means the terminal's default foreground.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorBlack   Color = "#000000"
	ColorCoral   Color = "#ff6b6b"
	ColorTeal    Color = "#4ecdc4"
	ColorSky     Color = "#45b7d1"
	ColorSage    Color = "#96ceb4"
	ColorCream   Color = "#ffeead"
	ColorGold    Color = "#ffd93d"
)

// ParseColor parses a "#rgb" or "#rrggbb" string into a normalized Color.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(c.Hex()), nil
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// RGBA converts the color to an opaque image/color value.
// The default color maps to white.
func (c Color) RGBA() color.RGBA {
	if c.IsDefault() {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
