package gfx

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/canvas"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Surface draws onto an ebiten image in logical pixels. The image is
// swapped in every frame with Target.
type Surface struct {
	dst        *ebiten.Image
	width      float64
	height     float64
	background color.Color
	fonts      *Fonts
}

// NewSurface creates a surface of the given logical size.
func NewSurface(width, height float64, fonts *Fonts) *Surface {
	return &Surface{
		width:      width,
		height:     height,
		background: color.Black,
		fonts:      fonts,
	}
}

// Target sets the image drawn onto by subsequent calls.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Size implements canvas.Surface.
func (s *Surface) Size() (w, h float64) {
	return s.width, s.height
}

// Clear implements canvas.Surface.
func (s *Surface) Clear() {
	s.dst.Fill(s.background)
}

// FillCircle implements canvas.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c.RGBA(), true)
}

// FillRoundRect implements canvas.Surface. The shape is a cross of two
// rectangles with a circle in each corner.
func (s *Surface) FillRoundRect(x, y, w, h, r float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = core.ClampF(r, 0, math.Min(w, h)/2)
	clr := c.RGBA()

	if r == 0 {
		vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, true)
		return
	}

	vector.DrawFilledRect(s.dst, float32(x+r), float32(y), float32(w-2*r), float32(h), clr, true)
	vector.DrawFilledRect(s.dst, float32(x), float32(y+r), float32(w), float32(h-2*r), clr, true)

	for _, p := range [4][2]float64{
		{x + r, y + r},
		{x + w - r, y + r},
		{x + r, y + h - r},
		{x + w - r, y + h - r},
	} {
		vector.DrawFilledCircle(s.dst, float32(p[0]), float32(p[1]), float32(r), clr, true)
	}
}

// DrawText implements canvas.Surface. y is the baseline.
func (s *Surface) DrawText(str string, x, y float64, style canvas.TextStyle) {
	face := s.fonts.Face(style.Size)

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y-face.Metrics().HAscent)
	opts.ColorScale.ScaleWithColor(style.Color.RGBA())

	switch style.Align {
	case canvas.AlignCenter:
		opts.PrimaryAlign = text.AlignCenter
	case canvas.AlignRight:
		opts.PrimaryAlign = text.AlignEnd
	default:
		opts.PrimaryAlign = text.AlignStart
	}

	text.Draw(s.dst, str, face, opts)
}

var _ canvas.Surface = (*Surface)(nil)
