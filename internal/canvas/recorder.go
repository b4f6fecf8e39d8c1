package canvas

import "github.com/vovakirdan/tui-breakout/internal/core"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpRoundRect
	OpText
)

// String returns a human-readable name for the op kind.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpCircle:
		return "circle"
	case OpRoundRect:
		return "roundrect"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call. Unused fields are zero.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	R          float64
	Color      core.Color
	Text       string
	Style      TextStyle
}

// Recorder is a Surface that remembers every call since the last Clear.
type Recorder struct {
	Width, Height float64
	Ops           []Op
	Clears        int
}

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h}
}

// Size implements Surface.
func (r *Recorder) Size() (w, h float64) {
	return r.Width, r.Height
}

// Clear implements Surface.
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, Op{Kind: OpClear})
	r.Clears++
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(cx, cy, radius float64, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: c})
}

// FillRoundRect implements Surface.
func (r *Recorder) FillRoundRect(x, y, w, h, radius float64, c core.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRoundRect, X: x, Y: y, W: w, H: h, R: radius, Color: c})
}

// DrawText implements Surface.
func (r *Recorder) DrawText(s string, x, y float64, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: s, Color: style.Color, Style: style})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded text strings in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*CellSurface)(nil)
)
