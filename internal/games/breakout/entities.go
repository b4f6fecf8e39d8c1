package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball represents the ball state. Position is the center; velocity is in
// pixels per frame.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Next returns the position after one more move.
func (b *Ball) Next() (x, y float64) {
	return b.X + b.DX, b.Y + b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Sqrt(b.DX*b.DX + b.DY*b.DY)
}

// Paddle represents the player's paddle. Y never changes.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Step          float64 // Horizontal move per frame
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.Bounds().CenterX()
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Spans reports whether x lies strictly between the paddle's left and right edges.
func (p *Paddle) Spans(x float64) bool {
	r := p.Bounds()
	return x > r.X && x < r.Right()
}

// Block is one brick in the grid.
type Block struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Alive         bool
}

// Bounds returns the block rectangle.
func (b *Block) Bounds() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
