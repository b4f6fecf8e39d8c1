// Package core provides fundamental types shared by the simulation and its hosts:
// geometry, colors, symbolic keys, the cell screen buffer and the score/lives
// observer port. It does not import any UI framework so game logic stays
// pure and testable.
package core

// RectF is a rectangle in logical (surface pixel) coordinates.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 {
	return r.X + r.W/2
}

// ContainsOpen reports whether (x, y) lies strictly inside the rectangle.
// Points on any edge are outside.
func (r RectF) ContainsOpen(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
