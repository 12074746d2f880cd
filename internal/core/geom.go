// Package core provides fundamental types shared by the guest core and the
// terminal host: geometry, packed colours, a bounded list and a pixel screen.
// It has no external dependencies so the guest build stays small.
package core

// Rect is an axis-aligned rectangle in screen space.
// Y grows downwards, matching the guest's screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal extents of r and other overlap.
// Touching edges do not count as overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// WithinY reports whether r's vertical extent lies entirely inside other's.
func (r Rect) WithinY(other Rect) bool {
	return r.Y >= other.Y && r.Bottom() <= other.Bottom()
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
