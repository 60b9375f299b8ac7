// Package core holds the types shared by the game and its frontends:
// geometry, input actions, the screen buffer and run state. It imports
// nothing outside the standard library so game logic stays testable
// without a terminal.
package core

// Rect is a box of screen cells. Y grows downward.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a screen rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// RectF is an axis-aligned box in continuous world units. Y grows upward
// and both axes are half-open: [X, X+W) x [Y, Y+H).
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the exclusive upper edge.
func (r RectF) Top() float64 { return r.Y + r.H }

// Intersects reports whether two boxes share any area.
// Boxes that only touch along an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Top() && other.Y < r.Top()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
