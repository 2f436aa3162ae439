// Package core provides the small value types shared by the simulation and
// the platform layer: rectangles, input frames and the character screen.
// It has no external dependencies so game logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box used for placement and
// collision detection. Y grows downwards.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectMidBottom creates a rectangle of size w×h whose bottom edge is
// centered on (mx, bottom).
func NewRectMidBottom(mx, bottom, w, h int) Rect {
	return Rect{X: mx - w/2, Y: bottom - h, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// MidBottom returns the anchor point at the middle of the bottom edge.
func (r Rect) MidBottom() (int, int) {
	return r.X + r.W/2, r.Bottom()
}

// WithBottom returns a copy moved vertically so its bottom edge is at y.
func (r Rect) WithBottom(y int) Rect {
	r.Y = y - r.H
	return r
}

// WithHeight returns a copy resized to height h, keeping the midbottom anchor.
func (r Rect) WithHeight(h int) Rect {
	mx, bottom := r.MidBottom()
	return NewRectMidBottom(mx, bottom, r.W, h)
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
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

// ScaleDown maps v from a span of size from onto a span of size to, rounding
// toward negative infinity.
func ScaleDown(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	n := v * to
	q := n / from
	if n%from != 0 && n < 0 {
		q--
	}
	return q
}

// ScaleUp is like ScaleDown but rounds toward positive infinity.
func ScaleUp(v, from, to int) int {
	if from <= 0 {
		return 0
	}
	n := v * to
	q := n / from
	if n%from != 0 && n > 0 {
		q++
	}
	return q
}
