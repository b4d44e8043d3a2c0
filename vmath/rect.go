package vmath

import "math"

// Rect is an axis-aligned rectangle in play-area pixels
type Rect struct {
	Left, Right, Top, Bottom float64
}

// RectFromBox builds a rectangle from top-left corner and size
func RectFromBox(x, y, w, h float64) Rect {
	return Rect{Left: x, Right: x + w, Top: y, Bottom: y + h}
}

// Width returns horizontal extent
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns vertical extent
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Collide reports strict overlap on both axes
// Touching edges and zero-area rectangles never collide
func Collide(a, b Rect) bool {
	if a.Width() <= 0 || a.Height() <= 0 || b.Width() <= 0 || b.Height() <= 0 {
		return false
	}
	return a.Left < b.Right && a.Right > b.Left && a.Top < b.Bottom && a.Bottom > b.Top
}

// CornerDistance returns the Euclidean distance between the top-left corners
func CornerDistance(a, b Rect) float64 {
	return math.Hypot(a.Left-b.Left, a.Top-b.Top)
}

// Clamp bounds v to [lo, hi]; hi below lo collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
