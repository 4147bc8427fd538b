// Package physics provides the playfield geometry used by every collision check.
package physics

// Point is a position in logical playfield units.
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned bounding box with X1 <= X2 and Y1 <= Y2.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// RectAround returns the box of size w x h centered on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{
		X1: c.X - w/2,
		Y1: c.Y - h/2,
		X2: c.X + w/2,
		Y2: c.Y + h/2,
	}
}

// RectAt returns the box of size w x h whose top-left corner is (x, y).
func RectAt(x, y, w, h float64) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Overlaps reports whether two rectangles intersect on both axes.
// Touching edges count as overlap.
func Overlaps(a, b Rect) bool {
	if a.X2 < b.X1 || a.X1 > b.X2 {
		return false
	}
	if a.Y2 < b.Y1 || a.Y1 > b.Y2 {
		return false
	}
	return true
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
