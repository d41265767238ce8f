package model

import "math"

// Point2D represents a 2D coordinate in room units.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DistanceTo returns the euclidean distance between two points.
func (p Point2D) DistanceTo(q Point2D) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Finite reports whether both coordinates are finite numbers.
func (p Point2D) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the far edge along Y.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Origin returns the placement point of the rectangle.
func (r Rect) Origin() Point2D {
	return Point2D{X: r.X, Y: r.Y}
}

// Degenerate reports whether the rectangle cannot take part in geometry tests:
// non-positive or non-finite size, or a non-finite position.
func (r Rect) Degenerate() bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether two rectangles share interior area.
// Touching edges are not an overlap.
func (r Rect) Overlaps(o Rect) bool {
	separated := r.Right() <= o.X || o.Right() <= r.X ||
		r.Bottom() <= o.Y || o.Bottom() <= r.Y
	return !separated
}

// Inset shrinks the rectangle by d on every side. The result never has a
// negative size; an over-inset rectangle collapses onto its center.
func (r Rect) Inset(d float64) Rect {
	w := r.Width - 2*d
	h := r.Height - 2*d
	out := Rect{X: r.X + d, Y: r.Y + d, Width: w, Height: h}
	if w < 0 {
		out.X = r.X + r.Width/2
		out.Width = 0
	}
	if h < 0 {
		out.Y = r.Y + r.Height/2
		out.Height = 0
	}
	return out
}

// RoundTo rounds v to the given number of decimal places.
// A negative precision leaves v untouched.
func RoundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
