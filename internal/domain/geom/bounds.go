// Package geom provides axis-aligned rectangles for UI anchoring and
// pointer hit-testing.
//
// Bounds values are immutable in practice: every transform returns a new
// rectangle and never touches the receiver.
package geom

// Point is a 2D position in screen units
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IntersectsBounds reports whether the point lies inside b.
func (p Point) IntersectsBounds(b Bounds) bool {
	return b.Contains(p)
}

// Bounds is an axis-aligned rectangle.
// W and H are never negative on values produced by this package.
type Bounds struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// New creates a rectangle with the given position and size.
// Negative sizes are clamped to zero.
func New(x, y, w, h float64) Bounds {
	return Bounds{X: x, Y: y, W: nonNeg(w), H: nonNeg(h)}
}

// WithSize creates a rectangle of the given size at the origin.
func WithSize(w, h float64) Bounds {
	return New(0, 0, w, h)
}

// AnchorCenter returns a rectangle of the same size centered in container.
func (b Bounds) AnchorCenter(container Bounds) Bounds {
	b.X = container.X + (container.W-b.W)/2
	b.Y = container.Y + (container.H-b.H)/2
	return b
}

// TranslateX shifts the rectangle horizontally.
func (b Bounds) TranslateX(dx float64) Bounds {
	b.X += dx
	return b
}

// TranslateY shifts the rectangle vertically.
func (b Bounds) TranslateY(dy float64) Bounds {
	b.Y += dy
	return b
}

// InsetLeft moves the left edge right by n, shrinking the width.
func (b Bounds) InsetLeft(n float64) Bounds {
	b.X += n
	b.W = nonNeg(b.W - n)
	return b
}

// InsetTop moves the top edge down by n, shrinking the height.
func (b Bounds) InsetTop(n float64) Bounds {
	b.Y += n
	b.H = nonNeg(b.H - n)
	return b
}

// Contains returns true if p is inside the rectangle.
// The right and bottom edges are excluded.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.X+b.W && p.Y >= b.Y && p.Y < b.Y+b.H
}

// XY returns the top-left corner.
func (b Bounds) XY() Point {
	return Point{X: b.X, Y: b.Y}
}

// WH returns the width and height.
func (b Bounds) WH() (float64, float64) {
	return b.W, b.H
}

// Left returns the x-coordinate of the left edge.
func (b Bounds) Left() float64 {
	return b.X
}

// Top returns the y-coordinate of the top edge.
func (b Bounds) Top() float64 {
	return b.Y
}

// Center returns the center point of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

func nonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
