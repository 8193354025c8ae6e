package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle. (X, Y) is the top left corner in a
// y-down space.
//
// Width and height are expected to be non-negative. This is not enforced;
// methods produce whatever the arithmetic yields for negative sizes.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

var _ ClosedShape = Rect{}

// NewRect returns the rectangle with top left corner (x, y) and the given
// size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
	y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	return Rect{
		X:      x0,
		Y:      y0,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

// NewRectFromCenter returns a rectangle with the given size, centered around the center
// point.
func NewRectFromCenter(center Point, size Size) Rect {
	return Rect{
		X:      center.X - size.Width/2,
		Y:      center.Y - size.Height/2,
		Width:  size.Width,
		Height: size.Height,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect[%g, %g, %g×%g]", r.X, r.Y, r.Width, r.Height)
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Origin returns the top left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{
		X: r.X,
		Y: r.Y,
	}
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width,
		Height: r.Height,
	}
}

func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// BoundingBox returns r.
func (r Rect) BoundingBox() Rect {
	return r
}

// Contains reports whether pt lies in the half-open rectangle
// [X, X+Width) × [Y, Y+Height). The left and top edges are inside, the right
// and bottom edges are not, so that tiled rectangles claim every point
// exactly once.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X &&
		pt.X < r.X+r.Width &&
		pt.Y >= r.Y &&
		pt.Y < r.Y+r.Height
}

// Overlaps reports whether r and o share a region of non-zero area.
// Rectangles that merely touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Intersect returns the region shared by r and o. If the rectangles do not
// overlap, it returns the zero rectangle and false.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	left := max(r.X, o.X)
	right := min(r.X+r.Width, o.X+o.Width)
	top := max(r.Y, o.Y)
	bottom := min(r.Y+r.Height, o.Y+o.Height)
	if left < right && top < bottom {
		return Rect{
			X:      left,
			Y:      top,
			Width:  right - left,
			Height: bottom - top,
		}, true
	}
	return Rect{}, false
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return NewRectFromPoints(
		Pt(min(r.X, o.X), min(r.Y, o.Y)),
		Pt(max(r.MaxX(), o.MaxX()), max(r.MaxY(), o.MaxY())),
	)
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return NewRectFromPoints(
		Pt(min(r.X, pt.X), min(r.Y, pt.Y)),
		Pt(max(r.MaxX(), pt.X), max(r.MaxY(), pt.Y)),
	)
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X:      r.X - width,
		Y:      r.Y - height,
		Width:  r.Width + 2*width,
		Height: r.Height + 2*height,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// IsInf reports whether at least one of the rectangle's values is infinite.
func (r Rect) IsInf() bool {
	return math.IsInf(r.X, 0) ||
		math.IsInf(r.Y, 0) ||
		math.IsInf(r.Width, 0) ||
		math.IsInf(r.Height, 0)
}

// IsNaN reports whether at least one of the rectangle's values is NaN.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X) ||
		math.IsNaN(r.Y) ||
		math.IsNaN(r.Width) ||
		math.IsNaN(r.Height)
}

// RoundedRect is a rectangle whose corners are rounded off with quarter
// circles of the given radius. The radius is clamped to half the shorter
// side.
type RoundedRect struct {
	Rect
	Radius float64
}

var _ ClosedShape = RoundedRect{}

func (rr RoundedRect) radius() float64 {
	return Clamp(rr.Radius, 0, min(rr.Width, rr.Height)/2)
}

// Area returns the area of the rounded rectangle.
func (rr RoundedRect) Area() float64 {
	r := rr.radius()
	return rr.Rect.Area() - (4-math.Pi)*r*r
}

// Contains reports whether pt is inside the rounded rectangle. Outside the
// corner regions this is the half-open test of [Rect.Contains]; inside a
// corner region the point must lie within the corner's circle.
func (rr RoundedRect) Contains(pt Point) bool {
	if !rr.Rect.Contains(pt) {
		return false
	}
	r := rr.radius()
	if r == 0 {
		return true
	}
	inner := rr.Rect.Inflate(-r, -r)
	// Clamp pt onto the inner rectangle; the clamped point is the center of
	// the corner circle when pt lies in a corner region.
	c := Pt(
		Clamp(pt.X, inner.MinX(), inner.MaxX()),
		Clamp(pt.Y, inner.MinY(), inner.MaxY()),
	)
	return pt.DistanceSquared(c) <= r*r
}

// Size is a width and height pair.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Area() float64 { return sz.Width * sz.Height }
