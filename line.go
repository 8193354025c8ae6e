package geom

import (
	"fmt"
	"math"
)

// Line represents a line segment. It is both a [Shape] and a [ParametricCurve].
//
// The order of the end points matters for parametrization: t = 0 is P0.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Shape = Line{}
var _ ParametricCurve = Line{}

// Ln returns the segment from (x0, y0) to (x1, y1).
func Ln(x0, y0, x1, y1 float64) Line {
	return Line{Pt(x0, y0), Pt(x1, y1)}
}

func (l Line) String() string {
	return fmt.Sprintf("%v→%v", l.P0, l.P1)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, P0·(1−t) + P1·t. t is not clamped,
// so values outside of [0, 1] extrapolate beyond the segment.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Nearest returns the point on the segment closest to pt, together with its
// parameter in [0, 1]. A degenerate segment reports P0 at t = 0.
func (l Line) Nearest(pt Point) (Point, float64) {
	d := l.P1.Sub(l.P0)
	dSquared := d.Hypot2()
	if dSquared == 0 {
		return l.P0, 0
	}
	t := Clamp(pt.Sub(l.P0).Dot(d)/dSquared, 0, 1)
	return l.Eval(t), t
}

// Intersection computes the point where the segments l and o cross.
//
// The intersection of the two infinite lines is computed first; parallel or
// coincident lines report false. The point is then checked against both
// segments' extents. The check is skipped per axis for a segment whose end
// points agree on that axis (within [Epsilon]), so that purely horizontal and
// vertical segments are not rejected because of rounding in the solved
// coordinate.
func (l Line) Intersection(o Line) (Point, bool) {
	x1, y1 := l.P0.Splat()
	x2, y2 := l.P1.Splat()
	x3, y3 := o.P0.Splat()
	x4, y4 := o.P1.Splat()

	div := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if math.Abs(div) < Epsilon {
		return Point{}, false
	}

	c1 := x1*y2 - y1*x2
	c2 := x3*y4 - y3*x4
	xi := ((x3-x4)*c1 - (x1-x2)*c2) / div
	yi := ((y3-y4)*c1 - (y1-y2)*c2) / div

	if outsideSpan(xi, x1, x2) || outsideSpan(xi, x3, x4) ||
		outsideSpan(yi, y1, y2) || outsideSpan(yi, y3, y4) {
		return Point{}, false
	}
	return Pt(xi, yi), true
}

// outsideSpan reports whether v lies outside [min(a, b), max(a, b)]. A span
// narrower than Epsilon never rejects.
func outsideSpan(v, a, b float64) bool {
	if math.Abs(a-b) <= Epsilon {
		return false
	}
	return v < min(a, b) || v > max(a, b)
}

// Near reports whether pt lies on the segment, allowing it to stray from the
// line by roughly threshold units.
//
// The point is considered colinear if the cross product of pt−P0 and P1−P0
// is smaller than threshold times the larger of the segment's extents. It
// must then lie within the segment's span along its dominant axis, bounds
// inclusive.
func (l Line) Near(pt Point, threshold float64) bool {
	c := pt.Sub(l.P0)
	d := l.P1.Sub(l.P0)
	cross := c.Cross(d)
	if math.Abs(cross) >= threshold*max(math.Abs(d.X), math.Abs(d.Y)) {
		return false
	}
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X > 0 {
			return l.P0.X <= pt.X && pt.X <= l.P1.X
		}
		return l.P1.X <= pt.X && pt.X <= l.P0.X
	}
	if d.Y > 0 {
		return l.P0.Y <= pt.Y && pt.Y <= l.P1.Y
	}
	return l.P1.Y <= pt.Y && pt.Y <= l.P0.Y
}
