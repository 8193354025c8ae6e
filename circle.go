package geom

import (
	"fmt"
	"math"
)

// Circle is described by its center and radius. The radius is expected to be
// non-negative.
type Circle struct {
	Center Point
	Radius float64
}

var _ ClosedShape = Circle{}

// Circ returns the circle centered on (x, y) with radius r.
func Circ(x, y, r float64) Circle {
	return Circle{Pt(x, y), r}
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle[%v, %g]", c.Center, c.Radius)
}

// Contains reports whether pt lies inside the circle or on its boundary.
func (c Circle) Contains(pt Point) bool {
	return pt.DistanceSquared(c.Center) <= c.Radius*c.Radius
}

// Overlaps reports whether c and o share at least one point. Circles that
// touch overlap.
func (c Circle) Overlaps(o Circle) bool {
	return CirclesOverlap(c.Center, c.Radius, o.Center, o.Radius)
}

// CirclesOverlap reports whether the circle around c0 with radius r0 and the
// circle around c1 with radius r1 share at least one point.
func CirclesOverlap(c0 Point, r0 float64, c1 Point, r1 float64) bool {
	rs := r0 + r1
	return c0.DistanceSquared(c1) <= rs*rs
}

// IntersectsLine reports whether the segment l passes through the circle.
//
// The circle's center is projected onto the segment and the closest point of
// the segment is compared against the radius. If the segment's end points
// coincide, this degrades to a point-in-circle test for P0.
func (c Circle) IntersectsLine(l Line) bool {
	d := l.P1.Sub(l.P0)
	if math.Abs(d.X)+math.Abs(d.Y) <= Epsilon {
		return CirclesOverlap(l.P0, 0, c.Center, c.Radius)
	}
	t := Clamp(c.Center.Sub(l.P0).Dot(d)/d.Hypot2(), 0, 1)
	return l.Eval(t).DistanceSquared(c.Center) <= c.Radius*c.Radius
}

// IntersectsRect reports whether the circle and r share at least one point.
func (c Circle) IntersectsRect(r Rect) bool {
	hw, hh := r.Width/2, r.Height/2
	center := r.Center()
	dx := math.Abs(c.Center.X - center.X)
	dy := math.Abs(c.Center.Y - center.Y)

	if dx > hw+c.Radius || dy > hh+c.Radius {
		return false
	}
	if dx <= hw || dy <= hh {
		return true
	}
	cornerX, cornerY := dx-hw, dy-hh
	return cornerX*cornerX+cornerY*cornerY <= c.Radius*c.Radius
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X:      c.Center.X - r,
		Y:      c.Center.Y - r,
		Width:  2 * r,
		Height: 2 * r,
	}
}

// PointAt returns the point on the circle at deg degrees, measured
// counter-clockwise on screen from the positive x axis.
func (c Circle) PointAt(deg float64) Point {
	return pointOnEllipse(c.Center, Vec(c.Radius, c.Radius), deg)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
