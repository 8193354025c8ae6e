package geom

import (
	"fmt"
	"math"
)

// Ellipse is an axis-aligned ellipse with horizontal radius Radii.X and
// vertical radius Radii.Y.
type Ellipse struct {
	Center Point
	Radii  Vec2
}

var _ ClosedShape = Ellipse{}

// NewEllipseFromRect returns the largest ellipse that fits in rect.
func NewEllipseFromRect(rect Rect) Ellipse {
	return Ellipse{
		Center: rect.Center(),
		Radii:  Vec(math.Abs(rect.Width)/2, math.Abs(rect.Height)/2),
	}
}

// NewEllipseFromCircle returns the ellipse covering the same area as c.
func NewEllipseFromCircle(c Circle) Ellipse {
	return Ellipse{c.Center, Vec(c.Radius, c.Radius)}
}

func (e Ellipse) String() string {
	return fmt.Sprintf("Ellipse[%v, %v]", e.Center, e.Radii)
}

// Contains reports whether pt lies inside the ellipse or on its boundary.
// An ellipse with a zero radius contains nothing but its center.
func (e Ellipse) Contains(pt Point) bool {
	d := pt.Sub(e.Center)
	if e.Radii.X == 0 || e.Radii.Y == 0 {
		return d == Vec2{}
	}
	n := d.DivVec(e.Radii)
	return n.Hypot2() <= 1
}

func (e Ellipse) Area() float64 {
	return math.Pi * math.Abs(e.Radii.X*e.Radii.Y)
}

func (e Ellipse) BoundingBox() Rect {
	rx, ry := math.Abs(e.Radii.X), math.Abs(e.Radii.Y)
	return Rect{
		X:      e.Center.X - rx,
		Y:      e.Center.Y - ry,
		Width:  2 * rx,
		Height: 2 * ry,
	}
}

// PointAt returns the point on the ellipse at deg degrees, measured
// counter-clockwise on screen from the positive x axis.
func (e Ellipse) PointAt(deg float64) Point {
	return pointOnEllipse(e.Center, e.Radii, deg)
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	e.Center = e.Center.Translate(v)
	return e
}

func (e Ellipse) IsInf() bool {
	return e.Center.IsInf() || e.Radii.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.Center.IsNaN() || e.Radii.IsNaN()
}

// pointOnEllipse returns the point at deg degrees on the ellipse. Angles grow
// counter-clockwise in a y-down space, so positive angles move the point up.
func pointOnEllipse(center Point, radii Vec2, deg float64) Point {
	sin, cos := math.Sincos(Radians(deg))
	return Point{
		X: center.X + radii.X*cos,
		Y: center.Y - radii.Y*sin,
	}
}

// angleOnEllipse is the inverse of pointOnEllipse. It returns the angle in
// degrees, in [0, 360), of pt as seen from center, after scaling the ellipse
// to a unit circle.
func angleOnEllipse(center Point, radii Vec2, pt Point) float64 {
	d := pt.Sub(center)
	deg := Degrees(math.Atan2(-d.Y/radii.Y, d.X/radii.X))
	return Wrap(deg, 0, 360)
}
