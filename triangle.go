package geom

import (
	"fmt"
	"math"
)

// Triangle is described by three vertices in any winding order.
type Triangle struct {
	P0, P1, P2 Point
}

var _ ClosedShape = Triangle{}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle[%v, %v, %v]", t.P0, t.P1, t.P2)
}

// Barycentric returns the barycentric coordinates of pt with respect to the
// triangle's vertices P0, P1 and P2. The weights are NaN or infinite for
// degenerate triangles.
func (t Triangle) Barycentric(pt Point) (alpha, beta, gamma float64) {
	// Twice the signed area of the triangle, expanded around P2.
	den := (t.P1.Y-t.P2.Y)*(t.P0.X-t.P2.X) + (t.P2.X-t.P1.X)*(t.P0.Y-t.P2.Y)
	alpha = ((t.P1.Y-t.P2.Y)*(pt.X-t.P2.X) + (t.P2.X-t.P1.X)*(pt.Y-t.P2.Y)) / den
	beta = ((t.P2.Y-t.P0.Y)*(pt.X-t.P2.X) + (t.P0.X-t.P2.X)*(pt.Y-t.P2.Y)) / den
	gamma = 1 - alpha - beta
	return alpha, beta, gamma
}

// Contains reports whether pt lies strictly inside the triangle. Points on an
// edge or a vertex are outside, and a triangle with zero area contains
// nothing.
func (t Triangle) Contains(pt Point) bool {
	alpha, beta, gamma := t.Barycentric(pt)
	// NaN compares false, which rejects degenerate triangles.
	return alpha > 0 && beta > 0 && gamma > 0
}

// SignedArea returns the signed area of the triangle. It is positive when the
// vertices wind clockwise in a y-down space.
func (t Triangle) SignedArea() float64 {
	return 0.5 * t.P1.Sub(t.P0).Cross(t.P2.Sub(t.P0))
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Centroid returns the triangle's center of mass.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.P0.X + t.P1.X + t.P2.X) / 3,
		Y: (t.P0.Y + t.P1.Y + t.P2.Y) / 3,
	}
}

func (t Triangle) BoundingBox() Rect {
	return NewRectFromPoints(t.P0, t.P1).UnionPoint(t.P2)
}

func (t Triangle) Translate(v Vec2) Triangle {
	return Triangle{t.P0.Translate(v), t.P1.Translate(v), t.P2.Translate(v)}
}
