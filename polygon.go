package geom

import (
	"fmt"
	"iter"
	"math"

	"deedles.dev/xiter"
)

// Polygon is a regular polygon, described implicitly by its center, number
// of sides, circumradius and rotation. Rotation is in degrees.
//
// Vertices are derived on demand and never stored.
type Polygon struct {
	Center   Point
	Sides    int
	Radius   float64
	Rotation float64
}

var _ ClosedShape = Polygon{}

func (p Polygon) String() string {
	return fmt.Sprintf("Polygon[%v, %d, %g, %g°]", p.Center, p.Sides, p.Radius, p.Rotation)
}

// Vertices returns an iterator over the polygon's vertices. Vertex i lies at
// Rotation + i·360/Sides degrees around the center, using the same
// orientation as [Vec2.Rotate] (clockwise in a y-down space). Polygons with
// fewer than three sides have no vertices.
func (p Polygon) Vertices() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if p.Sides < 3 {
			return
		}
		step := 360 / float64(p.Sides)
		for i := range p.Sides {
			v := VecFromAngle(Radians(p.Rotation + step*float64(i))).Mul(p.Radius)
			if !yield(p.Center.Translate(v)) {
				return
			}
		}
	}
}

// vertices collects the vertices into a slice.
func (p Polygon) vertices() []Point {
	if p.Sides < 3 {
		return nil
	}
	out := make([]Point, p.Sides)
	for i, v := range xiter.Enumerate(p.Vertices()) {
		out[i] = v
	}
	return out
}

// Contains reports whether pt lies inside the polygon, using the even-odd
// rule. Polygons with fewer than three sides contain nothing.
func (p Polygon) Contains(pt Point) bool {
	pts := p.vertices()
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Area returns the area of the polygon, ½·n·r²·sin(360°/n).
func (p Polygon) Area() float64 {
	if p.Sides < 3 {
		return 0
	}
	n := float64(p.Sides)
	return 0.5 * n * p.Radius * p.Radius * math.Sin(2*math.Pi/n)
}

// Perimeter returns the length of the polygon's outline.
func (p Polygon) Perimeter() float64 {
	if p.Sides < 3 {
		return 0
	}
	n := float64(p.Sides)
	return n * 2 * math.Abs(p.Radius) * math.Sin(math.Pi/n)
}

func (p Polygon) BoundingBox() Rect {
	bbox := Rect{X: p.Center.X, Y: p.Center.Y}
	first := true
	for v := range p.Vertices() {
		if first {
			bbox = Rect{X: v.X, Y: v.Y}
			first = false
			continue
		}
		bbox = bbox.UnionPoint(v)
	}
	return bbox
}

func (p Polygon) Translate(v Vec2) Polygon {
	p.Center = p.Center.Translate(v)
	return p
}
