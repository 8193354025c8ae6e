package geom

import "fmt"

var _ Shape = QuadBez{}
var _ ParametricCurve = QuadBez{}
var _ Extremer = QuadBez{}

// QuadBez is a quadratic Bézier curve from P0 to P2 with control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) String() string {
	return fmt.Sprintf("QuadBez[%v, %v, %v]", q.P0, q.P1, q.P2)
}

// Eval evaluates the curve at t using the Bernstein form
// (1−t)²·P0 + 2(1−t)t·P1 + t²·P2. t is not restricted to [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return Point{
		X: a*q.P0.X + b*q.P1.X + c*q.P2.X,
		Y: a*q.P0.Y + b*q.P1.Y + c*q.P2.Y,
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) BoundingBox() Rect {
	return BoundingBox(q)
}

// Subdivide splits the curve at t = 0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Raise returns a cubic Bézier that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Extrema returns the parameters in (0, 1) at which the curve's x or y
// derivative vanishes.
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// The derivative of a quadratic is a line, so each axis has at most one
	// root.
	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{q.P0.Translate(v), q.P1.Translate(v), q.P2.Translate(v)}
}
