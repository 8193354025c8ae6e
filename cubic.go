package geom

import (
	"fmt"
	"sort"
)

var _ Shape = CubicBez{}
var _ ParametricCurve = CubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier curve from P0 to P3 with control points P1 and
// P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez[%v, %v, %v, %v]", c.P0, c.P1, c.P2, c.P3)
}

// Eval evaluates the curve at t using the Bernstein form
// (1−t)³·P0 + 3(1−t)²t·P1 + 3(1−t)t²·P2 + t³·P3. t is not restricted to
// [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// BoundingBox implements [Shape].
func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Extrema returns the parameters in (0, 1) at which the curve's x or y
// derivative vanishes, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := solveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{c.P0.Translate(v), c.P1.Translate(v), c.P2.Translate(v), c.P3.Translate(v)}
}
