package geom

import (
	"iter"
	"math"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers.
const MaxExtrema = 4

// Shape describes geometric shapes that have a bounding box.
type Shape interface {
	// BoundingBox returns the smallest axis-aligned rectangle that encloses
	// the shape.
	BoundingBox() Rect
}

// ClosedShape describes shapes with a closed outline, which therefore have
// an area and an inside.
type ClosedShape interface {
	Shape
	// Area returns the area of the shape. Some shapes report a signed
	// area; see their documentation.
	Area() float64
	// Contains reports whether pt lies inside the shape. Every shape
	// documents how it treats points on its boundary.
	Contains(pt Point) bool
}

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range
	// [0, 1], but every curve in this package extrapolates for other values.
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the parameters of the curve's extrema in x and y.
	//
	// Only extrema within the interior of the curve count.
	// The extrema are reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// BoundingBox returns the smallest (axis-aligned) rectangle that encloses the
// curve in the range [0, 1].
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Rect {
	bbox := NewRectFromPoints(c.Start(), c.End())
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// Sample returns an iterator over n+1 points of c, evaluated at evenly spaced
// parameters from 0 to 1 inclusive. It yields nothing if n < 1.
func Sample(c ParametricCurve, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 1 {
			return
		}
		if !yield(c.Start()) {
			return
		}
		step := 1.0 / float64(n)
		for i := 1; i < n; i++ {
			if !yield(c.Eval(float64(i) * step)) {
				return
			}
		}
		yield(c.End())
	}
}

// solveQuadratic finds the real roots of c0 + c1·x + c2·x².
//
// When c2 is (nearly) zero the equation degrades to a linear one and at most
// one root is returned. Roots are returned in increasing order.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsNaN(sc0) || math.IsInf(sc1, 0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if math.IsInf(root, 0) || math.IsNaN(root) {
			if c0 == 0 && c1 == 0 {
				// Degenerate case
				return [2]float64{0}, 1
			}
			return [2]float64{}, 0
		}
		return [2]float64{root}, 1
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float64
	if math.IsInf(arg, 0) || math.IsNaN(arg) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float64{}, 0
		} else if arg == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		}
		return [2]float64{root2, root1}, 2
	}
	return [2]float64{root1}, 1
}
