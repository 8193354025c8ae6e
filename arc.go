package geom

import (
	"iter"
	"math"
)

// Angles of arcs, sectors and rings are in degrees, measured counter-clockwise
// on screen (y-down) from the positive x axis. For elliptical shapes an angle
// is measured after scaling the ellipse to a circle, so that 45° always points
// at the corner of the bounding box.
//
// Vector rotation, by contrast, takes radians; see [Vec2.Rotate].

// Arc is a section of an ellipse's outline, running from StartAngle to
// EndAngle. A negative sweep runs clockwise.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	EndAngle   float64
}

var _ Shape = Arc{}
var _ ParametricCurve = Arc{}

// Sweep returns the signed angular extent of the arc in degrees.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// PointAt returns the point of the arc's ellipse at deg degrees.
func (a Arc) PointAt(deg float64) Point {
	return pointOnEllipse(a.Center, a.Radii, deg)
}

// Eval returns the point at parameter t, linearly interpolating the angle from
// StartAngle at t = 0 to EndAngle at t = 1.
func (a Arc) Eval(t float64) Point {
	return a.PointAt(Lerp(a.StartAngle, a.EndAngle, t))
}

func (a Arc) Start() Point { return a.PointAt(a.StartAngle) }
func (a Arc) End() Point   { return a.PointAt(a.EndAngle) }

// BoundingBox returns the bounding box of the arc's outline, without its
// center.
func (a Arc) BoundingBox() Rect {
	return arcBounds(a.Center, a.Radii, a.StartAngle, a.Sweep())
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// CircleSector is a pie slice of a circle.
type CircleSector struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

var _ ClosedShape = CircleSector{}

func (cs CircleSector) ellipse() EllipseSector {
	return EllipseSector{cs.Center, Vec(cs.Radius, cs.Radius), cs.StartAngle, cs.EndAngle}
}

// Contains reports whether pt lies inside the sector, boundary included.
func (cs CircleSector) Contains(pt Point) bool {
	if pt.DistanceSquared(cs.Center) > cs.Radius*cs.Radius {
		return false
	}
	if pt == cs.Center {
		return true
	}
	deg := angleOnEllipse(cs.Center, Vec(cs.Radius, cs.Radius), pt)
	return sweepContains(cs.StartAngle, cs.EndAngle-cs.StartAngle, deg)
}

func (cs CircleSector) Area() float64 { return cs.ellipse().Area() }

func (cs CircleSector) BoundingBox() Rect { return cs.ellipse().BoundingBox() }

// EllipseSector is a pie slice of an axis-aligned ellipse.
type EllipseSector struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	EndAngle   float64
}

var _ ClosedShape = EllipseSector{}

// Contains reports whether pt lies inside the sector, boundary included.
func (es EllipseSector) Contains(pt Point) bool {
	if !(Ellipse{es.Center, es.Radii}).Contains(pt) {
		return false
	}
	if pt == es.Center {
		return true
	}
	deg := angleOnEllipse(es.Center, es.Radii, pt)
	return sweepContains(es.StartAngle, es.EndAngle-es.StartAngle, deg)
}

// Area returns the area of the sector. Because sector angles are measured on
// the scaled circle, the area is proportional to the sweep.
func (es EllipseSector) Area() float64 {
	sweep := min(math.Abs(es.EndAngle-es.StartAngle), 360)
	return Ellipse{es.Center, es.Radii}.Area() * sweep / 360
}

func (es EllipseSector) BoundingBox() Rect {
	return arcBounds(es.Center, es.Radii, es.StartAngle, es.EndAngle-es.StartAngle).UnionPoint(es.Center)
}

// Ring is a section of an annulus between InnerRadius and OuterRadius. Unlike
// the other angular shapes, a ring always sweeps counter-clockwise from
// StartAngle by |EndAngle − StartAngle| degrees.
//
// Segments is the number of straight segments used per arc when generating
// the ring's outline. Values ≤ 0 select DefaultRingSegments.
type Ring struct {
	Center      Point
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
	Segments    int
}

// DefaultRingSegments is the number of segments used for a [Ring] outline
// when none is specified.
const DefaultRingSegments = 30

var _ ClosedShape = Ring{}

// Sweep returns the angular extent of the ring in degrees. It is never
// negative.
func (r Ring) Sweep() float64 {
	return math.Abs(r.EndAngle - r.StartAngle)
}

func (r Ring) segments() int {
	if r.Segments <= 0 {
		return DefaultRingSegments
	}
	return r.Segments
}

// Contains reports whether pt lies between the two radii and within the
// ring's sweep, boundaries included.
func (r Ring) Contains(pt Point) bool {
	lo, hi := min(r.InnerRadius, r.OuterRadius), max(r.InnerRadius, r.OuterRadius)
	d2 := pt.DistanceSquared(r.Center)
	if d2 < lo*lo || d2 > hi*hi {
		return false
	}
	if pt == r.Center {
		// Only reachable with a zero inner radius.
		return true
	}
	deg := angleOnEllipse(r.Center, Vec(1, 1), pt)
	return sweepContains(r.StartAngle, r.Sweep(), deg)
}

// Area returns the exact area of the ring section, not of its polygonal
// outline.
func (r Ring) Area() float64 {
	sweep := min(r.Sweep(), 360)
	return math.Pi * math.Abs(r.OuterRadius*r.OuterRadius-r.InnerRadius*r.InnerRadius) * sweep / 360
}

func (r Ring) BoundingBox() Rect {
	outer := Vec(r.OuterRadius, r.OuterRadius)
	inner := Vec(r.InnerRadius, r.InnerRadius)
	return arcBounds(r.Center, outer, r.StartAngle, r.Sweep()).
		Union(arcBounds(r.Center, inner, r.StartAngle, r.Sweep()))
}

// Vertices returns the ring's closed outline: the inner arc from StartAngle
// along the sweep, followed by the outer arc back to StartAngle. Each arc
// contributes Segments+1 points.
func (r Ring) Vertices() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := r.segments()
		step := r.Sweep() / float64(n)
		inner := Vec(r.InnerRadius, r.InnerRadius)
		outer := Vec(r.OuterRadius, r.OuterRadius)
		for i := 0; i <= n; i++ {
			if !yield(pointOnEllipse(r.Center, inner, r.StartAngle+float64(i)*step)) {
				return
			}
		}
		for i := n; i >= 0; i-- {
			if !yield(pointOnEllipse(r.Center, outer, r.StartAngle+float64(i)*step)) {
				return
			}
		}
	}
}

// sweepContains reports whether deg lies on the sweep of extent degrees that
// starts at start. Negative extents sweep clockwise.
func sweepContains(start, extent, deg float64) bool {
	if math.Abs(extent) >= 360 {
		return true
	}
	if extent >= 0 {
		return Wrap(deg-start, 0, 360) <= extent
	}
	return Wrap(start-deg, 0, 360) <= -extent
}

// arcBounds returns the bounding box of the elliptical arc starting at start
// and sweeping extent degrees. It includes both end points and every axis
// extreme crossed by the sweep.
func arcBounds(center Point, radii Vec2, start, extent float64) Rect {
	end := start + extent
	bbox := NewRectFromPoints(
		pointOnEllipse(center, radii, start),
		pointOnEllipse(center, radii, end),
	)
	for _, deg := range [...]float64{0, 90, 180, 270} {
		if sweepContains(start, extent, deg) {
			bbox = bbox.UnionPoint(pointOnEllipse(center, radii, deg))
		}
	}
	return bbox
}
