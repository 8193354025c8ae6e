// Package geom provides 2D primitives, collision tests and curve evaluation
// for frame-driven applications such as games. It answers three kinds of
// questions: do two shapes overlap, where do they intersect, and where along
// a curve is parameter t.
//
// # Points and vectors
//
// [Point] is a position and [Vec2] a displacement. The two share a layout and
// convert freely with Point(v) and Vec2(p), but their methods keep the roles
// apart: points are translated by vectors ([Point.Translate]) and subtracted
// to obtain vectors ([Point.Sub]), while only vectors are added, scaled,
// normalized, reflected and rotated.
//
// # Shapes
//
// All shapes are small value types that are created by the caller, passed to
// a method and discarded. Nothing in this package retains a shape across
// calls or mutates its arguments, so all functions are safe for concurrent
// use.
//
// This package includes the following shapes:
//   - [Line]
//   - [Rect] and [RoundedRect]
//   - [Circle] and [Ellipse]
//   - [Triangle]
//   - [Polygon] (regular polygons only)
//   - [Arc], [CircleSector], [EllipseSector] and [Ring]
//   - [QuadBez] and [CubicBez]
//
// [ClosedShape] is implemented by shapes that have an inside; every such shape
// documents whether its boundary counts as inside.
//
// # Collisions
//
// Pairwise tests are methods on the shapes: [Rect.Overlaps],
// [Circle.Overlaps], [Circle.IntersectsLine], [Circle.IntersectsRect],
// [Line.Intersection], [Line.Near], [Rect.Intersect] and the Contains method
// of every closed shape. [Collide] dispatches on the dynamic types of two
// shapes. Tests are discrete: they look at one pose of each shape and know
// nothing about motion between frames.
//
// Degenerate input never panics. Parallel lines, zero-length segments and
// polygons with fewer than three sides take explicit fallback paths guarded
// by [Epsilon].
//
// # Curves
//
// [Line], [QuadBez], [CubicBez] and [Arc] implement [ParametricCurve]. Eval is
// defined for any real t and extrapolates outside of [0, 1]. [Sample] walks a
// curve at evenly spaced parameters.
//
// # Angles
//
// Vector rotation ([Vec2.Rotate], [VecFromAngle], [Vec2.AngleTo]) works in
// radians. Shapes generated from angles ([Polygon], [Arc], [CircleSector],
// [EllipseSector], [Ring]) take degrees. Use [Radians] and [Degrees] to
// convert between the two.
package geom
