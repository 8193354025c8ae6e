package geom

import (
	"fmt"
	"math"
)

// Vec2 is a free displacement in the plane. Unlike [Point] it takes part in
// vector arithmetic: it can be added, scaled, normalized and rotated.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// AddScalar adds f to both components.
func (v Vec2) AddScalar(f float64) Vec2 {
	return Vec2{
		X: v.X + f,
		Y: v.Y + f,
	}
}

// SubScalar subtracts f from both components.
func (v Vec2) SubScalar(f float64) Vec2 {
	return Vec2{
		X: v.X - f,
		Y: v.Y - f,
	}
}

// Mul scales the vector by f.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// MulVec multiplies the vectors component by component.
func (v Vec2) MulVec(o Vec2) Vec2 {
	return Vec2{
		X: v.X * o.X,
		Y: v.Y * o.Y,
	}
}

// DivVec divides the vectors component by component. Zero components in o
// produce infinities or NaNs.
func (v Vec2) DivVec(o Vec2) Vec2 {
	return Vec2{
		X: v.X / o.X,
		Y: v.Y / o.Y,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Invert returns ⟨1/x, 1/y⟩.
func (v Vec2) Invert() Vec2 {
	return Vec2{
		X: 1 / v.X,
		Y: 1 / v.Y,
	}
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{
		X: min(v.X, o.X),
		Y: min(v.Y, o.Y),
	}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{
		X: max(v.X, o.X),
		Y: max(v.Y, o.Y),
	}
}

// Clamp clamps each component of v into the range given by the matching
// components of lo and hi.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: min(hi.X, max(lo.X, v.X)),
		Y: min(hi.Y, max(lo.Y, v.Y)),
	}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the distance between the tips of v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Hypot()
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle in radians that rotates v onto o, in the
// range (-π, π]. The sign gives the direction of rotation; it is not the
// unsigned angle between the two vectors.
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(v.Cross(o), v.Dot(o))
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
//
// Thus, in a y-down coordinate system (as is common for graphics),
// it is a clockwise rotation, and in y-up (traditional for math), it
// is anti-clockwise.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// The zero vector has no direction and is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Hypot()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1.0 / l)
}

// ClampLength scales v so that its magnitude lies in [lo, hi]. The zero
// vector is returned unchanged.
func (v Vec2) ClampLength(lo, hi float64) Vec2 {
	l2 := v.Hypot2()
	if l2 <= 0 {
		return v
	}
	l := math.Sqrt(l2)
	switch {
	case l < lo:
		return v.Mul(lo / l)
	case l > hi:
		return v.Mul(hi / l)
	default:
		return v
	}
}

// MoveTowards moves v towards target by at most maxDistance. If target is
// already within reach (or v equals target), target itself is returned.
func (v Vec2) MoveTowards(target Vec2, maxDistance float64) Vec2 {
	d := target.Sub(v)
	d2 := d.Hypot2()
	if d2 == 0 || (maxDistance >= 0 && d2 <= maxDistance*maxDistance) {
		return target
	}
	dist := math.Sqrt(d2)
	return v.Add(d.Mul(maxDistance / dist))
}

// Reflect reflects v about the line with the given normal. The normal must
// have unit length; it is not normalized here.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Rotate rotates v about the origin by th radians.
func (v Vec2) Rotate(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
