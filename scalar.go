package geom

import "math"

// Epsilon is the machine epsilon for float64. It is the threshold used to
// detect degenerate segments and parallel lines.
const Epsilon = 2.220446049250313e-16

// Lerp linearly interpolates between start and end.
func Lerp(start, end, t float64) float64 {
	return start + t*(end-start)
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// InverseLerp returns where v lies between start and end, such that
// Lerp(start, end, InverseLerp(start, end, v)) == v.
func InverseLerp(start, end, v float64) float64 {
	return (v - start) / (end - start)
}

// Remap maps v from the range [inStart, inEnd] onto [outStart, outEnd].
// Values outside the input range extrapolate.
func Remap(v, inStart, inEnd, outStart, outEnd float64) float64 {
	return (v-inStart)/(inEnd-inStart)*(outEnd-outStart) + outStart
}

// Wrap wraps v into the half-open range [lo, hi).
func Wrap(v, lo, hi float64) float64 {
	return v - (hi-lo)*math.Floor((v-lo)/(hi-lo))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}
