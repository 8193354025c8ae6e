package geom

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPair is returned by [Collide] for shape pairs that have no
// collision test.
var ErrUnsupportedPair = errors.New("unsupported shape pair")

// Collide reports whether a and b collide, dispatching to the pairwise test
// for their types. The order of the arguments does not matter.
//
// Supported pairs are:
//   - Rect and Rect ([Rect.Overlaps])
//   - Circle and Circle ([Circle.Overlaps])
//   - Circle and Line ([Circle.IntersectsLine])
//   - Circle and Rect ([Circle.IntersectsRect])
//   - Line and Line ([Line.Intersection])
//   - Point and any [ClosedShape] (its Contains method)
//
// Any other pair returns an error wrapping [ErrUnsupportedPair].
func Collide(a, b any) (bool, error) {
	if ok, handled := collide(a, b); handled {
		return ok, nil
	}
	if ok, handled := collide(b, a); handled {
		return ok, nil
	}
	return false, fmt.Errorf("%T and %T: %w", a, b, ErrUnsupportedPair)
}

func collide(a, b any) (ok, handled bool) {
	switch a := a.(type) {
	case Rect:
		if b, isRect := b.(Rect); isRect {
			return a.Overlaps(b), true
		}
	case Circle:
		switch b := b.(type) {
		case Circle:
			return a.Overlaps(b), true
		case Line:
			return a.IntersectsLine(b), true
		case Rect:
			return a.IntersectsRect(b), true
		}
	case Line:
		if b, isLine := b.(Line); isLine {
			_, ok := a.Intersection(b)
			return ok, true
		}
	case Point:
		if b, isClosed := b.(ClosedShape); isClosed {
			return b.Contains(a), true
		}
	}
	return false, false
}
