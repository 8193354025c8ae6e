package scene

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/mysimplegame/geom"
)

const (
	OpOverlap      = "overlap"
	OpIntersection = "intersection"
	OpNear         = "near"
	OpRegion       = "region"
)

// DefaultSteps is used for samples that don't specify a step count.
const DefaultSteps = 16

// Result is the outcome of one check.
type Result struct {
	Name string
	Op   string
	Hit  bool
	// Detail is the intersection point or region, if the op produces one.
	Detail   string
	Mismatch bool
}

// SampleResult holds the points of one sampled curve.
type SampleResult struct {
	Curve  string
	Points []geom.Point
}

type Report struct {
	Results    []Result
	Samples    []SampleResult
	Mismatches int
}

// Runner evaluates scenes. The zero value is ready to use and logs nothing.
type Runner struct {
	Log *zap.Logger
	// Steps overrides DefaultSteps for samples without a step count.
	Steps int
}

func (r *Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// Run builds the scene's shapes and evaluates every check and sample in
// order. Checks whose result differs from their expectation are counted as
// mismatches; they are not errors. Errors are returned for scenes that can't
// be evaluated, such as references to unknown shapes.
func (r *Runner) Run(s *Scene) (Report, error) {
	log := r.logger()
	shapes, err := s.Build()
	if err != nil {
		return Report{}, err
	}
	log.Debug("built scene", zap.Int("shapes", len(shapes)), zap.Int("checks", len(s.Checks)))

	var rep Report
	for i, c := range s.Checks {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("check %d", i)
		}
		res, err := r.check(shapes, c)
		if err != nil {
			return rep, fmt.Errorf("%s: %w", name, err)
		}
		res.Name = name
		if c.Expect != nil && *c.Expect != res.Hit {
			res.Mismatch = true
			rep.Mismatches++
		}
		rep.Results = append(rep.Results, res)

		fields := []zap.Field{
			zap.String("check", name),
			zap.String("op", res.Op),
			zap.Bool("hit", res.Hit),
		}
		if res.Detail != "" {
			fields = append(fields, zap.String("detail", res.Detail))
		}
		if res.Mismatch {
			log.Warn("unexpected result", append(fields, zap.Bool("expect", *c.Expect))...)
		} else {
			log.Info("check", fields...)
		}
	}

	for _, sp := range s.Samples {
		v, ok := shapes[sp.Curve]
		if !ok {
			return rep, fmt.Errorf("sample %s: %w", sp.Curve, ErrUnknownShape)
		}
		curve, ok := v.(geom.ParametricCurve)
		if !ok {
			return rep, fmt.Errorf("sample %s: %T is not a curve: %w", sp.Curve, v, ErrWrongType)
		}
		steps := sp.Steps
		if steps <= 0 {
			steps = r.steps()
		}
		pts := slices.Collect(geom.Sample(curve, steps))
		rep.Samples = append(rep.Samples, SampleResult{Curve: sp.Curve, Points: pts})
		log.Debug("sampled curve",
			zap.String("curve", sp.Curve),
			zap.Int("points", len(pts)),
			zap.Stringer("start", curve.Start()),
			zap.Stringer("end", curve.End()))
	}
	return rep, nil
}

func (r *Runner) steps() int {
	if r.Steps > 0 {
		return r.Steps
	}
	return DefaultSteps
}

func (r *Runner) check(shapes map[string]any, c Check) (Result, error) {
	a, ok := shapes[c.A]
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", c.A, ErrUnknownShape)
	}
	b, ok := shapes[c.B]
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", c.B, ErrUnknownShape)
	}

	op := c.Op
	if op == "" {
		op = OpOverlap
	}
	res := Result{Op: op}
	switch op {
	case OpOverlap:
		hit, err := geom.Collide(a, b)
		if err != nil {
			return Result{}, err
		}
		res.Hit = hit
	case OpIntersection:
		la, aok := a.(geom.Line)
		lb, bok := b.(geom.Line)
		if !aok || !bok {
			return Result{}, fmt.Errorf("%s needs two lines, got %T and %T: %w", op, a, b, ErrWrongType)
		}
		if pt, ok := la.Intersection(lb); ok {
			res.Hit = true
			res.Detail = pt.String()
		}
	case OpNear:
		pt, aok := a.(geom.Point)
		l, bok := b.(geom.Line)
		if !aok || !bok {
			return Result{}, fmt.Errorf("%s needs a point and a line, got %T and %T: %w", op, a, b, ErrWrongType)
		}
		res.Hit = l.Near(pt, c.Threshold)
	case OpRegion:
		ra, aok := a.(geom.Rect)
		rb, bok := b.(geom.Rect)
		if !aok || !bok {
			return Result{}, fmt.Errorf("%s needs two rects, got %T and %T: %w", op, a, b, ErrWrongType)
		}
		if region, ok := ra.Intersect(rb); ok {
			res.Hit = true
			res.Detail = region.String()
		}
	default:
		return Result{}, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}
	return res, nil
}
