// Package scene loads collision scenes from YAML and evaluates them against
// the geom package.
//
// A scene names a set of shapes and lists checks between pairs of them. Each
// check may state the result it expects, which makes scene files usable as
// regression fixtures.
package scene

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mysimplegame/geom"
)

var (
	ErrUnknownKind  = errors.New("unknown shape kind")
	ErrUnknownShape = errors.New("unknown shape")
	ErrUnknownOp    = errors.New("unknown check op")
	ErrBadPoints    = errors.New("wrong number of points")
	ErrWrongType    = errors.New("wrong shape type for op")
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Shapes  map[string]ShapeSpec `yaml:"shapes"`
	Checks  []Check              `yaml:"checks"`
	Samples []SampleSpec         `yaml:"samples"`
}

// ShapeSpec describes a single shape. Which fields are used depends on Kind.
//
//	point     x, y
//	line      points (2)
//	rect      x, y, width, height
//	circle    x, y, radius
//	triangle  points (3)
//	polygon   x, y, sides, radius, rotation
//	quad      points (3)
//	cubic     points (4)
type ShapeSpec struct {
	Kind     string      `yaml:"kind"`
	X        float64     `yaml:"x,omitempty"`
	Y        float64     `yaml:"y,omitempty"`
	Width    float64     `yaml:"width,omitempty"`
	Height   float64     `yaml:"height,omitempty"`
	Radius   float64     `yaml:"radius,omitempty"`
	Sides    int         `yaml:"sides,omitempty"`
	Rotation float64     `yaml:"rotation,omitempty"`
	Points   [][]float64 `yaml:"points,omitempty"`
}

// Check tests shapes A and B with Op. Expect, if set, is the result the
// check must produce.
type Check struct {
	Name      string  `yaml:"name"`
	A         string  `yaml:"a"`
	B         string  `yaml:"b"`
	Op        string  `yaml:"op,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Expect    *bool   `yaml:"expect,omitempty"`
}

// SampleSpec evaluates the named curve at Steps+1 evenly spaced parameters.
type SampleSpec struct {
	Curve string `yaml:"curve"`
	Steps int    `yaml:"steps,omitempty"`
}

// LoadYAML loads a scene from YAML reader.
func LoadYAML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Build returns the geom value described by sp.
func (sp ShapeSpec) Build() (any, error) {
	switch sp.Kind {
	case "point":
		return geom.Pt(sp.X, sp.Y), nil
	case "line":
		pts, err := sp.points(2)
		if err != nil {
			return nil, err
		}
		return geom.Line{P0: pts[0], P1: pts[1]}, nil
	case "rect":
		return geom.NewRect(sp.X, sp.Y, sp.Width, sp.Height), nil
	case "circle":
		return geom.Circ(sp.X, sp.Y, sp.Radius), nil
	case "triangle":
		pts, err := sp.points(3)
		if err != nil {
			return nil, err
		}
		return geom.Triangle{P0: pts[0], P1: pts[1], P2: pts[2]}, nil
	case "polygon":
		return geom.Polygon{
			Center:   geom.Pt(sp.X, sp.Y),
			Sides:    sp.Sides,
			Radius:   sp.Radius,
			Rotation: sp.Rotation,
		}, nil
	case "quad":
		pts, err := sp.points(3)
		if err != nil {
			return nil, err
		}
		return geom.QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}, nil
	case "cubic":
		pts, err := sp.points(4)
		if err != nil {
			return nil, err
		}
		return geom.CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}, nil
	default:
		return nil, fmt.Errorf("%q: %w", sp.Kind, ErrUnknownKind)
	}
}

func (sp ShapeSpec) points(n int) ([]geom.Point, error) {
	if len(sp.Points) != n {
		return nil, fmt.Errorf("%s: got %d, want %d: %w", sp.Kind, len(sp.Points), n, ErrBadPoints)
	}
	out := make([]geom.Point, n)
	for i, p := range sp.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%s: point %d has %d coordinates: %w", sp.Kind, i, len(p), ErrBadPoints)
		}
		out[i] = geom.Pt(p[0], p[1])
	}
	return out, nil
}

// Build builds every shape of the scene, keyed by name.
func (s *Scene) Build() (map[string]any, error) {
	shapes := make(map[string]any, len(s.Shapes))
	for name, sp := range s.Shapes {
		v, err := sp.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", name, err)
		}
		shapes[name] = v
	}
	return shapes, nil
}
