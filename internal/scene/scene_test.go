package scene

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mysimplegame/geom"
)

func loadArena(t *testing.T) *Scene {
	t.Helper()
	f, err := os.Open("testdata/arena.yaml")
	require.NoError(t, err)
	defer f.Close()

	s, err := LoadYAML(f)
	require.NoError(t, err)
	return s
}

func TestLoadYAML(t *testing.T) {
	s := loadArena(t)
	require.Len(t, s.Shapes, 11)
	require.Len(t, s.Checks, 7)
	require.Len(t, s.Samples, 2)

	require.Equal(t, "circle", s.Shapes["ball"].Kind)
	require.Equal(t, 1.0, s.Shapes["ball"].Radius)
	require.Equal(t, OpIntersection, s.Checks[2].Op)
	require.NotNil(t, s.Checks[0].Expect)
	require.False(t, *s.Checks[0].Expect)
}

func TestLoadYAMLInvalid(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("shapes: [1, 2"))
	require.Error(t, err)
}

func TestShapeSpecBuild(t *testing.T) {
	tests := []struct {
		name string
		spec ShapeSpec
		want any
	}{
		{"point", ShapeSpec{Kind: "point", X: 1, Y: 2}, geom.Pt(1, 2)},
		{"line", ShapeSpec{Kind: "line", Points: [][]float64{{0, 0}, {3, 4}}}, geom.Ln(0, 0, 3, 4)},
		{"rect", ShapeSpec{Kind: "rect", X: 1, Y: 2, Width: 3, Height: 4}, geom.NewRect(1, 2, 3, 4)},
		{"circle", ShapeSpec{Kind: "circle", X: 1, Y: 2, Radius: 3}, geom.Circ(1, 2, 3)},
		{
			"triangle",
			ShapeSpec{Kind: "triangle", Points: [][]float64{{0, 0}, {1, 0}, {0, 1}}},
			geom.Triangle{P0: geom.Pt(0, 0), P1: geom.Pt(1, 0), P2: geom.Pt(0, 1)},
		},
		{
			"polygon",
			ShapeSpec{Kind: "polygon", X: 1, Y: 2, Sides: 6, Radius: 5, Rotation: 30},
			geom.Polygon{Center: geom.Pt(1, 2), Sides: 6, Radius: 5, Rotation: 30},
		},
		{
			"quad",
			ShapeSpec{Kind: "quad", Points: [][]float64{{0, 0}, {1, 2}, {2, 0}}},
			geom.QuadBez{P0: geom.Pt(0, 0), P1: geom.Pt(1, 2), P2: geom.Pt(2, 0)},
		},
		{
			"cubic",
			ShapeSpec{Kind: "cubic", Points: [][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}},
			geom.CubicBez{P0: geom.Pt(0, 0), P1: geom.Pt(0, 1), P2: geom.Pt(1, 1), P3: geom.Pt(1, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Build()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestShapeSpecBuildErrors(t *testing.T) {
	_, err := ShapeSpec{Kind: "blob"}.Build()
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = ShapeSpec{Kind: "line", Points: [][]float64{{0, 0}}}.Build()
	require.ErrorIs(t, err, ErrBadPoints)

	_, err = ShapeSpec{Kind: "triangle", Points: [][]float64{{0, 0}, {1}, {2, 2}}}.Build()
	require.ErrorIs(t, err, ErrBadPoints)

	s := &Scene{Shapes: map[string]ShapeSpec{"x": {Kind: "cubic"}}}
	_, err = s.Build()
	require.ErrorIs(t, err, ErrBadPoints)
}

func TestRunArena(t *testing.T) {
	r := Runner{Log: zap.NewNop()}
	rep, err := r.Run(loadArena(t))
	require.NoError(t, err)
	require.Zero(t, rep.Mismatches)
	require.Len(t, rep.Results, 7)

	for _, res := range rep.Results {
		require.False(t, res.Mismatch, res.Name)
	}
	require.Equal(t, "ball misses crate", rep.Results[0].Name)
	require.False(t, rep.Results[0].Hit)
	require.Equal(t, OpOverlap, rep.Results[0].Op)
	require.Equal(t, "(5, 5)", rep.Results[2].Detail)
	require.Equal(t, "Rect[2.5, 2.5, 0.5×0.5]", rep.Results[6].Detail)

	require.Len(t, rep.Samples, 2)
	require.Len(t, rep.Samples[0].Points, 5)
	require.Equal(t, geom.Pt(0, 0), rep.Samples[0].Points[0])
	require.Equal(t, geom.Pt(1, 0), rep.Samples[0].Points[4])
	require.Len(t, rep.Samples[1].Points, DefaultSteps+1)
}

func TestRunMismatch(t *testing.T) {
	yes := true
	s := &Scene{
		Shapes: map[string]ShapeSpec{
			"a": {Kind: "circle", Radius: 1},
			"b": {Kind: "rect", X: 2, Y: 2, Width: 1, Height: 1},
		},
		Checks: []Check{
			{A: "a", B: "b", Expect: &yes},
			{A: "b", B: "a"},
		},
	}
	var r Runner
	rep, err := r.Run(s)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Mismatches)
	require.True(t, rep.Results[0].Mismatch)
	require.Equal(t, "check 0", rep.Results[0].Name)
	// Checks without an expectation never mismatch.
	require.False(t, rep.Results[1].Mismatch)
}

func TestRunSteps(t *testing.T) {
	s := &Scene{
		Shapes:  map[string]ShapeSpec{"l": {Kind: "line", Points: [][]float64{{0, 0}, {1, 0}}}},
		Samples: []SampleSpec{{Curve: "l"}},
	}
	r := Runner{Steps: 3}
	rep, err := r.Run(s)
	require.NoError(t, err)
	require.Len(t, rep.Samples[0].Points, 4)
}

func TestRunErrors(t *testing.T) {
	shapes := map[string]ShapeSpec{
		"pt":   {Kind: "point"},
		"box":  {Kind: "rect", Width: 1, Height: 1},
		"line": {Kind: "line", Points: [][]float64{{0, 0}, {1, 1}}},
	}
	tests := []struct {
		name  string
		scene *Scene
		want  error
	}{
		{"unknown shape", &Scene{Shapes: shapes, Checks: []Check{{A: "pt", B: "nope"}}}, ErrUnknownShape},
		{"unknown op", &Scene{Shapes: shapes, Checks: []Check{{A: "pt", B: "box", Op: "touch"}}}, ErrUnknownOp},
		{"unsupported pair", &Scene{Shapes: shapes, Checks: []Check{{A: "box", B: "line"}}}, geom.ErrUnsupportedPair},
		{"intersection of rects", &Scene{Shapes: shapes, Checks: []Check{{A: "box", B: "box", Op: OpIntersection}}}, ErrWrongType},
		{"near without point", &Scene{Shapes: shapes, Checks: []Check{{A: "line", B: "line", Op: OpNear}}}, ErrWrongType},
		{"region of lines", &Scene{Shapes: shapes, Checks: []Check{{A: "line", B: "box", Op: OpRegion}}}, ErrWrongType},
		{"sample unknown", &Scene{Shapes: shapes, Samples: []SampleSpec{{Curve: "nope"}}}, ErrUnknownShape},
		{"sample non-curve", &Scene{Shapes: shapes, Samples: []SampleSpec{{Curve: "box"}}}, ErrWrongType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Runner
			_, err := r.Run(tt.scene)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
