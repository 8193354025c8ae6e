package geom

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPolygonContainsCenter(t *testing.T) {
	for sides := 3; sides <= 12; sides++ {
		for _, rot := range []float64{0, 17, 45, 90} {
			p := Polygon{Center: Pt(40, 60), Sides: sides, Radius: 50, Rotation: rot}
			if !p.Contains(p.Center) {
				t.Errorf("%v doesn't contain its center", p)
			}
		}
	}
}

func TestPolygonTooFewSides(t *testing.T) {
	for sides := -1; sides < 3; sides++ {
		p := Polygon{Center: Pt(0, 0), Sides: sides, Radius: 50}
		if p.Contains(p.Center) {
			t.Errorf("polygon with %d sides contains its center", sides)
		}
		if n := len(slices.Collect(p.Vertices())); n != 0 {
			t.Errorf("polygon with %d sides has %d vertices", sides, n)
		}
		if a := p.Area(); a != 0 {
			t.Errorf("polygon with %d sides has area %v", sides, a)
		}
	}
}

func TestPolygonVertices(t *testing.T) {
	const epsilon = 1e-12
	p := Polygon{Center: Pt(10, 10), Sides: 4, Radius: 2}
	got := slices.Collect(p.Vertices())
	want := []Point{Pt(12, 10), Pt(10, 12), Pt(8, 10), Pt(10, 8)}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got), len(want))
	}
	for i := range want {
		assertNear(t, got[i], want[i], epsilon)
	}

	// Rotation is in degrees.
	p.Rotation = 90
	assertNear(t, slices.Collect(p.Vertices())[0], Pt(10, 12), epsilon)

	for sides := 3; sides <= 8; sides++ {
		p := Polygon{Center: Pt(1, 2), Sides: sides, Radius: 5, Rotation: 33}
		if n := len(slices.Collect(p.Vertices())); n != sides {
			t.Errorf("got %d vertices, want %d", n, sides)
		}
		for v := range p.Vertices() {
			if d := v.Distance(p.Center); math.Abs(d-5) > epsilon {
				t.Errorf("vertex %v is %v away from the center", v, d)
			}
		}
	}
}

func TestPolygonContains(t *testing.T) {
	// An axis-aligned square with half-side 1.
	sq := Polygon{Center: Pt(0, 0), Sides: 4, Radius: math.Sqrt2, Rotation: 45}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(0.9, 0.9), true},
		{Pt(-0.9, 0.9), true},
		{Pt(0.5, -0.9), true},
		{Pt(1.1, 0), false},
		{Pt(0, -1.1), false},
		{Pt(1.05, 1.05), false},
	}
	for i, tt := range tests {
		if got := sq.Contains(tt.pt); got != tt.want {
			t.Errorf("test %d: %v: got %t, want %t", i, tt.pt, got, tt.want)
		}
	}

	diff(t, NewRect(-1, -1, 2, 2), sq.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))

	moved := sq.Translate(Vec(100, 0))
	if !moved.Contains(Pt(100.9, 0.9)) || moved.Contains(Pt(0, 0)) {
		t.Error("translated polygon has the wrong inside")
	}
}

func TestPolygonMeasures(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-12
	}

	sq := Polygon{Sides: 4, Radius: 1}
	if a := sq.Area(); !approxEqual(a, 2) {
		t.Errorf("got area %v, want 2", a)
	}
	hex := Polygon{Sides: 6, Radius: 1}
	if p := hex.Perimeter(); !approxEqual(p, 6) {
		t.Errorf("got perimeter %v, want 6", p)
	}

	// Many sides approach a circle.
	many := Polygon{Sides: 1000, Radius: 3}
	if a := many.Area(); math.Abs(a-9*math.Pi) > 1e-3 {
		t.Errorf("got area %v, want about %v", a, 9*math.Pi)
	}
}
