package geom

import (
	"math"
	"testing"
)

func TestTriangleContains(t *testing.T) {
	tri := Triangle{Pt(-1, -1), Pt(1, -1), Pt(0, 1)}
	rev := Triangle{tri.P2, tri.P1, tri.P0}
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"inside", Pt(0, 0), true},
		{"near vertex", Pt(0, 0.9), true},
		{"outside", Pt(5, 5), false},
		{"below base", Pt(0, -1.5), false},
		{"on edge", Pt(0, -1), false},
		{"on vertex", Pt(-1, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Contains(tt.pt); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
			if got := rev.Contains(tt.pt); got != tt.want {
				t.Errorf("reversed winding: got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestTriangleBarycentric(t *testing.T) {
	tri := Triangle{Pt(-1, -1), Pt(1, -1), Pt(0, 1)}
	a, b, c := tri.Barycentric(Pt(0, 0))
	diff(t, []float64{0.25, 0.25, 0.5}, []float64{a, b, c})

	// The weights reproduce the point.
	pt := Pt(0.2, -0.3)
	a, b, c = tri.Barycentric(pt)
	got := Point{
		X: a*tri.P0.X + b*tri.P1.X + c*tri.P2.X,
		Y: a*tri.P0.Y + b*tri.P1.Y + c*tri.P2.Y,
	}
	assertNear(t, got, pt, 1e-12)
}

func TestTriangleDegenerate(t *testing.T) {
	tri := Triangle{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	for _, pt := range []Point{Pt(1, 1), Pt(0.5, 0.5), Pt(5, 0)} {
		if tri.Contains(pt) {
			t.Errorf("degenerate triangle contains %v", pt)
		}
	}
	if a := tri.Area(); a != 0 {
		t.Errorf("got area %v, want 0", a)
	}
}

func TestTriangleMeasures(t *testing.T) {
	tri := Triangle{Pt(-1, -1), Pt(1, -1), Pt(0, 1)}
	if a := tri.SignedArea(); a != 2 {
		t.Errorf("got signed area %v, want 2", a)
	}
	if a := (Triangle{tri.P0, tri.P2, tri.P1}).SignedArea(); a != -2 {
		t.Errorf("got signed area %v, want -2", a)
	}
	if a := tri.Area(); a != 2 {
		t.Errorf("got area %v, want 2", a)
	}
	c := tri.Centroid()
	if math.Abs(c.X) > 1e-15 || math.Abs(c.Y+1.0/3.0) > 1e-15 {
		t.Errorf("got centroid %v", c)
	}
	if !tri.Contains(c) {
		t.Errorf("centroid %v not inside", c)
	}
	diff(t, NewRect(-1, -1, 2, 2), tri.BoundingBox())
	diff(t, Triangle{Pt(0, 0), Pt(2, 0), Pt(1, 2)}, tri.Translate(Vec(1, 1)))
}
