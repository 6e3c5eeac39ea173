package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(3, 4)
	if d := Distance(a, b); d != 5 {
		t.Fatalf("Distance(0,0)-(3,4) = %v, want 5", d)
	}
}

// TestDistanceSymmetry checks distance(a,b) == distance(b,a) and
// distance(a,a) == 0 over a spread of coordinates.
func TestDistanceSymmetry(t *testing.T) {
	coords := []float64{-1e6, -7.25, -1, 0, 0.1, 1, 3.5, 42, 1e9}
	for _, ax := range coords {
		for _, ay := range coords {
			a := NewPoint(ax, ay)
			if d := Distance(a, a); d != 0 {
				t.Fatalf("Distance(a,a) = %v for a=%v, want 0", d, a)
			}
			for _, bx := range coords {
				b := NewSample(bx, -ay, 1)
				ab, ba := Distance(a, b), Distance(b, a)
				if ab != ba {
					t.Fatalf("Distance not symmetric for %v,%v: %v vs %v", a, b, ab, ba)
				}
				if ab < 0 {
					t.Fatalf("Distance(%v,%v) = %v, want non-negative", a, b, ab)
				}
			}
		}
	}
}

func TestDistances(t *testing.T) {
	q := NewPoint(0, 0)
	refs := []Point{NewSample(3, 4, 1), NewSample(0, 0, 2), NewSample(-6, 8, 3)}
	got := Distances(q, refs)
	want := []float64{5, 0, 10}
	if len(got) != len(want) {
		t.Fatalf("Distances returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Distances[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if out := Distances(q, nil); len(out) != 0 {
		t.Fatalf("Distances(nil) len = %d, want 0", len(out))
	}
}

func TestNearest(t *testing.T) {
	refs := []Point{NewSample(2, 0, 1), NewSample(0, 1, 2), NewSample(-1, 0, 3)}
	idx, d := Nearest(NewPoint(0, 0), refs)
	if idx != 1 || d != 1 {
		t.Fatalf("Nearest = (%d, %v), want (1, 1)", idx, d)
	}
	if idx, d := Nearest(NewPoint(0, 0), nil); idx != -1 || !math.IsInf(d, 1) {
		t.Fatalf("Nearest(empty) = (%d, %v), want (-1, +Inf)", idx, d)
	}
}

func TestBounds(t *testing.T) {
	refs := []Point{NewSample(2, -1, 1), NewSample(-3, 5, 2), NewSample(0, 0, 3)}
	min, max := Bounds(refs)
	if min.X != -3 || min.Y != -1 || max.X != 2 || max.Y != 5 {
		t.Fatalf("Bounds = %v, %v; want (-3,-1), (2,5)", min, max)
	}
	if min.HasValue() || max.HasValue() {
		t.Fatalf("Bounds corners should not carry values")
	}
}

func TestPointValue(t *testing.T) {
	p := NewPoint(1, 2)
	if _, ok := p.Value(); ok {
		t.Fatalf("NewPoint should not carry a value")
	}
	s := NewSample(1, 2, 7.5)
	if v, ok := s.Value(); !ok || v != 7.5 {
		t.Fatalf("NewSample.Value() = %v, %v; want 7.5, true", v, ok)
	}
	if s.Location().HasValue() {
		t.Fatalf("Location should clear the value")
	}
}

func TestNearestOverflow(t *testing.T) {
	q := NewPoint(1.7e308, 0)
	refs := []Point{NewPoint(-1.7e308, 0), NewPoint(-1.6e308, 0), NewPoint(-1.65e308, 0)}
	i, d := Nearest(q, refs)
	if i != 1 {
		t.Fatalf("Nearest index = %d, want 1", i)
	}
	if !math.IsInf(d, 1) {
		t.Fatalf("Nearest distance = %v, want +Inf", d)
	}
	if s := ScaledDistance(q, refs[1]); math.IsInf(s, 0) || math.Abs(s-1.65e308) > 1e294 {
		t.Fatalf("ScaledDistance = %v, want 1.65e308", s)
	}
}
