package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestToRelative_DividesPerAxis(t *testing.T) {
	got := ToRelative(Point{X: 100, Y: 50}, 400, 200)
	want := Point{X: 0.25, Y: 0.25}
	if !almostEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestToRelative_DegenerateDims(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative width", -5, 100},
		{"both zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToRelative(Point{X: 10, Y: 10}, tc.w, tc.h)
			if got != (Point{}) {
				t.Fatalf("expected zero point for %s, got %v", tc.name, got)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	dims := []struct{ w, h float64 }{{400, 200}, {1, 1}, {1920, 1080}, {13, 777}}
	pts := []Point{{0, 0}, {0.5, 0.5}, {1, 1}, {0.123456, 0.987654}, {0.001, 0.999}}
	for _, d := range dims {
		for _, p := range pts {
			abs := ToAbsolute(p, d.w, d.h)
			back := ToRelative(abs, d.w, d.h)
			if !almostEqual(back, p) {
				t.Fatalf("round trip failed for %v at %gx%g: got %v", p, d.w, d.h, back)
			}
		}
	}
}

func TestNormalizeRect(t *testing.T) {
	tl, br := NormalizeRect(Point{X: 5, Y: 1}, Point{X: 2, Y: 8})
	if tl != (Point{X: 2, Y: 1}) || br != (Point{X: 5, Y: 8}) {
		t.Fatalf("unexpected normalization: tl=%v br=%v", tl, br)
	}
	// Already ordered input stays put.
	tl, br = NormalizeRect(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
	if tl != (Point{X: 1, Y: 1}) || br != (Point{X: 2, Y: 2}) {
		t.Fatalf("ordered input mutated: tl=%v br=%v", tl, br)
	}
}

func TestInPolygon(t *testing.T) {
	tri := []Point{{0, 0}, {10, 0}, {10, 10}}
	if !InPolygon(Point{X: 8, Y: 4}, tri) {
		t.Fatal("expected interior point inside triangle")
	}
	if InPolygon(Point{X: 1, Y: 9}, tri) {
		t.Fatal("expected exterior point outside triangle")
	}
	if InPolygon(Point{X: 5, Y: 5}, tri[:2]) {
		t.Fatal("degenerate polygon should contain nothing")
	}
}

func TestTranslate(t *testing.T) {
	pts := []Point{{1, 1}, {2, 2}}
	got := Translate(pts, Point{X: 3, Y: -1})
	if got[0] != (Point{X: 4, Y: 0}) || got[1] != (Point{X: 5, Y: 1}) {
		t.Fatalf("unexpected translation: %v", got)
	}
	// Source untouched.
	if pts[0] != (Point{X: 1, Y: 1}) {
		t.Fatal("translate mutated input")
	}
}
