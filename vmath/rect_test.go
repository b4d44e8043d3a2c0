package vmath

import (
	"math"
	"testing"
)

func TestCollide_Basic(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint", Rect{0, 10, 0, 10}, Rect{20, 30, 20, 30}, false},
		{"identical", Rect{0, 10, 0, 10}, Rect{0, 10, 0, 10}, true},
		{"partial", Rect{0, 10, 0, 10}, Rect{5, 15, 5, 15}, true},
		{"contained", Rect{0, 100, 0, 100}, Rect{40, 60, 40, 60}, true},
		{"touching edge", Rect{0, 10, 0, 10}, Rect{10, 20, 0, 10}, false},
		{"touching corner", Rect{0, 10, 0, 10}, Rect{10, 20, 10, 20}, false},
		{"x overlap only", Rect{0, 10, 0, 10}, Rect{5, 15, 20, 30}, false},
		{"y overlap only", Rect{0, 10, 0, 10}, Rect{20, 30, 5, 15}, false},
		{"zero area inside", Rect{0, 10, 0, 10}, Rect{5, 5, 5, 5}, false},
		{"zero width", Rect{0, 10, 0, 10}, Rect{5, 5, 0, 10}, false},
		{"zero area identical", Rect{5, 5, 5, 5}, Rect{5, 5, 5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(tt.a, tt.b); got != tt.want {
				t.Errorf("Collide(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestCollide_Symmetric sweeps a grid of rectangles and checks argument order never matters
func TestCollide_Symmetric(t *testing.T) {
	var rects []Rect
	for x := 0.0; x <= 30; x += 7.5 {
		for y := 0.0; y <= 30; y += 7.5 {
			for _, size := range []float64{0, 5, 12} {
				rects = append(rects, RectFromBox(x, y, size, size+3))
			}
		}
	}

	for _, a := range rects {
		for _, b := range rects {
			if Collide(a, b) != Collide(b, a) {
				t.Fatalf("asymmetric result for %v / %v", a, b)
			}
		}
	}
}

func TestRectFromBox(t *testing.T) {
	r := RectFromBox(10, 20, 30, 40)
	if r.Left != 10 || r.Right != 40 || r.Top != 20 || r.Bottom != 60 {
		t.Errorf("unexpected rect %+v", r)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("unexpected size %vx%v", r.Width(), r.Height())
	}
}

func TestCornerDistance(t *testing.T) {
	a := RectFromBox(0, 0, 10, 10)
	b := RectFromBox(30, 40, 5, 5)
	if d := CornerDistance(a, b); math.Abs(d-50) > 1e-9 {
		t.Errorf("expected 50, got %v", d)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("clamp bounds wrong")
	}
	if Clamp(5, 0, -10) != 0 {
		t.Error("inverted bounds should collapse to lo")
	}
}
