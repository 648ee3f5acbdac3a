package animation

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Linear(v); got != v {
			t.Errorf("Linear(%v) = %v", v, got)
		}
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"Ease":      Ease,
		"EaseIn":    EaseIn,
		"EaseOut":   EaseOut,
		"EaseInOut": EaseInOut,
		"custom":    CubicBezier(0.22, 1.0, 0.36, 1.0),
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := curve(-0.5); got != 0 {
			t.Errorf("%s(-0.5) = %v, want 0 (clamped)", name, got)
		}
		if got := curve(1.5); got != 1 {
			t.Errorf("%s(1.5) = %v, want 1 (clamped)", name, got)
		}
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	prev := curve(0)
	for i := 1; i <= 100; i++ {
		v := curve(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("curve not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestCubicBezierMatchesLinearControlPoints(t *testing.T) {
	// cubic-bezier(1/3, 1/3, 2/3, 2/3) is the identity curve.
	curve := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, v := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		if got := curve(v); math.Abs(got-v) > 1e-5 {
			t.Errorf("identity bezier at %v = %v", v, got)
		}
	}
}
