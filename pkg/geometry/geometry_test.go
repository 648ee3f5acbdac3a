package geometry

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func pointsClose(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func directionsClose(a, b Direction, tol float64) bool {
	return pointsClose(a.Start, b.Start, tol) && pointsClose(a.End, b.End, tol)
}

// expectedDirection recomputes the closed-form expression directly, so the
// test is coupled to the formula rather than to rounded magic constants.
func expectedDirection(degrees float64) Direction {
	x := degrees / 360
	sq := func(phase float64) float64 {
		s := math.Sin(2 * math.Pi * ((x + phase) / 2))
		return s * s
	}
	return Direction{
		Start: Point{X: sq(0.75), Y: sq(0)},
		End:   Point{X: sq(0.25), Y: sq(0.50)},
	}
}

func TestDirectionForAngle_ClosedForm(t *testing.T) {
	for _, degrees := range []float64{0, 45, 90, 135, 180, 270, 315, 360, -90, 12.5} {
		got := DirectionForAngle(degrees)
		want := expectedDirection(degrees)
		if !directionsClose(got, want, tolerance) {
			t.Errorf("DirectionForAngle(%v) = %+v, want %+v", degrees, got, want)
		}
	}
}

func TestDirectionForAngle_ZeroIsVertical(t *testing.T) {
	d := DirectionForAngle(0)
	if math.Abs(d.Start.X-d.End.X) > tolerance {
		t.Errorf("expected vertical direction at 0 degrees, got start.X=%v end.X=%v", d.Start.X, d.End.X)
	}
	if d.End.Y <= d.Start.Y {
		t.Errorf("expected top-to-bottom direction at 0 degrees, got start.Y=%v end.Y=%v", d.Start.Y, d.End.Y)
	}
}

func TestDirectionForAngle_Periodic(t *testing.T) {
	for _, degrees := range []float64{0, 17, 45, 135, 359.5, -30} {
		base := DirectionForAngle(degrees)
		for _, k := range []float64{1, 2, -1, -3} {
			shifted := DirectionForAngle(degrees + 360*k)
			if !directionsClose(base, shifted, 1e-7) {
				t.Errorf("DirectionForAngle(%v) != DirectionForAngle(%v): %+v vs %+v",
					degrees, degrees+360*k, base, shifted)
			}
		}
	}
}

func TestDirectionForAngle_InUnitSquare(t *testing.T) {
	for degrees := -720.0; degrees <= 720; degrees += 7.3 {
		d := DirectionForAngle(degrees)
		for _, v := range []float64{d.Start.X, d.Start.Y, d.End.X, d.End.Y} {
			if v < 0 || v > 1 {
				t.Fatalf("coordinate %v out of unit range at %v degrees", v, degrees)
			}
		}
	}
}

func TestDirectionForAngle_Continuous(t *testing.T) {
	// Small angle steps must produce small endpoint movements.
	prev := DirectionForAngle(0)
	for degrees := 0.25; degrees <= 360; degrees += 0.25 {
		cur := DirectionForAngle(degrees)
		if !directionsClose(prev, cur, 0.02) {
			t.Fatalf("discontinuity near %v degrees: %+v vs %+v", degrees, prev, cur)
		}
		prev = cur
	}
}

func TestLerpPoint(t *testing.T) {
	a := Point{X: 0, Y: 1}
	b := Point{X: 1, Y: 0}
	mid := LerpPoint(a, b, 0.5)
	if !pointsClose(mid, Point{X: 0.5, Y: 0.5}, tolerance) {
		t.Errorf("LerpPoint midpoint = %+v", mid)
	}
	if !pointsClose(LerpPoint(a, b, 0), a, tolerance) {
		t.Error("LerpPoint at t=0 should return the first point")
	}
	if !pointsClose(LerpPoint(a, b, 1), b, tolerance) {
		t.Error("LerpPoint at t=1 should return the second point")
	}
}
