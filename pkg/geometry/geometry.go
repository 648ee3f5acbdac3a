// Package geometry derives linear-gradient directions from compass angles.
//
// Angles are expressed in degrees, interpreted as a compass bearing from the
// top of the unit square: 0 points the gradient top-to-bottom, and increasing
// the angle rotates the direction clockwise. The mapping is periodic with
// period 360 and continuous for all real inputs, so callers never need to
// normalize before converting.
package geometry

import "math"

// Point is a coordinate in the unit square, with each component in [0, 1].
// Gradient endpoints are expressed in this normalized space and scaled to
// pixel coordinates by whatever surface renders them.
type Point struct {
	X float64
	Y float64
}

// Direction is the start and end point of a linear gradient in unit
// coordinates. It is a derived value: the angle is the source of truth, and
// a Direction is recomputed from it on demand rather than stored.
type Direction struct {
	Start Point
	End   Point
}

// DirectionForAngle converts an angle in degrees to a gradient direction.
//
// The four coordinates are phase-shifted squared-sine samples of the
// normalized angle, which traces both endpoints around the unit square as
// the angle sweeps a full turn:
//
//	x = degrees / 360
//	Start = (sin²(2π·(x+0.75)/2), sin²(2π·x/2))
//	End   = (sin²(2π·(x+0.25)/2), sin²(2π·(x+0.50)/2))
//
// At 0 degrees this yields (0.5, 0) → (0.5, 1), a vertical top-to-bottom
// direction.
func DirectionForAngle(degrees float64) Direction {
	x := degrees / 360
	return Direction{
		Start: Point{X: phaseSample(x, 0.75), Y: phaseSample(x, 0)},
		End:   Point{X: phaseSample(x, 0.25), Y: phaseSample(x, 0.50)},
	}
}

// phaseSample evaluates sin²(2π·(x+phase)/2).
func phaseSample(x, phase float64) float64 {
	s := math.Sin(2 * math.Pi * ((x + phase) / 2))
	return s * s
}

// LerpPoint linearly interpolates between two points.
func LerpPoint(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
