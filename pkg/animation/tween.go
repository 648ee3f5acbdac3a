package animation

import (
	"github.com/go-sheen/sheen/pkg/geometry"
	"github.com/go-sheen/sheen/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Use the helper constructors ([TweenFloat64], [TweenColor], [TweenPoint])
// for common types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor linearly interpolates between two Color values per channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aR, aG, aB, aA := a.RGBA8Components()
	bR, bG, bB, bA := b.RGBA8Components()

	return graphics.RGBA8(
		uint8(LerpFloat64(float64(aR), float64(bR), t)),
		uint8(LerpFloat64(float64(aG), float64(bG), t)),
		uint8(LerpFloat64(float64(aB), float64(bB), t)),
		uint8(LerpFloat64(float64(aA), float64(bA), t)),
	)
}

// LerpPoint linearly interpolates between two unit-square points.
func LerpPoint(a, b geometry.Point, t float64) geometry.Point {
	return geometry.LerpPoint(a, b, t)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}

// TweenPoint creates a tween for Point values.
func TweenPoint(begin, end geometry.Point) *Tween[geometry.Point] {
	return &Tween[geometry.Point]{
		Begin: begin,
		End:   end,
		Lerp:  LerpPoint,
	}
}

// LerpValue interpolates between two dynamically typed property values.
// It supports the value types layers animate: float64, graphics.Color and
// geometry.Point. A nil start, or a type mismatch, snaps to the end value —
// the fail-open behavior shared by the whole implicit animation path.
func LerpValue(a, b any, t float64) any {
	switch end := b.(type) {
	case float64:
		if start, ok := a.(float64); ok {
			return LerpFloat64(start, end, t)
		}
	case graphics.Color:
		if start, ok := a.(graphics.Color); ok {
			return LerpColor(start, end, t)
		}
	case geometry.Point:
		if start, ok := a.(geometry.Point); ok {
			return LerpPoint(start, end, t)
		}
	}
	return b
}
