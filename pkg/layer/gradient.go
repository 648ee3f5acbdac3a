package layer

import (
	"github.com/go-sheen/sheen/pkg/geometry"
	"github.com/go-sheen/sheen/pkg/graphics"
)

// Gradient layer property table, built once at type definition time.
var (
	gradientRegistry = NewRegistry()

	// GradientBackgroundColor is natively animatable and serves as the
	// reference property for the bridged angle.
	GradientBackgroundColor = gradientRegistry.Define("backgroundColor", Definition{
		Animatable:    true,
		AffectsRender: true,
	})

	// GradientStartPoint and GradientEndPoint are the gradient direction in
	// unit coordinates. They are derived from the angle: the angle setter
	// writes their model values, and the angle's frame hook writes their
	// presentation values while an animation is in flight.
	GradientStartPoint = gradientRegistry.Define("startPoint", Definition{
		Animatable:    true,
		AffectsRender: true,
		Default:       geometry.DirectionForAngle(0).Start,
	})
	GradientEndPoint = gradientRegistry.Define("endPoint", Definition{
		Animatable:    true,
		AffectsRender: true,
		Default:       geometry.DirectionForAngle(0).End,
	})

	// GradientAngle is the bridged compass angle of the gradient, in
	// degrees. It is the source of truth for the direction.
	GradientAngle = gradientRegistry.Define("angleInDegrees", Definition{
		AffectsRender: true,
		Default:       0.0,
	})
)

// Stop is one color stop of a gradient, positioned in [0, 1] along the
// direction.
type Stop struct {
	Position float64
	Color    graphics.Color
}

// GradientLayer renders a linear gradient whose direction is set as a
// compass angle in degrees and animates implicitly.
//
// The angle is bridged: when it changes inside an open transaction, the
// bridge clones the background color's implicit timing and animates the
// angle scalar. On every frame the interpolated angle is converted with
// [geometry.DirectionForAngle] and written onto the presentation start and
// end points — never the model points — so the visible direction sweeps
// through intermediate angles instead of cutting straight across the unit
// square or jumping to the final value.
type GradientLayer struct {
	*Layer
	angle *Bridge
	stops []Stop
}

// NewGradientLayer creates a gradient layer pointing top-to-bottom (angle 0).
func NewGradientLayer() *GradientLayer {
	l := New(gradientRegistry)
	g := &GradientLayer{Layer: l}
	g.angle = NewBridge(l, GradientAngle, GradientBackgroundColor)
	g.angle.SetFrameFunc(func(v any) {
		deg, ok := v.(float64)
		if !ok {
			return
		}
		dir := geometry.DirectionForAngle(deg)
		l.setPresentation(GradientStartPoint, dir.Start)
		l.setPresentation(GradientEndPoint, dir.End)
	})
	return g
}

// AngleDegrees returns the model angle in degrees.
func (g *GradientLayer) AngleDegrees() float64 {
	deg, _ := g.Value(GradientAngle).(float64)
	return deg
}

// SetAngleDegrees sets the gradient angle. The model start and end points
// follow immediately — the angle is their source of truth, so they never
// animate independently of it. Inside an open transaction the angle itself
// animates and the frame hook keeps the presentation points tracking it.
func (g *GradientLayer) SetAngleDegrees(deg float64) {
	g.Set(GradientAngle, deg)
	dir := geometry.DirectionForAngle(deg)
	g.setModel(GradientStartPoint, dir.Start)
	g.setModel(GradientEndPoint, dir.End)
}

// PresentationAngleDegrees returns the currently rendered angle,
// interpolated mid-animation.
func (g *GradientLayer) PresentationAngleDegrees() float64 {
	deg, _ := g.PresentationValue(GradientAngle).(float64)
	return deg
}

// Direction returns the currently rendered gradient direction.
func (g *GradientLayer) Direction() geometry.Direction {
	start, _ := g.PresentationValue(GradientStartPoint).(geometry.Point)
	end, _ := g.PresentationValue(GradientEndPoint).(geometry.Point)
	return geometry.Direction{Start: start, End: end}
}

// BackgroundColor returns the model background color. The second result is
// false when the color is unset.
func (g *GradientLayer) BackgroundColor() (graphics.Color, bool) {
	c, ok := g.Value(GradientBackgroundColor).(graphics.Color)
	return c, ok
}

// SetBackgroundColor sets the background color, animating inside an open
// transaction.
func (g *GradientLayer) SetBackgroundColor(c graphics.Color) {
	g.Set(GradientBackgroundColor, c)
}

// Stops returns the gradient's color stops.
func (g *GradientLayer) Stops() []Stop {
	return g.stops
}

// SetStops replaces the gradient's color stops. Stops do not animate.
func (g *GradientLayer) SetStops(stops []Stop) {
	g.stops = make([]Stop, len(stops))
	copy(g.stops, stops)
	if len(stops) > 0 {
		g.needsDisplay = true
	}
}

// OnAngleFrame installs a callback invoked once per stepped frame with the
// interpolated angle while it animates, after the presentation direction has
// been updated.
func (g *GradientLayer) OnAngleFrame(fn func(deg float64)) {
	if fn == nil {
		g.angle.SetCallback(nil)
		return
	}
	g.angle.SetCallback(func(v any) {
		if deg, ok := v.(float64); ok {
			fn(deg)
		}
	})
}
