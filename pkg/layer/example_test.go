package layer_test

import (
	"fmt"
	"time"

	"github.com/go-sheen/sheen/pkg/animation"
	"github.com/go-sheen/sheen/pkg/geometry"
	"github.com/go-sheen/sheen/pkg/graphics"
	"github.com/go-sheen/sheen/pkg/layer"
)

// This example animates the gradient angle and reads the interpolated
// direction each frame.
func ExampleGradientLayer() {
	g := layer.NewGradientLayer()
	g.SetStops([]layer.Stop{
		{Position: 0, Color: graphics.ColorRed},
		{Position: 1, Color: graphics.ColorBlue},
	})

	// Report the interpolated angle on every stepped frame.
	g.OnAngleFrame(func(deg float64) {
		_ = deg
	})

	// Inside a transaction the angle animates; the visible direction sweeps
	// through the intermediate angles.
	animation.Animate(3*time.Second, animation.EaseInOut, func() {
		g.SetAngleDegrees(270)
	})

	// In the render loop: advance, then draw from presentation state.
	g.Step()
	dir := g.Direction()
	_ = dir
}

// This example shows the vertical direction produced by a zero angle.
func ExampleGradientLayer_direction() {
	g := layer.NewGradientLayer()
	dir := g.Direction()
	fmt.Printf("start (%.1f, %.1f) end (%.1f, %.1f)\n",
		dir.Start.X, dir.Start.Y, dir.End.X, dir.End.Y)
	// Output:
	// start (0.5, 0.0) end (0.5, 1.0)
}

// This example bridges a text layer's foreground color.
func ExampleTextLayer() {
	t := layer.NewTextLayer()
	t.SetText("sheen")
	t.SetForegroundColor(graphics.ColorRed)

	// The foreground color has no native animation support; the bridge
	// borrows the background color's implicit timing.
	animation.Animate(300*time.Millisecond, animation.EaseOut, func() {
		t.SetForegroundColor(graphics.ColorBlue)
	})

	if c, ok := t.PresentationForegroundColor(); ok {
		_ = c
	}
}

// This example derives a direction without any layer.
func ExampleGradientLayer_angleGeometry() {
	dir := geometry.DirectionForAngle(135)
	_ = dir
}
