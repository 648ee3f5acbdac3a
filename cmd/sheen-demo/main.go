// Command sheen-demo renders an animated linear gradient in the terminal.
//
// The gradient direction is a single bridged angle property: every few
// seconds (and on every press of the space bar) the demo retargets the angle
// inside an animation transaction, and the visible direction sweeps over —
// including mid-flight interruptions, which pick up from the currently
// rendered angle.
//
// Usage:
//
//	sheen-demo [-preset file.yaml] [-v]
//
// Keys: space retargets the angle immediately, q or escape quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-sheen/sheen/pkg/animation"
	"github.com/go-sheen/sheen/pkg/geometry"
	"github.com/go-sheen/sheen/pkg/graphics"
	"github.com/go-sheen/sheen/pkg/layer"
	"github.com/go-sheen/sheen/pkg/preset"
)

const (
	frameInterval  = 33 * time.Millisecond
	retargetPeriod = 4 * time.Second
	angleStep      = 135.0
)

func main() {
	presetPath := flag.String("preset", "", "gradient preset YAML file")
	verbose := flag.Bool("v", false, "log animation lifecycle to stderr")
	flag.Parse()

	if *verbose {
		layer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g := layer.NewGradientLayer()
	duration := 3 * time.Second
	curve := animation.EaseInOut

	if *presetPath != "" {
		p, err := preset.Load(*presetPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		p.Apply(g)
		if d := p.AnimationDuration(); d > 0 {
			duration = d
		}
		curve = p.AnimationCurve()
	} else {
		g.SetStops([]layer.Stop{
			{Position: 0.0, Color: graphics.RGB(0xFF, 0x7F, 0x50)},
			{Position: 0.5, Color: graphics.RGB(0x8A, 0x2B, 0xE2)},
			{Position: 1.0, Color: graphics.RGB(0x19, 0x19, 0x70)},
		})
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	retarget := func() {
		animation.Animate(duration, curve, func() {
			g.SetAngleDegrees(g.AngleDegrees() + angleStep)
		})
	}
	retarget()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()
	nextRetarget := time.NewTicker(retargetPeriod)
	defer nextRetarget.Stop()

	draw(screen, g)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					retarget()
				}
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, g)
			}
		case <-nextRetarget.C:
			retarget()
		case <-frames.C:
			g.Step()
			if g.NeedsDisplay() {
				draw(screen, g)
				g.ClearNeedsDisplay()
			}
		}
	}
}

// draw paints the layer's current presentation state: every cell is shaded
// by projecting it onto the gradient direction.
func draw(screen tcell.Screen, g *layer.GradientLayer) {
	width, height := screen.Size()
	if width == 0 || height == 0 {
		return
	}
	dir := g.Direction()
	stops := g.Stops()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Normalize to the unit square. Terminal cells are roughly
			// twice as tall as wide; the unit-square mapping already
			// absorbs that, since the direction is resolution-independent.
			px := float64(x) / float64(max(width-1, 1))
			py := float64(y) / float64(max(height-1, 1))
			t := project(dir, px, py)
			style := tcell.StyleDefault.Background(cellColor(stops, t))
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
	screen.Show()
}

// project returns the position of (x, y) along the gradient direction,
// clamped to [0, 1].
func project(dir geometry.Direction, x, y float64) float64 {
	dx := dir.End.X - dir.Start.X
	dy := dir.End.Y - dir.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	t := ((x-dir.Start.X)*dx + (y-dir.Start.Y)*dy) / lenSq
	return math.Max(0, math.Min(1, t))
}

// cellColor blends the surrounding stops in Luv space, which avoids the
// muddy midpoints plain RGB interpolation produces.
func cellColor(stops []layer.Stop, t float64) tcell.Color {
	if len(stops) == 0 {
		return tcell.ColorBlack
	}
	if t <= stops[0].Position {
		return toTcell(toColorful(stops[0].Color))
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Position {
			continue
		}
		span := hi.Position - lo.Position
		local := 0.0
		if span > 0 {
			local = (t - lo.Position) / span
		}
		blended := toColorful(lo.Color).BlendLuv(toColorful(hi.Color), local)
		return toTcell(blended)
	}
	return toTcell(toColorful(stops[len(stops)-1].Color))
}

func toColorful(c graphics.Color) colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
