// Package preset loads gradient presets from YAML: a starting angle, an
// animation timing, and a set of color stops. Presets configure a
// [layer.GradientLayer] in one call.
//
// A preset file looks like:
//
//	name: sunset
//	angle: 45
//	duration: 3s
//	curve: ease-in-out
//	stops:
//	  - position: 0.0
//	    color: coral
//	  - position: 1.0
//	    color: "#191970"
package preset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-sheen/sheen/pkg/animation"
	"github.com/go-sheen/sheen/pkg/errors"
	"github.com/go-sheen/sheen/pkg/graphics"
	"github.com/go-sheen/sheen/pkg/layer"
)

// StopConfig is one color stop in a preset file.
type StopConfig struct {
	Position float64 `yaml:"position"`
	Color    string  `yaml:"color"`
}

// Duration decodes Go duration strings ("3s", "250ms") from YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Preset is a parsed gradient preset.
type Preset struct {
	Name     string       `yaml:"name"`
	Angle    float64      `yaml:"angle"`
	Duration Duration     `yaml:"duration"`
	Curve    string       `yaml:"curve,omitempty"`
	Stops    []StopConfig `yaml:"stops"`
}

// curves maps preset curve names to easing curves. The names follow CSS.
var curves = map[string]animation.Curve{
	"":            animation.Linear,
	"linear":      animation.Linear,
	"ease":        animation.Ease,
	"ease-in":     animation.EaseIn,
	"ease-out":    animation.EaseOut,
	"ease-in-out": animation.EaseInOut,
}

// Parse decodes and validates a preset document.
func Parse(data []byte) (*Preset, error) {
	const op = "preset.Parse"

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.E(op, errors.KindParsing, err)
	}
	if err := p.validate(); err != nil {
		return nil, errors.E(op, errors.KindParsing, err)
	}
	return &p, nil
}

// Load reads and parses a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.E("preset.Load", errors.KindConfig, err)
	}
	return Parse(data)
}

func (p *Preset) validate() error {
	if len(p.Stops) < 2 {
		return fmt.Errorf("preset %q needs at least 2 stops, has %d", p.Name, len(p.Stops))
	}
	if _, ok := curves[p.Curve]; !ok {
		return fmt.Errorf("preset %q has unknown curve %q", p.Name, p.Curve)
	}
	if p.Duration < 0 {
		return fmt.Errorf("preset %q has negative duration %v", p.Name, time.Duration(p.Duration))
	}
	for i, s := range p.Stops {
		if s.Position < 0 || s.Position > 1 {
			return fmt.Errorf("preset %q stop %d: position %v outside [0, 1]", p.Name, i, s.Position)
		}
		if _, err := graphics.ParseColor(s.Color); err != nil {
			return fmt.Errorf("preset %q stop %d: %w", p.Name, i, err)
		}
	}
	return nil
}

// AnimationCurve returns the preset's easing curve.
func (p *Preset) AnimationCurve() animation.Curve {
	return curves[p.Curve]
}

// AnimationDuration returns the preset's animation duration.
func (p *Preset) AnimationDuration() time.Duration {
	return time.Duration(p.Duration)
}

// LayerStops converts the preset's stops to layer stops. The preset must
// have passed validation; an unparsable color here falls back to opaque
// black rather than failing.
func (p *Preset) LayerStops() []layer.Stop {
	stops := make([]layer.Stop, 0, len(p.Stops))
	for _, s := range p.Stops {
		c, err := graphics.ParseColor(s.Color)
		if err != nil {
			c = graphics.ColorBlack
		}
		stops = append(stops, layer.Stop{Position: s.Position, Color: c})
	}
	return stops
}

// Apply configures a gradient layer with the preset's stops and angle. The
// angle change participates in any open animation transaction, so applying
// a preset inside [animation.Animate] sweeps the direction over.
func (p *Preset) Apply(g *layer.GradientLayer) {
	g.SetStops(p.LayerStops())
	g.SetAngleDegrees(p.Angle)
}
