// Package layer implements a render-tree node whose properties participate
// in implicit animations, and the bridge that extends that participation to
// custom properties.
//
// A [Layer] holds two views of every property: the model value (the logical
// target, committed by Set) and the presentation value (the time-interpolated
// value currently on screen). While an animation is in flight the two differ;
// renderers read presentation values, application code reads model values.
//
// Property changes made inside an open [animation.Transaction] animate; all
// other changes apply instantly. Custom properties opt into this contract
// through a [Bridge], which borrows the timing of a natively animatable
// reference property.
//
// Layers are main-loop objects: construct, mutate and step them from one
// goroutine.
package layer

import (
	"time"

	"github.com/go-sheen/sheen/pkg/animation"
)

// Layer is a render-tree node with registered properties, implicit
// animation support, and a per-frame step hook.
type Layer struct {
	registry *Registry
	values   map[*Property]any
	bridges  map[*Property]*Bridge

	// active holds in-flight animations keyed by target property.
	active map[*Property]*running

	// overrides holds presentation values written by bridge frame hooks
	// for derived properties. A model Set clears the override.
	overrides map[*Property]any

	needsDisplay bool
}

// running is one in-flight property animation.
type running struct {
	desc  *animation.Descriptor
	from  any
	to    any
	start time.Time
}

// valueAt returns the interpolated value at the given time.
func (r *running) valueAt(now time.Time) any {
	if now.Before(r.start) {
		if r.from != nil {
			return r.from
		}
		return r.to
	}
	elapsed := now.Sub(r.start)
	if r.desc.Duration <= 0 || elapsed >= r.desc.Duration {
		return r.to
	}
	t := float64(elapsed) / float64(r.desc.Duration)
	return animation.LerpValue(r.from, r.to, r.desc.Eased(t))
}

// finished reports whether the animation has reached its target.
func (r *running) finished(now time.Time) bool {
	return !now.Before(r.start.Add(r.desc.Duration))
}

// New creates a layer with the given property registry, seeded with each
// property's default value.
func New(registry *Registry) *Layer {
	l := &Layer{
		registry:  registry,
		values:    make(map[*Property]any),
		bridges:   make(map[*Property]*Bridge),
		active:    make(map[*Property]*running),
		overrides: make(map[*Property]any),
	}
	for _, p := range registry.Properties() {
		if p.def.Default != nil {
			l.values[p] = p.def.Default
		}
	}
	return l
}

// Registry returns the layer type's property table.
func (l *Layer) Registry() *Registry { return l.registry }

// Value returns the model value of a property, or nil when unset. The model
// value is the logical target and changes the moment Set commits, even while
// an animation is still interpolating toward it.
func (l *Layer) Value(p *Property) any {
	return l.values[p]
}

// PresentationValue returns the currently rendered value of a property: the
// clock-interpolated value while an animation is in flight, any derived
// value written by a bridge frame hook, and otherwise the model value.
func (l *Layer) PresentationValue(p *Property) any {
	if r, ok := l.active[p]; ok {
		return r.valueAt(animation.Now())
	}
	if v, ok := l.overrides[p]; ok {
		return v
	}
	return l.values[p]
}

// Action returns the animation descriptor a change to property p would use
// right now, or nil when the change should apply instantly. Bridged
// properties delegate to their bridge; natively animatable properties use
// the open transaction's timing; everything else never animates.
func (l *Layer) Action(p *Property) *animation.Descriptor {
	if b, ok := l.bridges[p]; ok {
		return b.OnPendingChange()
	}
	return l.defaultAction(p)
}

// defaultAction builds the implicit descriptor for a natively animatable
// property from the open transaction. The starting value is the presentation
// value so that a retargeted animation picks up exactly where the screen is.
func (l *Layer) defaultAction(p *Property) *animation.Descriptor {
	if p == nil || !p.Animatable() {
		return nil
	}
	tx := animation.Current()
	if tx == nil {
		return nil
	}
	return &animation.Descriptor{
		Property: p,
		From:     l.PresentationValue(p),
		Delay:    tx.Delay,
		Duration: tx.Duration,
		Curve:    tx.Curve,
	}
}

// Set commits a new model value for a property. When an animation context is
// open (or a bridge supplies a descriptor), the presentation value animates
// from its current interpolated value to v; otherwise the change applies
// instantly.
func (l *Layer) Set(p *Property, v any) {
	desc := l.Action(p)
	l.setModel(p, v)
	if desc == nil {
		return
	}
	if desc.To == nil {
		desc.To = v
	}
	l.active[p] = &running{
		desc:  desc,
		from:  desc.From,
		to:    desc.To,
		start: animation.Now().Add(desc.Delay),
	}
	logger().Debug("property animation started",
		"property", p.PropertyName(),
		"duration", desc.Duration,
		"delay", desc.Delay)
}

// setModel writes the model value directly, cancelling any in-flight
// animation and derived override for the property.
func (l *Layer) setModel(p *Property, v any) {
	l.values[p] = v
	delete(l.active, p)
	delete(l.overrides, p)
	if p.AffectsRender() {
		l.needsDisplay = true
	}
}

// setPresentation writes a derived presentation value without touching the
// model. Bridge frame hooks use it to keep derived geometry tracking an
// animation in real time.
func (l *Layer) setPresentation(p *Property, v any) {
	l.overrides[p] = v
	if p.AffectsRender() {
		l.needsDisplay = true
	}
}

// Step advances every in-flight animation to the current clock time,
// invoking bridge frame hooks with the interpolated values. Call it once per
// frame from the render loop, after the clock has advanced and before the
// frame is drawn. Finished animations are retired after one final hook call
// with their target value.
func (l *Layer) Step() {
	now := animation.Now()
	for p, r := range l.active {
		v := r.valueAt(now)
		if b, ok := l.bridges[p]; ok {
			b.OnFrame(v)
		}
		if p.AffectsRender() {
			l.needsDisplay = true
		}
		if r.finished(now) {
			delete(l.active, p)
			logger().Debug("property animation finished", "property", p.PropertyName())
		}
	}
}

// Animating reports whether an animation is in flight for the property.
func (l *Layer) Animating(p *Property) bool {
	_, ok := l.active[p]
	return ok
}

// NeedsDisplay reports whether a render-affecting property changed since the
// flag was last cleared.
func (l *Layer) NeedsDisplay() bool { return l.needsDisplay }

// ClearNeedsDisplay lowers the needs-display flag, typically right after a
// frame has been drawn.
func (l *Layer) ClearNeedsDisplay() { l.needsDisplay = false }

// Snapshot returns a passive copy of the layer whose model values are the
// source's current presentation values. Renderers use snapshots to draw a
// consistent mid-animation state; snapshots carry no bridges and no
// animations.
func (l *Layer) Snapshot() *Layer {
	s := New(l.registry)
	for _, p := range l.registry.Properties() {
		if v := l.PresentationValue(p); v != nil {
			s.values[p] = v
		}
	}
	return s
}
