package layer

import "github.com/go-sheen/sheen/pkg/animation"

// Bridge makes one custom layer property participate in implicit animations
// by borrowing the timing of a natively animatable reference property.
//
// When the bridged property is about to change, the bridge asks the layer
// what descriptor the reference property would use right now, clones its
// timing verbatim, and retargets the clone at the bridged property with the
// current presentation value as the starting point. If the reference
// property would not animate — no open transaction, or a misconfigured
// reference — the bridge reports nil and the change applies instantly. No
// path through the bridge panics; every failure falls open to the
// non-animated behavior.
//
// A bridge is constructed once per layer instance, references the layer it
// decorates (it never owns it), and lives exactly as long as the layer.
type Bridge struct {
	layer     *Layer
	property  *Property
	reference *Property

	// frame recomputes derived state from the interpolated value on every
	// composited frame. It runs 60-120 times per second during an animation
	// and must stay cheap.
	frame func(v any)

	// callback is the user's per-frame hook, invoked after frame.
	callback func(v any)
}

// NewBridge attaches a bridge for property to the layer, using reference as
// the property whose animation timing is cloned. At most one bridge per
// property; attaching a second replaces the first.
func NewBridge(l *Layer, property, reference *Property) *Bridge {
	b := &Bridge{layer: l, property: property, reference: reference}
	l.bridges[property] = b
	return b
}

// Property returns the bridged property.
func (b *Bridge) Property() *Property { return b.property }

// Reference returns the property whose animation timing the bridge clones.
func (b *Bridge) Reference() *Property { return b.reference }

// SetFrameFunc installs the derived-state hook run on every frame with the
// interpolated value, before the user callback.
func (b *Bridge) SetFrameFunc(fn func(v any)) { b.frame = fn }

// SetCallback installs the user per-frame callback.
func (b *Bridge) SetCallback(fn func(v any)) { b.callback = fn }

// OnPendingChange returns the descriptor a change to the bridged property
// should animate with, or nil when the change should apply instantly.
//
// The starting value is the property's current presentation value, not its
// model value: when an in-flight animation is interrupted and retargeted,
// the new animation starts from where the screen currently is rather than
// from the old logical target. The end value is left nil for the layer to
// fill in from the value committed immediately after this call.
func (b *Bridge) OnPendingChange() *animation.Descriptor {
	ref := b.layer.defaultAction(b.reference)
	if ref == nil {
		return nil
	}
	d := ref.Clone()
	d.Property = b.property
	d.From = b.layer.PresentationValue(b.property)
	d.To = nil
	return d
}

// OnFrame runs the derived-state hook and the user callback with the
// interpolated value for this frame. It is idempotent for a fixed value.
func (b *Bridge) OnFrame(v any) {
	if b.frame != nil {
		b.frame(v)
	}
	if b.callback != nil {
		b.callback(v)
	}
}
