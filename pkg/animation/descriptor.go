// Package animation provides the timing primitives for implicit layer
// animations: easing curves, a pluggable clock, ambient transactions, and
// the descriptor that carries one property transition.
//
// # Implicit animations
//
// A transaction is an ambient animation context. While one is open, layer
// property changes animate instead of snapping:
//
//	animation.Animate(300*time.Millisecond, animation.EaseInOut, func() {
//	    gradient.SetAngleDegrees(270)
//	})
//
// The layer package consults [Current] when a property changes and builds a
// [Descriptor] from the open transaction. Without a transaction the change
// applies instantly, which is also the failure mode whenever a descriptor
// cannot be produced.
package animation

import "time"

// PropertyKey identifies an animatable layer property. The layer package
// provides the concrete implementation; the name string exists only for
// logging and external boundaries, never for dispatch.
type PropertyKey interface {
	PropertyName() string
}

// Descriptor describes one property transition: what property moves, from
// where, to where, over how long, and along which curve.
//
// A nil To means "derive the end value from the model value committed after
// this descriptor is returned". A nil From means "start from the current
// model value".
//
// Descriptors are created fresh for every intercepted change and handed to
// the scheduling layer, which owns them from then on. They are never reused.
type Descriptor struct {
	// Property is the transition target.
	Property PropertyKey

	// From is the starting value, or nil to start from the current value.
	From any

	// To is the ending value, or nil to derive it from the value committed
	// immediately after the descriptor is produced.
	To any

	// Delay postpones the start of the transition.
	Delay time.Duration

	// Duration is the length of the transition.
	Duration time.Duration

	// Curve eases the transition. Nil means linear.
	Curve Curve
}

// Clone returns a copy of the descriptor. Retargeting a clone never
// disturbs the original.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

// Eased returns the curve-transformed progress for linear progress t.
func (d *Descriptor) Eased(t float64) float64 {
	if d.Curve == nil {
		return t
	}
	return d.Curve(t)
}
