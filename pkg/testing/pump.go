package testing

import "time"

// frameInterval approximates a 60 Hz display.
const frameInterval = 16 * time.Millisecond

// Stepper is anything with a per-frame step hook, typically a *layer.Layer.
type Stepper interface {
	Step()
}

// Pump advances the clock by total in frame-sized increments, stepping every
// layer after each advance. The last step lands exactly on total, so a test
// that pumps half an animation's duration samples precisely its midpoint.
func Pump(clock *FakeClock, total time.Duration, layers ...Stepper) {
	for total > 0 {
		step := frameInterval
		if step > total {
			step = total
		}
		clock.Advance(step)
		total -= step
		for _, l := range layers {
			l.Step()
		}
	}
}
