// Package testing provides deterministic test support for implicit layer
// animations: a controllable clock and a frame pump.
//
// Install the fake clock, open a transaction, change a property, then pump
// frames to sample the animation at exact times:
//
//	clock := sheentest.NewFakeClock()
//	prev := animation.SetClock(clock)
//	defer animation.SetClock(prev)
//
//	animation.Animate(3*time.Second, animation.Linear, func() {
//	    g.SetAngleDegrees(270)
//	})
//	sheentest.Pump(clock, 1500*time.Millisecond, g)
package testing
