package testing

import (
	"testing"
	"time"
)

func TestFakeClockAdvance(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()
	c.Advance(time.Second)
	if got := c.Now().Sub(start); got != time.Second {
		t.Errorf("advanced by %v, want 1s", got)
	}
}

func TestFakeClockSet(t *testing.T) {
	c := NewFakeClock()
	at := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(at)
	if !c.Now().Equal(at) {
		t.Errorf("Now() = %v, want %v", c.Now(), at)
	}
}

type countingStepper struct {
	steps int
}

func (s *countingStepper) Step() { s.steps++ }

func TestPumpStepsEveryFrame(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()
	s := &countingStepper{}

	Pump(c, 100*time.Millisecond, s)

	if got := c.Now().Sub(start); got != 100*time.Millisecond {
		t.Errorf("clock advanced by %v, want exactly 100ms", got)
	}
	// 6 full 16ms frames plus a final 4ms step.
	if s.steps != 7 {
		t.Errorf("stepped %d times, want 7", s.steps)
	}
}
