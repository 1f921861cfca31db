package core

import "time"

// Stepper is a fixed-timestep accumulator. Wall time is collected from a
// Clock and released as whole steps of a constant size.
type Stepper struct {
	clock    Clock
	step     time.Duration
	maxSteps int

	last    time.Duration
	acc     time.Duration
	started bool
	dropped time.Duration
}

// NewStepper creates a stepper running tickRate steps per second and
// releasing at most maxSteps steps per Advance call.
func NewStepper(clock Clock, tickRate, maxSteps int) *Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Stepper{
		clock:    clock,
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Step returns the fixed step duration.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Dt returns the fixed step in seconds.
func (s *Stepper) Dt() float64 {
	return s.step.Seconds()
}

// Advance collects the time elapsed since the previous call and returns the
// number of whole steps to simulate now. The first call only starts the
// clock. When more than maxSteps are due the surplus is dropped rather
// than carried into later calls.
func (s *Stepper) Advance() int {
	now := s.clock.Now()
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}

	s.acc += now - s.last
	s.last = now

	n := int(s.acc / s.step)
	if n > s.maxSteps {
		s.dropped += s.acc - time.Duration(s.maxSteps)*s.step
		s.acc = 0
		return s.maxSteps
	}
	s.acc -= time.Duration(n) * s.step
	return n
}

// Dropped returns the total time discarded by catch-up limiting.
func (s *Stepper) Dropped() time.Duration {
	return s.dropped
}

// Reset forgets accumulated time. The next Advance restarts the clock.
func (s *Stepper) Reset() {
	s.acc = 0
	s.started = false
}
