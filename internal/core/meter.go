package core

import "time"

// Meter measures an event rate over a rolling window.
// It is used to report the effective tick rate and never affects dt.
type Meter struct {
	window time.Duration
	stamps []time.Duration
}

// NewMeter creates a meter with the given window (one second if zero).
func NewMeter(window time.Duration) *Meter {
	if window <= 0 {
		window = time.Second
	}
	return &Meter{window: window}
}

// Mark records an event at now and forgets events older than the window.
func (m *Meter) Mark(now time.Duration) {
	m.stamps = append(m.stamps, now)

	cutoff := now - m.window
	i := 0
	for i < len(m.stamps) && m.stamps[i] <= cutoff {
		i++
	}
	if i > 0 {
		m.stamps = append(m.stamps[:0], m.stamps[i:]...)
	}
}

// Rate returns events per second within the current window.
func (m *Meter) Rate() float64 {
	return float64(len(m.stamps)) / m.window.Seconds()
}
