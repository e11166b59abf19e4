package engine

import "time"

// Throttle runs a fixed cadence on top of a variable-rate frame signal
// Timestamps are offsets from the frame scheduler's start
type Throttle struct {
	interval time.Duration
	last     time.Duration
	fired    uint64
}

// NewThrottle creates a throttle whose first firing is one interval after zero
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Due reports whether ts is at least one interval past the last firing
// On true the firing is recorded at ts; older timestamps never move it back
func (t *Throttle) Due(ts time.Duration) bool {
	if ts-t.last < t.interval {
		return false
	}
	t.last = ts
	t.fired++
	return true
}

// Last returns the timestamp of the most recent firing
func (t *Throttle) Last() time.Duration {
	return t.last
}

// Fired returns the number of firings so far
func (t *Throttle) Fired() uint64 {
	return t.fired
}

// Interval returns the configured cadence
func (t *Throttle) Interval() time.Duration {
	return t.interval
}
