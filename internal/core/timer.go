package core

import "time"

// DefaultTickInterval is used when a FixedStep is built with a non-positive
// interval.
const DefaultTickInterval = 2 * time.Second

// FixedStep gates a periodic update behind an accumulator fed with frame
// deltas, so the update cadence does not depend on the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.step = interval
}

// Interval returns the configured tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Elapsed returns the time accumulated since the last tick fired.
func (f *FixedStep) Elapsed() time.Duration { return f.accumulator }

// Advance adds delta to the accumulator and reports whether a tick is due.
// At most one tick fires per call and the accumulator restarts from zero, so
// a long frame never triggers a burst of catch-up ticks.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// Reset zeroes the accumulator.
func (f *FixedStep) Reset() { f.accumulator = 0 }
