package core

import "time"

// FixedStep paces simulation ticks at a steady rate independent of how often
// the front-end loop polls it.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first ShouldStep call always succeeds.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the configured tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is granted per call; a backlog is capped at one extra step so
// a stalled loop does not fast-forward the simulation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator > 2*f.step {
		f.accumulator = 2 * f.step
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
