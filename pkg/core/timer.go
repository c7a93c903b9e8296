package core

import (
	"fmt"
	"time"
)

// Speed is a simulation tick period offered to the user as a preset.
type Speed time.Duration

const (
	SpeedSlow   = Speed(200 * time.Millisecond)
	SpeedNormal = Speed(100 * time.Millisecond)
	SpeedFast   = Speed(50 * time.Millisecond)
)

// Speeds lists the presets in cycling order.
func Speeds() []Speed { return []Speed{SpeedSlow, SpeedNormal, SpeedFast} }

// Next returns the preset after s, wrapping from fast back to slow. Unknown
// values restart the cycle.
func (s Speed) Next() Speed {
	switch s {
	case SpeedSlow:
		return SpeedNormal
	case SpeedNormal:
		return SpeedFast
	default:
		return SpeedSlow
	}
}

// Interval returns the tick period.
func (s Speed) Interval() time.Duration { return time.Duration(s) }

func (s Speed) String() string { return time.Duration(s).String() }

// ParseSpeed accepts a preset name ("slow", "normal", "fast") or a duration
// matching one of the presets ("200ms").
func ParseSpeed(v string) (Speed, error) {
	switch v {
	case "slow":
		return SpeedSlow, nil
	case "normal":
		return SpeedNormal, nil
	case "fast":
		return SpeedFast, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse speed %q: %w", v, err)
	}
	for _, s := range Speeds() {
		if s.Interval() == d {
			return s, nil
		}
	}
	return 0, fmt.Errorf("speed %s is not a preset", d)
}

// FixedStep helps run simulation updates at a steady period.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller ticking every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = SpeedSlow.Interval()
	}
	f.step = interval
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Interval reports the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pause forgets elapsed time so that resuming does not release a burst of
// ticks.
func (f *FixedStep) Pause() {
	f.last = time.Time{}
	f.accumulator = 0
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading. At most one tick
// is released per call and the backlog never exceeds one period, so ticks
// stay strictly sequential even after a stall.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
