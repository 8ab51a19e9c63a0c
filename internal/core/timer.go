package core

import "time"

// IntervalTimer gates simulation ticks on wall-clock time. The interval can be
// adjusted at runtime within [Min, Max].
type IntervalTimer struct {
	interval time.Duration
	min, max time.Duration
	last     time.Time
}

// NewIntervalTimer constructs a timer with the given interval and bounds.
func NewIntervalTimer(interval, min, max time.Duration) *IntervalTimer {
	if min <= 0 {
		min = time.Millisecond
	}
	if max < min {
		max = min
	}
	t := &IntervalTimer{min: min, max: max}
	t.SetInterval(interval)
	return t
}

// Interval returns the current tick interval.
func (t *IntervalTimer) Interval() time.Duration { return t.interval }

// Bounds returns the allowed interval range.
func (t *IntervalTimer) Bounds() (time.Duration, time.Duration) { return t.min, t.max }

// SetInterval changes the tick interval, clamped to the timer bounds.
func (t *IntervalTimer) SetInterval(d time.Duration) time.Duration {
	t.interval = min(max(d, t.min), t.max)
	return t.interval
}

// Adjust shifts the interval by delta, clamped to the timer bounds.
func (t *IntervalTimer) Adjust(delta time.Duration) time.Duration {
	return t.SetInterval(t.interval + delta)
}

// Restart begins a new interval at now.
func (t *IntervalTimer) Restart(now time.Time) { t.last = now }

// Ready reports whether a full interval has elapsed since the last tick and,
// if so, starts the next interval at now.
func (t *IntervalTimer) Ready(now time.Time) bool {
	if t.last.IsZero() {
		t.last = now
		return false
	}
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
