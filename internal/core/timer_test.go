package core

import (
	"testing"
	"time"
)

func TestIntervalTimerGatesOnElapsedTime(t *testing.T) {
	timer := NewIntervalTimer(100*time.Millisecond, 10*time.Millisecond, time.Second)
	start := time.Unix(1000, 0)
	timer.Restart(start)

	if timer.Ready(start.Add(50 * time.Millisecond)) {
		t.Fatal("timer fired before the interval elapsed")
	}
	if !timer.Ready(start.Add(100 * time.Millisecond)) {
		t.Fatal("timer did not fire after the interval elapsed")
	}
	if timer.Ready(start.Add(150 * time.Millisecond)) {
		t.Fatal("timer fired twice within one interval")
	}
	if !timer.Ready(start.Add(200 * time.Millisecond)) {
		t.Fatal("timer did not fire on the next interval")
	}
}

func TestIntervalTimerClampsAdjustments(t *testing.T) {
	timer := NewIntervalTimer(100*time.Millisecond, 10*time.Millisecond, time.Second)

	for i := 0; i < 20; i++ {
		timer.Adjust(-10 * time.Millisecond)
	}
	if got := timer.Interval(); got != 10*time.Millisecond {
		t.Fatalf("interval = %v, want lower bound", got)
	}

	if got := timer.Adjust(5 * time.Second); got != time.Second {
		t.Fatalf("interval = %v, want upper bound", got)
	}
}
