package playback

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer.
	Stop() bool
}

// Scheduler arms one-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// WallClock schedules callbacks with time.AfterFunc.
var WallClock Scheduler = wallClock{}

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 50
)

// ClampSpeed maps v into [MinSpeed, MaxSpeed].
func ClampSpeed(v int) int {
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}

// Interval is the auto-advance period for speed: 1090ms at speed 1 down to
// 100ms at speed 100, linear in between.
func Interval(speed int) time.Duration {
	return time.Duration(1100-ClampSpeed(speed)*10) * time.Millisecond
}
