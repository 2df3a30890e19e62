// Package timing defines the time collaborators shared by all governors:
// a Clock that reports the current time and a Scheduler that runs callbacks
// after a delay. Both can be replaced for deterministic testing.
package timing

import "time"

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timer is the handle returned by a Scheduler. Stop cancels the pending
// callback and reports whether it was still pending. Stopping a timer that
// has already fired or was already stopped is a no-op.
type Timer interface {
	Stop() bool
}

// Scheduler runs a callback once, asynchronously, no sooner than d after
// scheduling. Implementations must treat negative delays as zero.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Timer
}

// SystemScheduler implements Scheduler on top of time.AfterFunc.
type SystemScheduler struct{}

// Schedule arms a one-shot timer that invokes fn after d.
func (SystemScheduler) Schedule(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, fn)
}
