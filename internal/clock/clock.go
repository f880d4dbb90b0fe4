// Package clock abstracts one-shot timers so the sequence controller can be
// driven by wall time in production and by a manual clock in tests.
package clock

import "time"

// Timer is a handle to a scheduled callback.
// Stop reports whether it prevented the callback from running.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is a Clock backed by the time package. Callbacks run on their own goroutine.
type Real struct{}

// New returns the wall clock.
func New() Clock {
	return Real{}
}

// Now returns the current wall time.
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc waits for d to elapse and then calls f in its own goroutine.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
