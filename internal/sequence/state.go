package sequence

import (
	"fmt"
	"time"
)

// Default timing: a short settle, then one step per second.
const (
	DefaultSettle = 300 * time.Millisecond
	DefaultTick   = 1000 * time.Millisecond
)

// Timing holds the two load-bearing delays of a run.
type Timing struct {
	// Settle is the pause between tearing down a run and starting the next.
	Settle time.Duration
	// Tick is the interval between step advances.
	Tick time.Duration
}

// DefaultTiming returns the 300ms settle / 1000ms tick timing.
func DefaultTiming() Timing {
	return Timing{Settle: DefaultSettle, Tick: DefaultTick}
}

// RunDuration is the time from Play to reaching StepComplete with no interruptions.
func (t Timing) RunDuration() time.Duration {
	return t.Settle + time.Duration(StepCount-1)*t.Tick
}

// PlaybackState is an immutable snapshot of the controller.
type PlaybackState struct {
	// Playing is true while a run is active. Step only means something while Playing.
	Playing bool
	// Step is the current milestone. Left at its last value after Stop.
	Step Step
	// Settling is true between Play and the start of the new run.
	Settling bool
	// Revision increases by one on every published change.
	Revision uint64
	// RunID identifies the current or most recent run. Empty before the first run.
	RunID string
}

// Idle reports whether no run is active.
func (s PlaybackState) Idle() bool {
	return !s.Playing
}

// String renders the state machine position, e.g. "running(2)" or "idle".
func (s PlaybackState) String() string {
	if !s.Playing {
		if s.Settling {
			return "settling"
		}
		return "idle"
	}
	return fmt.Sprintf("running(%d)", int(s.Step))
}
