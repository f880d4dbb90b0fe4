// Package testing provides a manual clock for deterministic timer tests.
package testing

import (
	"sort"
	"sync"
	"time"

	"github.com/rileyhilliard/stagehand/internal/clock"
)

// FakeTimer is a timer scheduled on a FakeClock.
type FakeTimer struct {
	clock   *FakeClock
	when    time.Time
	seq     int
	fn      func()
	fired   bool
	stopped bool
}

// Stop cancels the timer. Returns false if it already fired or was stopped.
func (t *FakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	c.removeLocked(t)
	c.StopCalls++
	return true
}

// FakeClock is a clock.Clock whose time only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance, in due-time
// order (ties broken by scheduling order).
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*FakeTimer

	// Call tracking
	Scheduled []time.Duration // Delays passed to AfterFunc, in call order
	StopCalls int             // Successful Stop calls
	Fired     int             // Callbacks run
}

// NewFakeClock creates a fake clock starting at a fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run once the fake time reaches now+d.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &FakeTimer{
		clock: c,
		when:  c.now.Add(d),
		seq:   c.seq,
		fn:    f,
	}
	c.pending = append(c.pending, t)
	c.Scheduled = append(c.Scheduled, d)
	return t
}

// Advance moves time forward by d, firing every timer that comes due,
// including timers scheduled by callbacks during the advance.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		next := c.nextDueLocked(target)
		if next == nil {
			break
		}
		c.now = next.when
		next.fired = true
		c.removeLocked(next)
		c.Fired++

		// Run outside the lock so the callback can schedule or stop timers.
		c.mu.Unlock()
		next.fn()
		c.mu.Lock()
	}

	c.now = target
	c.mu.Unlock()
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// NextDue returns the delay until the earliest pending timer, and false if none.
func (c *FakeClock) NextDue() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) == 0 {
		return 0, false
	}
	c.sortLocked()
	return c.pending[0].when.Sub(c.now), true
}

func (c *FakeClock) nextDueLocked(target time.Time) *FakeTimer {
	if len(c.pending) == 0 {
		return nil
	}
	c.sortLocked()
	if c.pending[0].when.After(target) {
		return nil
	}
	return c.pending[0]
}

func (c *FakeClock) sortLocked() {
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].when.Equal(c.pending[j].when) {
			return c.pending[i].seq < c.pending[j].seq
		}
		return c.pending[i].when.Before(c.pending[j].when)
	})
}

func (c *FakeClock) removeLocked(t *FakeTimer) {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}
