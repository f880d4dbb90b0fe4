package sequence

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/stagehand/internal/clock"
	"github.com/rileyhilliard/stagehand/internal/logger"
)

// Listener receives every published snapshot. Listeners run outside the
// controller lock but must not call Play or Stop synchronously.
type Listener func(PlaybackState)

// Option configures a Controller.
type Option func(*Controller)

// WithTiming overrides the settle and tick delays.
func WithTiming(t Timing) Option {
	return func(c *Controller) {
		c.timing = t
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithRunIDs replaces the run identifier generator (defaults to UUIDs).
func WithRunIDs(gen func() string) Option {
	return func(c *Controller) {
		c.newRunID = gen
	}
}

// Controller owns the playback state and the single pending timer.
type Controller struct {
	mu       sync.Mutex
	notifyMu sync.Mutex

	clock    clock.Clock
	timing   Timing
	log      logger.Logger
	newRunID func() string

	state    PlaybackState
	settling bool
	pending  clock.Timer
	gen      uint64
	closed   bool
	runStart time.Time

	listeners map[int]Listener
	nextID    int

	snapshot atomic.Value // PlaybackState
}

// NewController creates an idle controller (Playing=false, Step=0).
func NewController(clk clock.Clock, opts ...Option) *Controller {
	c := &Controller{
		clock:     clk,
		timing:    DefaultTiming(),
		log:       logger.NewEnvLogger("[sequence]"),
		newRunID:  uuid.NewString,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.snapshot.Store(c.state)
	return c
}

// Timing returns the delays the controller runs with.
func (c *Controller) Timing() Timing {
	return c.timing
}

// State returns the latest published snapshot. Never blocks on the controller lock.
func (c *Controller) State() PlaybackState {
	return c.snapshot.Load().(PlaybackState)
}

// Settling reports whether a Play is waiting out its settle delay.
func (c *Controller) Settling() bool {
	return c.State().Settling
}

// Subscribe registers l for every future snapshot and returns a function that
// removes it.
func (c *Controller) Subscribe(l Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = l

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Play tears down any active run immediately and starts a fresh run from
// step 0 once the settle delay has passed. Calling Play while settling
// restarts the settle delay.
func (c *Controller) Play() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.cancelPendingLocked()
	if c.state.Playing {
		c.log.Debug("run %s: interrupted at %s", c.state.RunID, c.state.Step)
	}
	c.state.Playing = false
	c.settling = true
	c.scheduleLocked(c.timing.Settle, c.settle)

	c.commit(c.publishLocked())
}

// Stop ends the active run immediately. Step keeps its last value.
// Stop also cancels a pending settle, so no run starts afterwards.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	wasSettling := c.settling
	c.cancelPendingLocked()
	if !c.state.Playing && !wasSettling {
		c.mu.Unlock()
		return
	}

	if c.state.Playing {
		c.log.Debug("run %s: stopped at %s", c.state.RunID, c.state.Step)
	}
	c.state.Playing = false
	c.commit(c.publishLocked())
}

// Close cancels any pending timer. Play and Stop become no-ops afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelPendingLocked()
	c.closed = true
}

// settle starts a new run once the settle delay has elapsed.
func (c *Controller) settle(gen uint64) {
	c.mu.Lock()
	if c.stale(gen) || !c.settling {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.settling = false

	c.state.Step = StepTitle
	c.state.Playing = true
	c.state.RunID = c.newRunID()
	c.runStart = c.clock.Now()
	c.log.Debug("run %s: started", c.state.RunID)

	snap := c.publishLocked()
	c.rescheduleLocked()
	c.commit(snap)
}

// tick advances the step by exactly one.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.stale(gen) {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	if !c.state.Playing || c.state.Step >= StepComplete {
		c.mu.Unlock()
		return
	}

	c.state.Step++
	c.log.Debug("run %s: step %s after %s", c.state.RunID, c.state.Step, c.clock.Now().Sub(c.runStart))

	snap := c.publishLocked()
	c.rescheduleLocked()
	c.commit(snap)
}

// rescheduleLocked re-derives the clock from the current state: one tick
// while playing below StepComplete, nothing otherwise.
func (c *Controller) rescheduleLocked() {
	c.cancelPendingLocked()
	if !c.state.Playing || c.state.Step >= StepComplete {
		return
	}
	c.scheduleLocked(c.timing.Tick, c.tick)
}

func (c *Controller) scheduleLocked(d time.Duration, fn func(uint64)) {
	gen := c.gen
	c.pending = c.clock.AfterFunc(d, func() { fn(gen) })
}

// cancelPendingLocked stops the pending timer and invalidates any callback
// that already started.
func (c *Controller) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.settling = false
	c.gen++
}

func (c *Controller) stale(gen uint64) bool {
	return c.closed || gen != c.gen
}

func (c *Controller) publishLocked() PlaybackState {
	c.state.Settling = c.settling
	c.state.Revision++
	c.snapshot.Store(c.state)
	return c.state
}

// commit hands the lock over to listener delivery so snapshots reach
// listeners in revision order. Must be called with mu held; releases it.
func (c *Controller) commit(snap PlaybackState) {
	listeners := make([]Listener, 0, len(c.listeners))
	for id := 0; id < c.nextID; id++ {
		if l, ok := c.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}

	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}
