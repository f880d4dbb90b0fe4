package sequence

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/stagehand/internal/clock"
	clocktesting "github.com/rileyhilliard/stagehand/internal/clock/testing"
	"github.com/rileyhilliard/stagehand/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every published snapshot.
type recorder struct {
	mu     sync.Mutex
	states []PlaybackState
}

func (r *recorder) listen(s PlaybackState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) all() []PlaybackState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PlaybackState, len(r.states))
	copy(out, r.states)
	return out
}

func newTestController(t *testing.T) (*Controller, *clocktesting.FakeClock, *recorder) {
	t.Helper()
	clk := clocktesting.NewFakeClock()
	runs := 0
	c := NewController(clk,
		WithLogger(logger.Noop()),
		WithRunIDs(func() string {
			runs++
			return fmt.Sprintf("run-%d", runs)
		}),
	)
	rec := &recorder{}
	c.Subscribe(rec.listen)
	return c, clk, rec
}

func TestNewController_Idle(t *testing.T) {
	c, clk, _ := newTestController(t)

	s := c.State()
	assert.False(t, s.Playing)
	assert.Equal(t, StepTitle, s.Step)
	assert.False(t, c.Settling())
	assert.Equal(t, 0, clk.Pending(), "idle controller schedules no timer")
	assert.Equal(t, DefaultTiming(), c.Timing())
}

func TestPlay_FromIdle_FullRun(t *testing.T) {
	c, clk, _ := newTestController(t)

	c.Play()
	assert.False(t, c.State().Playing)
	assert.True(t, c.Settling())

	clk.Advance(299 * time.Millisecond)
	assert.False(t, c.State().Playing, "run must not start before the settle delay")

	clk.Advance(time.Millisecond)
	s := c.State()
	require.True(t, s.Playing)
	assert.Equal(t, StepTitle, s.Step)
	assert.False(t, s.Settling)
	assert.Equal(t, "run-1", s.RunID)

	for want := StepList; want <= StepComplete; want++ {
		clk.Advance(999 * time.Millisecond)
		assert.Equal(t, want-1, c.State().Step, "step advanced early")
		clk.Advance(time.Millisecond)
		assert.Equal(t, want, c.State().Step)
		assert.True(t, c.State().Playing)
	}

	assert.Equal(t, 0, clk.Pending(), "terminal step schedules nothing")

	clk.Advance(10 * time.Second)
	assert.Equal(t, StepComplete, c.State().Step)
	assert.True(t, c.State().Playing)
}

func TestPlay_SchedulesExpectedDelays(t *testing.T) {
	c, clk, _ := newTestController(t)

	c.Play()
	clk.Advance(c.Timing().RunDuration())

	assert.Equal(t, []time.Duration{
		300 * time.Millisecond,
		time.Second, time.Second, time.Second, time.Second,
	}, clk.Scheduled)
	assert.Equal(t, 4300*time.Millisecond, c.Timing().RunDuration())
}

func TestStop_FreezesStep(t *testing.T) {
	for n := StepTitle; n <= StepComplete; n++ {
		t.Run(n.String(), func(t *testing.T) {
			c, clk, rec := newTestController(t)

			c.Play()
			clk.Advance(300*time.Millisecond + time.Duration(n)*time.Second)
			require.Equal(t, n, c.State().Step)
			require.True(t, c.State().Playing)

			c.Stop()
			s := c.State()
			assert.False(t, s.Playing)
			assert.Equal(t, n, s.Step, "step is left at its last value")
			assert.Equal(t, 0, clk.Pending())

			published := len(rec.all())
			clk.Advance(10 * time.Second)
			assert.Equal(t, n, c.State().Step)
			assert.False(t, c.State().Playing)
			assert.Len(t, rec.all(), published, "no snapshots after stop")
		})
	}
}

func TestStop_WhileIdleIsNoop(t *testing.T) {
	c, _, rec := newTestController(t)

	c.Stop()
	assert.Empty(t, rec.all())
	assert.Equal(t, uint64(0), c.State().Revision)
}

func TestStop_DuringSettleCancelsRun(t *testing.T) {
	c, clk, _ := newTestController(t)

	c.Play()
	clk.Advance(100 * time.Millisecond)
	c.Stop()

	assert.False(t, c.Settling())
	assert.Equal(t, 0, clk.Pending())

	clk.Advance(time.Second)
	assert.False(t, c.State().Playing, "stopped settle must not start a run")
}

func TestPlay_DuringRunRestartsFromZero(t *testing.T) {
	c, clk, _ := newTestController(t)

	c.Play()
	clk.Advance(2300 * time.Millisecond)
	require.Equal(t, StepCircle, c.State().Step)
	require.True(t, c.State().Playing)

	c.Play()
	s := c.State()
	assert.False(t, s.Playing, "restart tears down immediately")
	assert.True(t, s.Settling)
	assert.Equal(t, 1, clk.Pending(), "only the settle timer is pending")

	clk.Advance(299 * time.Millisecond)
	assert.False(t, c.State().Playing)

	clk.Advance(time.Millisecond)
	s = c.State()
	assert.True(t, s.Playing)
	assert.Equal(t, StepTitle, s.Step, "restart resets to step 0, not 3")
	assert.Equal(t, "run-2", s.RunID)

	clk.Advance(time.Second)
	assert.Equal(t, StepList, c.State().Step)
}

func TestPlay_WhileSettlingRestartsSettle(t *testing.T) {
	c, clk, _ := newTestController(t)

	c.Play()
	clk.Advance(200 * time.Millisecond)
	c.Play()

	clk.Advance(200 * time.Millisecond)
	assert.False(t, c.State().Playing, "settle delay restarts on a second Play")
	assert.Equal(t, 1, clk.Pending())

	clk.Advance(100 * time.Millisecond)
	assert.True(t, c.State().Playing)
	assert.Equal(t, "run-1", c.State().RunID, "only one run starts")
}

func TestPlay_AfterCompleteReplays(t *testing.T) {
	c, clk, _ := newTestController(t)

	c.Play()
	clk.Advance(c.Timing().RunDuration())
	require.Equal(t, StepComplete, c.State().Step)

	c.Play()
	clk.Advance(c.Timing().RunDuration())
	assert.Equal(t, StepComplete, c.State().Step)
	assert.Equal(t, "run-2", c.State().RunID)
}

func TestClose_CancelsAndDisables(t *testing.T) {
	c, clk, rec := newTestController(t)

	c.Play()
	clk.Advance(1300 * time.Millisecond)
	c.Close()

	assert.Equal(t, 0, clk.Pending())
	published := len(rec.all())

	c.Play()
	c.Stop()
	clk.Advance(10 * time.Second)

	assert.Len(t, rec.all(), published)
	assert.Equal(t, StepList, c.State().Step)
}

func TestStaleCallbackIsDiscarded(t *testing.T) {
	c, clk, _ := newTestController(t)

	c.Play()
	clk.Advance(300 * time.Millisecond)

	// Simulate a tick callback that fired concurrently with a Stop: its
	// generation no longer matches, so it must not advance the step.
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	c.Stop()
	c.tick(gen)
	c.settle(gen)

	assert.False(t, c.State().Playing)
	assert.Equal(t, StepTitle, c.State().Step)
}

func TestRevisionsIncreaseByOne(t *testing.T) {
	c, clk, rec := newTestController(t)

	c.Play()
	clk.Advance(1300 * time.Millisecond)
	c.Play()
	clk.Advance(2 * time.Second)
	c.Stop()

	states := rec.all()
	require.NotEmpty(t, states)
	for i, s := range states {
		assert.Equal(t, uint64(i+1), s.Revision)
	}
	assert.Equal(t, states[len(states)-1], c.State())
}

func TestUnsubscribe(t *testing.T) {
	c, clk, _ := newTestController(t)

	var got []PlaybackState
	unsubscribe := c.Subscribe(func(s PlaybackState) { got = append(got, s) })

	c.Play()
	require.Len(t, got, 1)

	unsubscribe()
	clk.Advance(time.Second)
	assert.Len(t, got, 1)
}

func TestControllerLogsTransitions(t *testing.T) {
	clk := clocktesting.NewFakeClock()
	buf := logger.NewBufferLogger()
	c := NewController(clk, WithLogger(buf), WithRunIDs(func() string { return "abc" }))

	c.Play()
	clk.Advance(1300 * time.Millisecond)
	c.Stop()

	msgs := buf.Messages(logger.LevelDebug)
	assert.Contains(t, msgs, "run abc: started")
	assert.Contains(t, msgs, "run abc: stopped at list")
	assert.False(t, buf.HasLevel(logger.LevelError))
}

// TestRandomOperations drives the controller with random Play/Stop/Advance
// sequences and checks the run invariants after every step.
func TestRandomOperations(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			c, clk, rec := newTestController(t)

			for i := 0; i < 200; i++ {
				switch rng.Intn(4) {
				case 0:
					c.Play()
				case 1:
					c.Stop()
				default:
					clk.Advance(time.Duration(rng.Intn(1500)) * time.Millisecond)
				}
				require.LessOrEqual(t, clk.Pending(), 1, "at most one timer may be pending")
			}

			var prev PlaybackState
			for _, s := range rec.all() {
				require.True(t, s.Step.Valid(), "step out of range: %d", s.Step)
				require.LessOrEqual(t, s.Step, StepComplete)

				if s.Playing && prev.Playing && s.RunID == prev.RunID {
					require.GreaterOrEqual(t, s.Step, prev.Step, "step decreased within a run")
					require.LessOrEqual(t, int(s.Step-prev.Step), 1, "step skipped")
				}
				if s.Playing && (!prev.Playing || s.RunID != prev.RunID) {
					require.Equal(t, StepTitle, s.Step, "a run starts at step 0")
				}
				if !s.Playing && prev.Revision > 0 {
					require.Equal(t, prev.Step, s.Step, "step only changes while playing")
				}
				prev = s
			}
		})
	}
}

func TestRealClock_CompletesRun(t *testing.T) {
	c := NewController(clock.New(),
		WithLogger(logger.Noop()),
		WithTiming(Timing{Settle: time.Millisecond, Tick: 2 * time.Millisecond}),
	)
	defer c.Close()

	done := make(chan PlaybackState, 1)
	c.Subscribe(func(s PlaybackState) {
		if ResetVisible(s) {
			select {
			case done <- s:
			default:
			}
		}
	})

	c.Play()

	select {
	case s := <-done:
		assert.Equal(t, StepComplete, s.Step)
		assert.NotEmpty(t, s.RunID)
	case <-time.After(5 * time.Second):
		t.Fatal("run never completed")
	}
}

func TestRealClock_ConcurrentPlayStop(t *testing.T) {
	c := NewController(clock.New(),
		WithLogger(logger.Noop()),
		WithTiming(Timing{Settle: time.Millisecond, Tick: time.Millisecond}),
	)
	defer c.Close()

	var mu sync.Mutex
	var last uint64
	c.Subscribe(func(s PlaybackState) {
		mu.Lock()
		defer mu.Unlock()
		assert.True(t, s.Step.Valid())
		assert.Greater(t, s.Revision, last, "snapshots delivered out of order")
		last = s.Revision
	})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if (i+g)%3 == 0 {
					c.Stop()
				} else {
					c.Play()
				}
				time.Sleep(time.Duration(i%3) * time.Millisecond)
			}
		}(g)
	}
	wg.Wait()

	c.Stop()
	frozen := c.State()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, frozen, c.State(), "no advance after final stop")
}
