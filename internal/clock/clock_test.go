package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReal_AfterFuncFires(t *testing.T) {
	c := New()
	done := make(chan struct{})

	c.AfterFunc(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestReal_StopPreventsCallback(t *testing.T) {
	c := New()
	var fired atomic.Bool

	timer := c.AfterFunc(50*time.Millisecond, func() { fired.Store(true) })
	assert.True(t, timer.Stop(), "stopping a pending timer should report true")

	time.Sleep(100 * time.Millisecond)
	assert.False(t, fired.Load())
	assert.False(t, timer.Stop(), "second stop should report false")
}

func TestReal_Now(t *testing.T) {
	before := time.Now()
	now := New().Now()
	assert.False(t, now.Before(before))
}
