package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/walletdesk/pkg/scheduler"
)

func TestFake_Advance(t *testing.T) {
	t.Parallel()

	t.Run("fires only when deadline reached", func(t *testing.T) {
		t.Parallel()
		clock := scheduler.NewFake()
		var fired atomic.Int32
		clock.AfterFunc(3*time.Second, func() { fired.Add(1) })

		clock.Advance(2999 * time.Millisecond)
		assert.Equal(t, int32(0), fired.Load())

		clock.Advance(time.Millisecond)
		assert.Equal(t, int32(1), fired.Load())
		assert.Equal(t, 0, clock.Pending())
	})

	t.Run("fires in deadline order", func(t *testing.T) {
		t.Parallel()
		clock := scheduler.NewFake()
		var order []string
		clock.AfterFunc(2*time.Second, func() { order = append(order, "b") })
		clock.AfterFunc(time.Second, func() { order = append(order, "a") })
		clock.AfterFunc(2*time.Second, func() { order = append(order, "c") })

		clock.Advance(5 * time.Second)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("chained timers inside window", func(t *testing.T) {
		t.Parallel()
		clock := scheduler.NewFake()
		start := clock.Now()
		var at []time.Duration
		clock.AfterFunc(time.Second, func() {
			at = append(at, clock.Now().Sub(start))
			clock.AfterFunc(300*time.Millisecond, func() {
				at = append(at, clock.Now().Sub(start))
			})
		})

		clock.Advance(2 * time.Second)
		assert.Equal(t, []time.Duration{time.Second, 1300 * time.Millisecond}, at)
		assert.Equal(t, 2*time.Second, clock.Now().Sub(start))
	})
}

func TestFake_Stop(t *testing.T) {
	t.Parallel()

	clock := scheduler.NewFake()
	var fired atomic.Int32
	timer := clock.AfterFunc(time.Second, func() { fired.Add(1) })

	require.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	clock.Advance(time.Hour)
	assert.Equal(t, int32(0), fired.Load())

	done := clock.AfterFunc(time.Second, func() {})
	clock.Advance(time.Second)
	assert.False(t, done.Stop())
}

func TestReal_AfterFunc(t *testing.T) {
	t.Parallel()

	s := scheduler.NewReal()
	ch := make(chan struct{})
	s.AfterFunc(5*time.Millisecond, func() { close(ch) })

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	stopped := s.AfterFunc(time.Hour, func() {})
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
}
