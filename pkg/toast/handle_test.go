package toast_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/walletdesk/pkg/broadcast"
	"github.com/dmitrymomot/walletdesk/pkg/scheduler"
	"github.com/dmitrymomot/walletdesk/pkg/toast"
	"github.com/dmitrymomot/walletdesk/pkg/variant"
)

// disposals counts dispose callbacks.
type disposals struct {
	mu    sync.Mutex
	snaps []toast.Snapshot
}

func (d *disposals) fn(s toast.Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snaps = append(d.snaps, s)
}

func (d *disposals) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.snaps)
}

func newTestController(t *testing.T, opts ...toast.Option) (*toast.Controller, *scheduler.Fake) {
	t.Helper()
	clock := scheduler.NewFake()
	c := toast.NewController(append([]toast.Option{toast.WithScheduler(clock)}, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c, clock
}

func TestHandle_AutoDismiss(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newTestController(t)
	d := &disposals{}

	h, err := c.Present(ctx, toast.Request{
		Message:  "Saved",
		Category: variant.ToastSuccess,
		Duration: 3000 * time.Millisecond,
	}, d.fn)
	require.NoError(t, err)
	assert.Equal(t, toast.PhaseVisible, h.Phase())

	clock.Advance(2999 * time.Millisecond)
	assert.Equal(t, toast.PhaseVisible, h.Phase())

	clock.Advance(time.Millisecond)
	assert.Equal(t, toast.PhaseClosing, h.Phase())
	assert.Equal(t, toast.ReasonExpired, h.Snapshot().Reason)
	assert.Equal(t, 0, d.count())

	clock.Advance(299 * time.Millisecond)
	assert.Equal(t, toast.PhaseClosing, h.Phase())

	clock.Advance(time.Millisecond)
	assert.Equal(t, toast.PhaseClosed, h.Phase())
	require.Equal(t, 1, d.count())
	assert.Equal(t, "Saved", d.snaps[0].Message)
	assert.Equal(t, toast.PhaseClosed, d.snaps[0].Phase)

	clock.Advance(time.Hour)
	assert.Equal(t, 1, d.count())
	assert.Equal(t, 0, clock.Pending())

	select {
	case <-h.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestHandle_DismissImmediately(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, clock := newTestController(t)
	d := &disposals{}

	h, err := c.Present(ctx, toast.Request{Message: "Saved", Category: variant.ToastSuccess}, d.fn)
	require.NoError(t, err)

	require.True(t, h.Dismiss())
	assert.Equal(t, toast.PhaseClosing, h.Phase())
	assert.Equal(t, toast.ReasonDismissed, h.Snapshot().Reason)
	// only the close transition timer remains
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(toast.CloseTransition)
	assert.Equal(t, toast.PhaseClosed, h.Phase())
	assert.Equal(t, 1, d.count())

	// auto-dismiss deadline passes with no effect
	clock.Advance(toast.DefaultDuration)
	assert.Equal(t, 1, d.count())
	assert.Equal(t, toast.PhaseClosed, h.Phase())
}

func TestHandle_DismissIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	events := broadcast.NewMemory[toast.Event](32)
	t.Cleanup(func() { _ = events.Close() })
	sub := events.Subscribe(ctx)

	c, clock := newTestController(t, toast.WithBroadcaster(events))
	d := &disposals{}

	h, err := c.Present(ctx, toast.Request{Message: "Saved"}, d.fn)
	require.NoError(t, err)

	assert.True(t, h.Dismiss())
	assert.False(t, h.Dismiss())
	clock.Advance(toast.CloseTransition)
	assert.False(t, h.Dismiss())
	clock.Advance(time.Hour)

	assert.Equal(t, 1, d.count())

	var phases []toast.Phase
	for range 3 {
		select {
		case ev := <-sub.C():
			phases = append(phases, ev.Phase)
		case <-time.After(time.Second):
			t.Fatal("missing event")
		}
	}
	assert.Equal(t, []toast.Phase{toast.PhaseVisible, toast.PhaseClosing, toast.PhaseClosed}, phases)

	select {
	case ev := <-sub.C():
		t.Fatalf("unexpected extra event %+v", ev)
	default:
	}
}

func TestHandle_ReleaseCancelsTimers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("while visible", func(t *testing.T) {
		t.Parallel()
		c, clock := newTestController(t)
		d := &disposals{}

		h, err := c.Present(ctx, toast.Request{Message: "hi"}, d.fn)
		require.NoError(t, err)

		h.Release()
		h.Release()
		assert.Equal(t, 0, clock.Pending())
		assert.Equal(t, 0, c.Len())

		clock.Advance(time.Hour)
		assert.Equal(t, toast.PhaseVisible, h.Phase())
		assert.Equal(t, 0, d.count())
		assert.False(t, h.Dismiss())
	})

	t.Run("while closing", func(t *testing.T) {
		t.Parallel()
		c, clock := newTestController(t)
		d := &disposals{}

		h, err := c.Present(ctx, toast.Request{Message: "hi"}, d.fn)
		require.NoError(t, err)
		require.True(t, h.Dismiss())

		h.Release()
		assert.Equal(t, 0, clock.Pending())

		clock.Advance(time.Hour)
		assert.Equal(t, toast.PhaseClosing, h.Phase())
		assert.Equal(t, 0, d.count())
	})

	t.Run("after closed", func(t *testing.T) {
		t.Parallel()
		c, clock := newTestController(t)
		d := &disposals{}

		h, err := c.Present(ctx, toast.Request{Message: "hi", Duration: time.Second}, d.fn)
		require.NoError(t, err)
		clock.Advance(time.Second + toast.CloseTransition)
		require.Equal(t, toast.PhaseClosed, h.Phase())

		h.Release()
		assert.Equal(t, 1, d.count())
	})
}

func TestHandle_PhaseOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	events := broadcast.NewMemory[toast.Event](64)
	t.Cleanup(func() { _ = events.Close() })
	sub := events.Subscribe(ctx)

	c, clock := newTestController(t, toast.WithBroadcaster(events))
	noop := func(toast.Snapshot) {}

	for i, dur := range []time.Duration{time.Second, 2 * time.Second, 500 * time.Millisecond} {
		h, err := c.Present(ctx, toast.Request{Message: "m", Duration: dur}, noop)
		require.NoError(t, err)
		if i == 1 {
			h.Dismiss()
		}
	}
	clock.Advance(5 * time.Second)
	require.NoError(t, events.Close())

	last := map[string]toast.Phase{}
	for ev := range sub.C() {
		prev, seen := last[ev.ID]
		switch ev.Phase {
		case toast.PhaseVisible:
			assert.False(t, seen)
		case toast.PhaseClosing:
			assert.Equal(t, toast.PhaseVisible, prev)
			assert.Equal(t, prev, ev.From)
		case toast.PhaseClosed:
			assert.Equal(t, toast.PhaseClosing, prev)
			assert.Equal(t, prev, ev.From)
		}
		last[ev.ID] = ev.Phase
	}

	require.Len(t, last, 3)
	for _, p := range last {
		assert.Equal(t, toast.PhaseClosed, p)
	}
}

func TestHandle_ConcurrentDismissAndExpiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := toast.NewController()
	t.Cleanup(func() { _ = c.Close() })

	var disposed atomic.Int32
	h, err := c.Present(ctx, toast.Request{Message: "race", Duration: time.Millisecond}, func(toast.Snapshot) {
		disposed.Add(1)
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Dismiss()
		}()
	}
	wg.Wait()

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("toast did not close")
	}

	// Done closes before the dispose callback runs outside the handle lock.
	require.Eventually(t, func() bool { return disposed.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, int32(1), disposed.Load())
	assert.Equal(t, toast.PhaseClosed, h.Phase())
}
