package statemachine_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/walletdesk/pkg/statemachine"
)

type docState string

type docEvent string

const (
	Draft     docState = "draft"
	InReview  docState = "in_review"
	Approved  docState = "approved"
	Published docState = "published"

	Submit  docEvent = "submit"
	Approve docEvent = "approve"
	Publish docEvent = "publish"
)

func newDocMachine(t *testing.T, opts ...statemachine.Option[docState, docEvent]) *statemachine.Machine[docState, docEvent] {
	t.Helper()
	base := []statemachine.Option[docState, docEvent]{
		statemachine.WithTransition(Draft, InReview, Submit),
		statemachine.WithTransition(InReview, Approved, Approve),
		statemachine.WithTransition(Approved, Published, Publish),
	}
	m, err := statemachine.New(Draft, append(base, opts...)...)
	require.NoError(t, err)
	return m
}

func TestMachine_Fire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("follows declared transitions", func(t *testing.T) {
		t.Parallel()
		m := newDocMachine(t)
		assert.Equal(t, Draft, m.Current())

		next, err := m.Fire(ctx, Submit)
		require.NoError(t, err)
		assert.Equal(t, InReview, next)
		assert.Equal(t, InReview, m.Current())
	})

	t.Run("undeclared event", func(t *testing.T) {
		t.Parallel()
		m := newDocMachine(t)
		cur, err := m.Fire(ctx, Publish)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.Equal(t, Draft, cur)
	})

	t.Run("empty event", func(t *testing.T) {
		t.Parallel()
		m := newDocMachine(t)
		_, err := m.Fire(ctx, "")
		assert.ErrorIs(t, err, statemachine.ErrInvalidEvent)
	})
}

func TestMachine_Terminal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := newDocMachine(t, statemachine.WithTerminal[docState, docEvent](Published))
	for _, e := range []docEvent{Submit, Approve, Publish} {
		_, err := m.Fire(ctx, e)
		require.NoError(t, err)
	}

	for _, e := range []docEvent{Submit, Approve, Publish} {
		cur, err := m.Fire(ctx, e)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.Equal(t, Published, cur)
	}

	t.Run("transition out of terminal is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := statemachine.New(Draft,
			statemachine.WithTerminal[docState, docEvent](Published),
			statemachine.WithTransition(Published, Draft, Submit),
		)
		assert.ErrorIs(t, err, statemachine.ErrTransitionFromTerminal)

		_, err = statemachine.New(Draft,
			statemachine.WithTransition(Published, Draft, Submit),
			statemachine.WithTerminal[docState, docEvent](Published),
		)
		assert.ErrorIs(t, err, statemachine.ErrTransitionFromTerminal)
	})
}

func TestMachine_Hooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type key struct{}
	ctx = context.WithValue(ctx, key{}, "req-1")

	var seen []string
	m := newDocMachine(t, statemachine.WithHook(func(ctx context.Context, from, to docState, event docEvent) {
		seen = append(seen, ctx.Value(key{}).(string)+":"+string(from)+">"+string(to))
	}))

	_, _ = m.Fire(ctx, Submit)
	_, _ = m.Fire(ctx, Publish) // rejected, no hook
	_, _ = m.Fire(ctx, Approve)

	assert.Equal(t, []string{"req-1:draft>in_review", "req-1:in_review>approved"}, seen)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New[docState, docEvent]("")
	assert.ErrorIs(t, err, statemachine.ErrInvalidInitialState)

	_, err = statemachine.New(Draft, statemachine.WithTransition(Draft, "", Submit))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)

	_, err = statemachine.New(Draft,
		statemachine.WithTransition(Draft, InReview, Submit),
		statemachine.WithTransition(Draft, Approved, Submit),
	)
	assert.ErrorIs(t, err, statemachine.ErrDuplicateTransition)

	assert.Panics(t, func() {
		statemachine.MustNew(Draft, statemachine.WithTransition(Draft, InReview, ""))
	})
}

func TestMachine_ConcurrentFire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := statemachine.MustNew(Draft,
		statemachine.WithTransition(Draft, InReview, Submit),
		statemachine.WithTerminal[docState, docEvent](InReview),
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Fire(ctx, Submit); err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, InReview, m.Current())
}
