package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values from a Broadcaster. Safe for concurrent use.
type Subscriber[T any] interface {
	// C returns the receive channel. It is closed when the subscriber is closed.
	C() <-chan T

	// Close releases the subscription. Idempotent.
	Close() error
}

// Broadcaster fans values out to every active subscriber. Slow consumers lose
// values rather than blocking the publisher.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber whose lifetime is bound to ctx.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish sends v to all active subscribers without blocking.
	Publish(ctx context.Context, v T)

	// Close closes all subscribers; later Publish calls are no-ops.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan T, bufferSize)}
}

func (s *subscriber[T]) C() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send reports false when the subscriber is closed or its buffer is full.
func (s *subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}
	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
