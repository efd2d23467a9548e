package toast

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/walletdesk/pkg/broadcast"
	"github.com/dmitrymomot/walletdesk/pkg/scheduler"
)

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the real timer service, typically with scheduler.Fake in tests.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithDefaultDuration sets the auto-dismiss delay used when a Request has none.
// Non-positive values are ignored.
func WithDefaultDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.defaultDuration = d
		}
	}
}

// WithBroadcaster publishes every Event to b.
func WithBroadcaster(b broadcast.Broadcaster[Event]) Option {
	return func(c *Controller) {
		c.broadcaster = b
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}
