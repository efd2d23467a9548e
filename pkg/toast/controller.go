package toast

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/walletdesk/pkg/broadcast"
	"github.com/dmitrymomot/walletdesk/pkg/logger"
	"github.com/dmitrymomot/walletdesk/pkg/scheduler"
)

// Controller presents toasts and tracks the live ones. Each toast has its own
// handle and timers; the controller only indexes them.
type Controller struct {
	sched           scheduler.Scheduler
	defaultDuration time.Duration
	broadcaster     broadcast.Broadcaster[Event]
	logger          *slog.Logger

	mu      sync.RWMutex
	handles map[string]*Handle
	closed  bool
}

// NewController creates a Controller backed by the real scheduler unless
// WithScheduler is given.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		sched:           scheduler.NewReal(),
		defaultDuration: DefaultDuration,
		logger:          logger.Noop(),
		handles:         make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("toast"))
	return c
}

// Present shows a toast and arms its auto-dismiss timer. onDispose is called
// exactly once when the toast reaches Closed; a nil onDispose panics.
func (c *Controller) Present(ctx context.Context, req Request, onDispose DisposeFunc) (*Handle, error) {
	if onDispose == nil {
		panic("toast: Present called with nil dispose callback")
	}

	req, desc, err := req.normalize(c.defaultDuration)
	if err != nil {
		return nil, err
	}

	h := newHandle(uuid.NewString(), req, desc, c.sched, c.logger, onDispose)
	h.notify = c.notify
	h.forget = c.forget

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrControllerClosed
	}
	c.handles[h.ID()] = h
	c.mu.Unlock()

	c.logger.LogAttrs(ctx, slog.LevelDebug, "toast presented",
		logger.ToastID(h.ID()),
		logger.Category(req.Category),
		slog.Duration("auto_dismiss", req.Duration),
	)
	c.publish(ctx, Event{Snapshot: h.Snapshot()})
	h.start()

	return h, nil
}

// Dismiss closes the toast with the given id. It reports whether a Visible toast
// was moved to Closing; unknown ids and repeated calls return false.
func (c *Controller) Dismiss(id string) bool {
	h, ok := c.Get(id)
	if !ok {
		return false
	}
	return h.Dismiss()
}

// Get returns the live handle for id.
func (c *Controller) Get(id string) (*Handle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handles[id]
	return h, ok
}

// Active returns snapshots of every live toast, oldest first.
func (c *Controller) Active() []Snapshot {
	c.mu.RLock()
	snaps := make([]Snapshot, 0, len(c.handles))
	for _, h := range c.handles {
		snaps = append(snaps, h.Snapshot())
	}
	c.mu.RUnlock()

	slices.SortFunc(snaps, func(a, b Snapshot) int {
		if n := a.CreatedAt.Compare(b.CreatedAt); n != 0 {
			return n
		}
		return strings.Compare(a.ID, b.ID)
	})
	return snaps
}

// Len returns the number of live toasts.
func (c *Controller) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.handles)
}

// Close releases every live toast without invoking disposal callbacks and
// rejects further Present calls. Safe to call repeatedly.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	handles := make([]*Handle, 0, len(c.handles))
	for _, h := range c.handles {
		handles = append(handles, h)
	}
	c.mu.Unlock()

	for _, h := range handles {
		h.Release()
	}
	return nil
}

func (c *Controller) forget(id string) {
	c.mu.Lock()
	delete(c.handles, id)
	c.mu.Unlock()
}

func (c *Controller) notify(ev Event) {
	ctx := context.Background()
	if ev.Released {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "toast released",
			logger.ToastID(ev.ID),
			logger.Phase(ev.Phase),
		)
	} else {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "toast phase changed",
			logger.ToastID(ev.ID),
			slog.String("from", string(ev.From)),
			logger.Phase(ev.Phase),
			slog.String("reason", string(ev.Reason)),
		)
	}
	c.publish(ctx, ev)
}

func (c *Controller) publish(ctx context.Context, ev Event) {
	if c.broadcaster != nil {
		c.broadcaster.Publish(ctx, ev)
	}
}
