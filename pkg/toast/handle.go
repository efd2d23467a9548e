package toast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/walletdesk/pkg/logger"
	"github.com/dmitrymomot/walletdesk/pkg/scheduler"
	"github.com/dmitrymomot/walletdesk/pkg/statemachine"
	"github.com/dmitrymomot/walletdesk/pkg/variant"
)

// Handle is a single presented toast. All transitions on a handle are
// serialized; timer callbacks and manual calls may arrive from any goroutine.
type Handle struct {
	snap    Snapshot
	machine *statemachine.Machine[Phase, trigger]
	sched   scheduler.Scheduler
	logger  *slog.Logger

	mu         sync.Mutex
	autoTimer  scheduler.Timer
	closeTimer scheduler.Timer
	released   bool
	onDispose  DisposeFunc
	done       chan struct{}

	// set by the owning controller
	notify func(Event)
	forget func(id string)
}

func newHandle(id string, req Request, desc variant.Descriptor, sched scheduler.Scheduler, log *slog.Logger, onDispose DisposeFunc) *Handle {
	h := &Handle{
		snap: Snapshot{
			ID:         id,
			Message:    req.Message,
			Category:   req.Category,
			Descriptor: desc,
			Duration:   req.Duration,
			Phase:      PhaseVisible,
			CreatedAt:  sched.Now(),
		},
		sched:     sched,
		logger:    log,
		onDispose: onDispose,
		done:      make(chan struct{}),
		notify:    func(Event) {},
		forget:    func(string) {},
	}
	h.machine = newPhaseMachine(h.applyTransition)
	return h
}

// applyTransition is the phase machine hook. It runs inside fire, with h.mu
// held, so it may update the snapshot directly.
func (h *Handle) applyTransition(_ context.Context, _, to Phase, t trigger) {
	h.snap.Phase = to
	if reason, ok := closingReasons[t]; ok {
		h.snap.Reason = reason
	}
}

// start arms the auto-dismiss timer.
func (h *Handle) start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released || h.snap.Phase != PhaseVisible {
		return
	}
	h.autoTimer = h.sched.AfterFunc(h.snap.Duration, func() {
		h.fire(context.Background(), triggerExpire)
	})
}

func (h *Handle) ID() string {
	return h.snap.ID
}

func (h *Handle) Phase() Phase {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap.Phase
}

func (h *Handle) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

// Done is closed when the toast reaches Closed or is released.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Dismiss moves a Visible toast to Closing and cancels auto-dismiss. It reports
// whether the call caused the transition; dismissing a Closing, Closed or
// released toast is a no-op.
func (h *Handle) Dismiss() bool {
	return h.fire(context.Background(), triggerDismiss)
}

// Release tears the handle down: both timers are stopped and no further
// transition or disposal happens. Safe to call repeatedly.
func (h *Handle) Release() {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return
	}
	h.released = true
	h.stopTimersLocked()
	h.onDispose = nil
	snap := h.snap
	close(h.done)
	h.mu.Unlock()

	h.forget(snap.ID)
	h.notify(Event{Snapshot: snap, From: snap.Phase, Released: true})
}

func (h *Handle) fire(ctx context.Context, t trigger) bool {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return false
	}

	from := h.snap.Phase
	to, err := h.machine.Fire(ctx, t)
	if err != nil {
		h.mu.Unlock()
		h.logger.LogAttrs(ctx, slog.LevelDebug, "toast transition ignored",
			logger.ToastID(h.snap.ID),
			logger.Phase(from),
			slog.String("trigger", string(t)),
		)
		return false
	}

	var dispose DisposeFunc
	switch to {
	case PhaseClosing:
		if h.autoTimer != nil {
			h.autoTimer.Stop()
		}
		h.closeTimer = h.sched.AfterFunc(CloseTransition, func() {
			h.fire(context.Background(), triggerSettle)
		})
	case PhaseClosed:
		dispose = h.onDispose
		h.onDispose = nil
		h.released = true
		close(h.done)
	}
	snap := h.snap
	h.mu.Unlock()

	if to == PhaseClosed {
		h.forget(snap.ID)
	}
	h.notify(Event{Snapshot: snap, From: from})
	if dispose != nil {
		dispose(snap)
	}
	return true
}

func (h *Handle) stopTimersLocked() {
	if h.autoTimer != nil {
		h.autoTimer.Stop()
	}
	if h.closeTimer != nil {
		h.closeTimer.Stop()
	}
}
