// Package toast implements the lifecycle of transient notifications.
//
// Every toast moves through three phases:
//
//	Visible --(auto-dismiss timer | Dismiss)--> Closing --(CloseTransition)--> Closed
//
// Closing is entered exactly once, whichever comes first of the timer expiring
// or a manual Dismiss. Closed is terminal: the disposal callback passed to
// Present runs exactly once and the controller forgets the handle. Repeated
// Dismiss calls and late timer callbacks are guarded no-ops.
//
// Timers come from an injected scheduler.Scheduler, so tests drive the clock
// deterministically:
//
//	clock := scheduler.NewFake()
//	c := toast.NewController(toast.WithScheduler(clock))
//
//	h, _ := c.Present(ctx, toast.Request{Message: "Saved", Category: variant.ToastSuccess}, func(toast.Snapshot) {})
//	clock.Advance(3 * time.Second)  // h.Phase() == PhaseClosing
//	clock.Advance(toast.CloseTransition) // h.Phase() == PhaseClosed
//
// # Teardown
//
// Handle.Release and Controller.Close stop any outstanding timer without firing
// further callbacks. They are meant for views that go away before the toast
// finishes; use Dismiss to close a toast normally.
//
// # Rendering
//
// With WithBroadcaster every presentation, phase change and release is
// published as an Event. The view layer maps PhaseVisible to shown,
// PhaseClosing to a CSS fade lasting CloseTransition, and PhaseClosed or a
// release to removal.
package toast
