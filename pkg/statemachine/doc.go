// Package statemachine provides a small, generic finite-state-machine used to
// validate lifecycle transitions.
//
// States and events are string-backed types, so domain packages declare their
// own enumerations:
//
//	type Phase string
//	type Trigger string
//
//	m := statemachine.MustNew[Phase, Trigger]("visible",
//	    statemachine.WithTransition[Phase, Trigger]("visible", "closing", "dismiss"),
//	    statemachine.WithTransition[Phase, Trigger]("closing", "closed", "settle"),
//	    statemachine.WithTerminal[Phase, Trigger]("closed"),
//	    statemachine.WithHook(func(ctx context.Context, from, to Phase, ev Trigger) {
//	        // record why the phase changed
//	    }),
//	)
//
//	next, err := m.Fire(ctx, "dismiss")
//
// Hooks run after the state changes, outside the machine lock, on the
// goroutine that called Fire.
//
// # Terminal states
//
// States passed to WithTerminal can never be left. Firing any event from a
// terminal state returns ErrNoTransitionAvailable, which lets callers treat a
// repeated close as a guarded no-op.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
package statemachine
