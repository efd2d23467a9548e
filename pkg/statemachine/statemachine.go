package statemachine

import "context"

// Transition defines a state change triggered by an event.
type Transition[S, E ~string] struct {
	From  S
	To    S
	Event E
}

// Hook observes a completed transition. Hooks run in registration order after
// the state changes, outside the machine lock.
type Hook[S, E ~string] func(ctx context.Context, from, to S, event E)
