package statemachine

import (
	"fmt"
)

// Option configures a machine during construction.
type Option[S, E ~string] func(*Machine[S, E]) error

// New creates a machine with the given initial state and options.
func New[S, E ~string](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	if initial == "" {
		return nil, ErrInvalidInitialState
	}

	m := newMachine[S, E](initial)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on misconfiguration. Machine definitions are
// static, so a broken one should prevent startup.
func MustNew[S, E ~string](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition adds a single transition.
func WithTransition[S, E ~string](from, to S, event E) Option[S, E] {
	return func(m *Machine[S, E]) error {
		return m.addTransition(Transition[S, E]{From: from, To: to, Event: event})
	}
}

// WithTerminal marks states that can never be left. Declaring a transition out
// of a terminal state, before or after this option, is a configuration error.
func WithTerminal[S, E ~string](states ...S) Option[S, E] {
	return func(m *Machine[S, E]) error {
		for _, s := range states {
			if _, ok := m.transitions[s]; ok {
				return fmt.Errorf("%w: %q", ErrTransitionFromTerminal, s)
			}
			m.terminal[s] = struct{}{}
		}
		return nil
	}
}

// WithHook registers a callback invoked after every successful transition.
func WithHook[S, E ~string](h Hook[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if h != nil {
			m.hooks = append(m.hooks, h)
		}
		return nil
	}
}
