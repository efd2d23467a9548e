package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is a thread-safe in-memory finite state machine over string-backed
// state and event types. Each (state, event) pair leads to at most one state.
type Machine[S, E ~string] struct {
	current     S
	transitions map[S]map[E]S
	terminal    map[S]struct{}
	hooks       []Hook[S, E]
	mu          sync.RWMutex
}

func newMachine[S, E ~string](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		current:     initial,
		transitions: make(map[S]map[E]S),
		terminal:    make(map[S]struct{}),
	}
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Machine[S, E]) addTransition(t Transition[S, E]) error {
	if t.From == "" || t.To == "" || t.Event == "" {
		return ErrInvalidTransition
	}
	if _, ok := m.terminal[t.From]; ok {
		return fmt.Errorf("%w: %q", ErrTransitionFromTerminal, t.From)
	}

	if _, ok := m.transitions[t.From]; !ok {
		m.transitions[t.From] = make(map[E]S)
	}
	if _, ok := m.transitions[t.From][t.Event]; ok {
		return fmt.Errorf("%w: %q on %q", ErrDuplicateTransition, t.From, t.Event)
	}
	m.transitions[t.From][t.Event] = t.To
	return nil
}

// Fire applies event to the current state and returns the new state. From a
// terminal state, or for an undeclared event, it returns the current state and
// an *ErrNoTransitionAvailable.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) (S, error) {
	if event == "" {
		var zero S
		return zero, ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current

	if _, ok := m.terminal[from]; ok {
		m.mu.Unlock()
		return from, NewErrNoTransitionAvailable(string(from), string(event))
	}

	to, ok := m.transitions[from][event]
	if !ok {
		m.mu.Unlock()
		return from, NewErrNoTransitionAvailable(string(from), string(event))
	}

	m.current = to
	hooks := m.hooks
	m.mu.Unlock()

	for _, h := range hooks {
		h(ctx, from, to, event)
	}
	return to, nil
}
