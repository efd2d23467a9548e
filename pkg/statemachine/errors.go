package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition      = errors.New("invalid transition: from, to, or event cannot be empty")
	ErrDuplicateTransition    = errors.New("transition already declared")
	ErrInvalidEvent           = errors.New("invalid event: event cannot be empty")
	ErrInvalidInitialState    = errors.New("initial state cannot be empty")
	ErrTransitionFromTerminal = errors.New("transition out of terminal state")
)

// ErrNoTransitionAvailable indicates no transition exists for the state/event combination.
type ErrNoTransitionAvailable struct {
	StateName string
	EventName string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.StateName, e.EventName)
}

func NewErrNoTransitionAvailable(stateName, eventName string) *ErrNoTransitionAvailable {
	return &ErrNoTransitionAvailable{StateName: stateName, EventName: eventName}
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}
