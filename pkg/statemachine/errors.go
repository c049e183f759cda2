package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition  = errors.New("invalid transition: from, to, or event cannot be nil")
	ErrInvalidEvent       = errors.New("invalid event: event cannot be nil")
	ErrInvalidState       = errors.New("invalid state: initial state cannot be nil")
	ErrNoTransition       = errors.New("no transition available")
	ErrTransitionRejected = errors.New("transition rejected by guards")
	ErrActionFailed       = errors.New("transition action failed")
)

// TransitionError describes why an event could not be applied in a state.
// It unwraps to ErrNoTransition or ErrTransitionRejected.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: state %q, event %q", e.Err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
