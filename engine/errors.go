package engine

import "errors"

// ValidationError rejects an action whose parameters are illegal for
// the current betting situation. The engine state is untouched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(reason string) error {
	return &ValidationError{Reason: reason}
}

// StateError rejects a call made at the wrong point in the hand
// lifecycle: out of turn, no hand running, results requested early.
type StateError struct {
	Reason string
	cause  error
}

func (e *StateError) Error() string {
	return e.Reason
}

func (e *StateError) Unwrap() error {
	return e.cause
}

func stateErrorf(reason string) error {
	return &StateError{Reason: reason}
}

func stateError(cause error) error {
	return &StateError{Reason: cause.Error(), cause: cause}
}

var (
	ErrInsufficientCards = errors.New("hand evaluation requires at least 5 cards")
	ErrNotEnoughPlayers  = errors.New("not enough players to start hand")
	ErrNoHandInProgress  = errors.New("no hand in progress")
	ErrNotYourTurn       = errors.New("not your turn")
)
