package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict signals a write that collides with existing state.
	ErrConflict = errors.New("conflict")
	// ErrPreconditionFailed signals a caller precondition that does not hold.
	ErrPreconditionFailed = errors.New("precondition failed")
)
