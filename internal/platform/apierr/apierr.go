package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound          = "not_found"
	CodeInvalidRequest    = "invalid_request"
	CodeExpectationFailed = "expectation_failed"
	CodeInvalidTransition = "invalid_status_transition"
	CodeConflict          = "conflict"
	CodeInternal          = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Mapping pairs a sentinel with the response it should produce.
type Mapping struct {
	Target error
	Status int
	Code   string
}

// Classify returns err unchanged when it already is an *Error, otherwise the first
// mapping whose Target matches via errors.Is, falling back to a 500.
func Classify(err error, mappings ...Mapping) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	for _, m := range mappings {
		if errors.Is(err, m.Target) {
			return New(m.Status, m.Code, err)
		}
	}
	return New(http.StatusInternalServerError, CodeInternal, err)
}
