// Package apperr defines the error kinds raised during request handling
// and their mapping to HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request-handling failure.
type Kind int

const (
	// Internal is the zero value so that unclassified errors map to 500.
	Internal Kind = iota
	BadRequest
	Unauthorized
	Forbidden
	NotFound
	Conflict
	ValidationFailed
)

// HTTPStatus returns the status code a Kind maps to.
func (k Kind) HTTPStatus() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case ValidationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad_request"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case ValidationFailed:
		return "validation_failed"
	default:
		return "internal"
	}
}

// Error is a tagged request-handling error. Details carries the per-field
// messages of a validation failure; it is nil for every other kind.
type Error struct {
	Kind    Kind
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a ValidationFailed error carrying the accumulated
// per-field messages.
func Validation(details []string) *Error {
	return &Error{
		Kind:    ValidationFailed,
		Message: "Validation failed",
		Details: details,
	}
}

// KindOf extracts the Kind of err. Errors that are not *Error are
// classified as Internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}
