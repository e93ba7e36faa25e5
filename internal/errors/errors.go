package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email that already
	// has a record.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both an unknown email and a bad
	// password, so a caller cannot tell which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound is returned when a mutation targets an id with no record.
	ErrNotFound = errors.New("record not found")
)

// StatusFor collapses a service error to its HTTP status code.
//
// The API deliberately exposes a flat taxonomy: conflict on duplicate
// registration, unauthorized on credential mismatch, and a generic bad
// request for everything else, including storage faults and missing mutation
// targets. The underlying detail is logged at the handler boundary and never
// returned to the caller.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
