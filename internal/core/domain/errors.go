package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when a login attempt is rejected.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError is a local failure raised before any request is issued:
// a required identifier or field is missing. It never reaches the wire.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// MissingField builds the canonical "field is required" validation error.
func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

// TransportError means the rental backend could not be reached at all:
// connection refused, DNS failure, timeout. There is no HTTP status to report.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unreachable: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError means the rental backend answered with a non-2xx status.
// The body is kept verbatim for diagnostics; the portal does not parse it
// into finer-grained recovery logic.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}
