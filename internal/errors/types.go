// Package errors defines the SDK error taxonomy: transport failures and
// non-success HTTP statuses. Both classes are eligible for retry; anything
// else propagates immediately.
package errors

import (
	"errors"
	"fmt"
)

// StatusError reports a completed HTTP exchange whose status indicates
// failure. The response body is captured for diagnostics.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("GET %s: HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("GET %s: HTTP %d", e.Endpoint, e.StatusCode)
}

// TransportError reports a failure to complete the network exchange
// (connection refused, timeout, DNS).
type TransportError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error { return e.Err }

// Retryable reports whether err belongs to a class the backoff policy may
// retry. Only transport and status errors qualify; everything else (context
// cancellation, decode failures, malformed requests) fails fast.
func Retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return true
	}
	var te *TransportError
	return errors.As(err, &te)
}
