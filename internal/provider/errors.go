package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error describes one failed provider call in structural terms. Retry
// decisions read Status and Timeout only; message text is never inspected,
// since provider messages are free-form and may be localized.
type Error struct {
	Service string
	// Status is the HTTP status the provider answered with, or 0 when no
	// response was received (transport failure, timeout).
	Status int
	// Timeout marks an attempt that exceeded its deadline.
	Timeout bool
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s: attempt timed out", e.Service)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Service, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether another attempt may succeed. Rate limiting
// (429), server-side failures (5xx), timeouts, and transport errors are
// retryable; every other 4xx is a caller problem and is not.
func (e *Error) Retryable() bool {
	if e.Timeout || e.Status == 0 {
		return true
	}
	if e.Status == http.StatusTooManyRequests {
		return true
	}
	if e.Status >= 400 && e.Status < 500 {
		return false
	}
	return true
}

// classifyTransport wraps a transport-level error (no HTTP response) into
// an *Error, distinguishing deadline expiry from other network failures.
func classifyTransport(service string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Service: service, Timeout: true, Message: "request deadline exceeded", Err: err}
	}
	return &Error{Service: service, Message: fmt.Sprintf("request failed: %v", err), Err: err}
}
