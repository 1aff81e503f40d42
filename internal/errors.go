package internal

import (
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of failure categories a transformation can
// produce. Every error crossing the transformer boundary carries exactly
// one kind; callers never inspect message text to decide behavior.
type ErrorKind int

const (
	// KindInvalidInput marks empty or whitespace-only input.
	KindInvalidInput ErrorKind = iota
	// KindTextTooLong marks input exceeding MaxTextLength.
	KindTextTooLong
	// KindUnsupportedStyle marks a style id the catalog does not know.
	KindUnsupportedStyle
	// KindProviderTransient marks a retryable provider failure that
	// survived all retry attempts (429, 5xx).
	KindProviderTransient
	// KindProviderFatal marks a provider failure that must not be retried
	// (invalid credentials, malformed request).
	KindProviderFatal
	// KindTimeout marks a per-attempt deadline that expired on every attempt.
	KindTimeout
	// KindNetwork marks a transport failure with no HTTP response.
	KindNetwork
)

// API error codes as exposed in the response envelope.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeTextTooLong       = "TEXT_TOO_LONG"
	CodeUnsupportedStyle  = "UNSUPPORTED_STYLE"
	CodeAIServiceError    = "AI_SERVICE_ERROR"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Error is the single error type produced by the transformer.
type Error struct {
	Kind    ErrorKind
	Status  int    // provider HTTP status when one was received, else 0
	Message string // human-readable, safe to surface to the user
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error with a formatted message.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InputError reports whether the error was detected locally, before any
// provider call. Input errors are never retried.
func (e *Error) InputError() bool {
	switch e.Kind {
	case KindInvalidInput, KindTextTooLong, KindUnsupportedStyle:
		return true
	}
	return false
}

// APICode maps the error kind to the envelope error code.
func (e *Error) APICode() string {
	switch e.Kind {
	case KindInvalidInput:
		return CodeInvalidInput
	case KindTextTooLong:
		return CodeTextTooLong
	case KindUnsupportedStyle:
		return CodeUnsupportedStyle
	case KindProviderTransient:
		if e.Status == http.StatusTooManyRequests {
			return CodeRateLimitExceeded
		}
		return CodeAIServiceError
	case KindTimeout, KindNetwork:
		return CodeAIServiceError
	}
	// Fatal provider errors (bad credentials, malformed requests) are a
	// deployment problem, not something the caller can act on.
	return CodeInternalError
}

// HTTPStatus maps the error kind to the status of the API response.
func (e *Error) HTTPStatus() int {
	switch e.APICode() {
	case CodeInvalidInput, CodeTextTooLong, CodeUnsupportedStyle:
		return http.StatusBadRequest
	case CodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case CodeAIServiceError:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
