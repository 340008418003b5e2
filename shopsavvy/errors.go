package shopsavvy

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies errors returned by the client.
type ErrorKind int

const (
	// KindAPI is any non-success HTTP status without a more specific kind.
	KindAPI ErrorKind = iota
	// KindAuthentication indicates HTTP 401.
	KindAuthentication
	// KindNotFound indicates HTTP 404.
	KindNotFound
	// KindValidation indicates HTTP 422.
	KindValidation
	// KindRateLimit indicates HTTP 429.
	KindRateLimit
	// KindNetwork indicates a transport-level failure before any status was
	// received (connection refused, timeout, DNS, TLS).
	KindNetwork
	// KindJSON indicates a response body that is not valid JSON or does not
	// match the expected shape.
	KindJSON
	// KindInvalidAPIKey indicates a key that does not match the required
	// format. No request was made.
	KindInvalidAPIKey
	// KindMissingAPIKey indicates an empty key. No request was made.
	KindMissingAPIKey
)

// Error is the error type returned by every client operation.
type Error struct {
	Kind       ErrorKind
	StatusCode int // originating HTTP status, 0 when no response was received
	Message    string
	cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindAuthentication:
		return fmt.Sprintf("shopsavvy: authentication failed: %s", e.Message)
	case KindNotFound:
		return fmt.Sprintf("shopsavvy: resource not found: %s", e.Message)
	case KindValidation:
		return fmt.Sprintf("shopsavvy: validation error: %s", e.Message)
	case KindRateLimit:
		return fmt.Sprintf("shopsavvy: rate limit exceeded: %s", e.Message)
	case KindNetwork:
		return fmt.Sprintf("shopsavvy: network error: %s", e.Message)
	case KindJSON:
		return fmt.Sprintf("shopsavvy: JSON error: %s", e.Message)
	case KindInvalidAPIKey, KindMissingAPIKey:
		return "shopsavvy: " + e.Message
	default:
		return fmt.Sprintf("shopsavvy: API error (%d): %s", e.StatusCode, e.Message)
	}
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsAuthentication reports whether the error is an authentication failure.
func (e *Error) IsAuthentication() bool {
	return e.Kind == KindAuthentication
}

// IsNotFound reports whether the error indicates a missing resource.
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsValidation reports whether the error is a request validation failure.
func (e *Error) IsValidation() bool {
	return e.Kind == KindValidation
}

// IsRateLimit reports whether the error indicates rate limiting.
func (e *Error) IsRateLimit() bool {
	return e.Kind == KindRateLimit
}

// IsNetwork reports whether the request failed before a status was received.
func (e *Error) IsNetwork() bool {
	return e.Kind == KindNetwork
}

func missingKeyError() *Error {
	return &Error{
		Kind:    KindMissingAPIKey,
		Message: "API key is required. Get one at https://shopsavvy.com/data",
	}
}

func invalidKeyError() *Error {
	return &Error{
		Kind:    KindInvalidAPIKey,
		Message: "invalid API key format. API keys start with ss_live_ or ss_test_",
	}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
}

func jsonError(err error) *Error {
	return &Error{Kind: KindJSON, Message: err.Error(), cause: err}
}

// apiError maps a non-success HTTP status to a typed error. The well-known
// statuses carry fixed messages; anything else keeps the upstream message.
func apiError(statusCode int, message string) *Error {
	switch statusCode {
	case http.StatusUnauthorized:
		return &Error{
			Kind:       KindAuthentication,
			StatusCode: statusCode,
			Message:    "Authentication failed. Check your API key.",
		}
	case http.StatusNotFound:
		return &Error{
			Kind:       KindNotFound,
			StatusCode: statusCode,
			Message:    "Resource not found",
		}
	case http.StatusUnprocessableEntity:
		return &Error{
			Kind:       KindValidation,
			StatusCode: statusCode,
			Message:    "Request validation failed. Check your parameters.",
		}
	case http.StatusTooManyRequests:
		return &Error{
			Kind:       KindRateLimit,
			StatusCode: statusCode,
			Message:    "Rate limit exceeded. Please slow down your requests.",
		}
	default:
		return &Error{Kind: KindAPI, StatusCode: statusCode, Message: message}
	}
}
