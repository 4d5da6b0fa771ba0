package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error codes returned in the API envelope
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeRateLimited   = "RATE_LIMITED"
	CodeAuthRequired  = "AUTH_REQUIRED"
	CodeInvalidCode   = "INVALID_CODE"
	CodeExpired       = "CODE_EXPIRED"
	CodeSMSDelivery   = "SMS_DELIVERY_FAILED"
	CodeNotFound      = "NOT_FOUND"
	CodeUnknown       = "UNKNOWN_ERROR"
)

// Error is a typed domain error carrying the API error code, the HTTP status
// it translates to, and an optional retry hint for rate-limited operations.
type Error struct {
	Code       string
	Message    string
	Status     int
	RetryAfter time.Duration
	Details    map[string]interface{}
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error
func (e *Error) WithCause(err error) *Error {
	clone := *e
	clone.cause = err
	return &clone
}

// WithDetail attaches a key-value detail for the envelope
func (e *Error) WithDetail(key string, value interface{}) *Error {
	clone := *e
	clone.Details = make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	clone.Details[key] = value
	return &clone
}

// Validation creates a caller-input error (400)
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

// RateLimited creates a retryable throttling error (429) with a wait hint
func RateLimited(message string, retryAfter time.Duration) *Error {
	return &Error{
		Code:       CodeRateLimited,
		Message:    message,
		Status:     http.StatusTooManyRequests,
		RetryAfter: retryAfter,
	}
}

// AuthRequired creates a missing/invalid session error (401)
func AuthRequired(message string) *Error {
	if message == "" {
		message = "authentication required"
	}
	return &Error{Code: CodeAuthRequired, Message: message, Status: http.StatusUnauthorized}
}

// InvalidCode creates an OTP mismatch error (401)
func InvalidCode(message string) *Error {
	return &Error{Code: CodeInvalidCode, Message: message, Status: http.StatusUnauthorized}
}

// Expired creates an expired-OTP error (401)
func Expired(message string) *Error {
	return &Error{Code: CodeExpired, Message: message, Status: http.StatusUnauthorized}
}

// SMSDeliveryFailed creates a transient delivery error (503)
func SMSDeliveryFailed(message string) *Error {
	return &Error{Code: CodeSMSDelivery, Message: message, Status: http.StatusServiceUnavailable}
}

// NotFound creates a missing-resource error (404). Invite validation failures
// use this uniformly so invalid invites are indistinguishable from missing
// events.
func NotFound(message string) *Error {
	if message == "" {
		message = "resource not found"
	}
	return &Error{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

// Unknown creates an internal error (500)
func Unknown(message string) *Error {
	if message == "" {
		message = "internal error"
	}
	return &Error{Code: CodeUnknown, Message: message, Status: http.StatusInternalServerError}
}

// From extracts a typed *Error from err, or wraps it as Unknown
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unknown("internal error").WithCause(err)
}
