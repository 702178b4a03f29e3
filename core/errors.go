package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError represents an error response from the Webex API with full context.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the top-level error message from the response body,
	// or the HTTP status text when the body carried none.
	Message string
	// Details holds the per-item descriptions from the errors list of the
	// response body, if any.
	Details []ErrorDetail
	// TrackingID is the request correlation ID, taken from the response
	// body or the TrackingID response header.
	TrackingID string
	// RetryAfter is the server-provided wait hint from the Retry-After
	// header on 429/423 responses. Zero when the server sent none.
	RetryAfter time.Duration
	// Err is the sentinel error used for classification with errors.Is.
	Err error
	// Cause is the underlying transport or decode error, when the failure
	// happened outside the HTTP exchange. Nil for API error responses.
	Cause error
}

// ErrorDetail is a single entry of the errors list in a Webex error body.
type ErrorDetail struct {
	Description string `json:"description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "webex: %s (status=%d", e.Message, e.Status)
	if e.TrackingID != "" {
		fmt.Fprintf(&b, ", tracking_id=%s", e.TrackingID)
	}
	b.WriteString(")")
	for _, d := range e.Details {
		if d.Description != "" {
			b.WriteString("; ")
			b.WriteString(d.Description)
		}
	}
	return b.String()
}

// Unwrap returns the sentinel error for error chaining, joined with the
// underlying cause when one exists, so callers can reach both the
// sentinel and the transport error (errors.Is(err, context.Canceled),
// errors.As into *url.Error).
func (e *APIError) Unwrap() error {
	if e.Cause != nil {
		return errors.Join(e.Err, e.Cause)
	}
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrLocked       = errors.New("resource locked")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
	ErrValidation   = errors.New("validation failed")
)

// SentinelForStatus maps an HTTP status code to a sentinel error.
func SentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status == http.StatusLocked:
		return ErrLocked
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= 500:
		return ErrServer
	default:
		return ErrBadRequest
	}
}

// newNetworkError wraps a transport failure as an APIError carrying ErrNetwork.
func newNetworkError(err error) error {
	return &APIError{Message: err.Error(), Err: ErrNetwork, Cause: err}
}

// newDecodeError wraps a JSON decode failure as an APIError carrying ErrDecode.
func newDecodeError(err error) error {
	return &APIError{Message: err.Error(), Err: ErrDecode, Cause: err}
}
