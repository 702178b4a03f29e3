package core

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestAPIErrorImplementsError(t *testing.T) {
	err := &APIError{
		Status:     404,
		Message:    "Room not found",
		TrackingID: "CALLA_abc_0",
		Err:        ErrNotFound,
	}

	msg := err.Error()
	for _, want := range []string{"Room not found", "status=404", "tracking_id=CALLA_abc_0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestAPIErrorIncludesDetails(t *testing.T) {
	err := &APIError{
		Status:  400,
		Message: "The request was invalid",
		Details: []ErrorDetail{
			{Description: "roomId is required"},
			{Description: "title must not be empty"},
		},
		Err: ErrBadRequest,
	}

	msg := err.Error()
	if !strings.Contains(msg, "roomId is required") {
		t.Errorf("Error() = %q, missing first detail", msg)
	}
	if !strings.Contains(msg, "title must not be empty") {
		t.Errorf("Error() = %q, missing second detail", msg)
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	err := &APIError{Status: 429, Message: "slow down", Err: ErrRateLimited}

	if !errors.Is(err, ErrRateLimited) {
		t.Error("errors.Is(err, ErrRateLimited) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = true, want false")
	}
}

func TestNetworkErrorKeepsCause(t *testing.T) {
	cause := &url.Error{Op: "Get", URL: "https://example.com", Err: context.Canceled}
	err := newNetworkError(cause)

	if !errors.Is(err, ErrNetwork) {
		t.Error("errors.Is(err, ErrNetwork) = false, want true")
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("errors.Is(err, context.Canceled) = false, want true")
	}
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		t.Error("errors.As into *url.Error = false, want true")
	}
}

func TestDecodeErrorKeepsCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := newDecodeError(cause)

	if !errors.Is(err, ErrDecode) {
		t.Error("errors.Is(err, ErrDecode) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestSentinelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusLocked, ErrLocked},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
		{http.StatusServiceUnavailable, ErrServer},
		{http.StatusTeapot, ErrBadRequest},
	}

	for _, tt := range tests {
		if got := SentinelForStatus(tt.status); got != tt.want {
			t.Errorf("SentinelForStatus(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestErrorsAsAPIError(t *testing.T) {
	var err error = &APIError{Status: 403, Message: "nope", Err: ErrForbidden}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As failed to extract *APIError")
	}
	if apiErr.Status != 403 {
		t.Errorf("Status = %d, want 403", apiErr.Status)
	}
}
