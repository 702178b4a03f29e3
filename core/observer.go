package core

import (
	"time"

	"github.com/rs/zerolog"
)

// RequestObserver receives notifications about request lifecycle events.
// Implementations can use this for logging, metrics, tracing, etc.
//
// # Security Considerations
//
// Event types are designed to NEVER include sensitive data:
//   - Access tokens are NEVER included (stored separately as core.Secret)
//   - Request and response bodies are NEVER included
//   - Only operational metadata is exposed (method, URL, status, tracking
//     ID, timing, attempt count)
//
// This design ensures that observer output can be safely logged to disk,
// sent to external monitoring systems, and stored long-term for debugging.
//
// If extending this interface, maintain these security properties. Never
// add fields that could contain: tokens, message text, or any other
// potentially sensitive content.
type RequestObserver interface {
	// OnRequestStart is called before a request is sent, once per API call
	// (not once per retry attempt).
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called when a request completes, after all retries.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Method string    // HTTP method
	URL    string    // Request URL (path and query, no credentials)
	Start  time.Time // When the request started
}

// RequestEndEvent contains metadata about a completed request.
type RequestEndEvent struct {
	Method     string    // HTTP method
	URL        string    // Request URL
	Status     int       // HTTP status code, 0 when no response was received
	TrackingID string    // Correlation ID sent with the final attempt
	Start      time.Time // When the request started
	End        time.Time // When the request completed
	Attempts   int       // Total attempts including the first
	Err        error     // Error if the request failed, nil on success
}

// Duration returns the elapsed time for the request including retries.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopObserver is a no-op implementation of RequestObserver.
// Use this as a default when no observer is configured.
type NoopObserver struct{}

// OnRequestStart does nothing.
func (NoopObserver) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopObserver) OnRequestEnd(RequestEndEvent) {}

// Compile-time check that NoopObserver implements RequestObserver.
var _ RequestObserver = NoopObserver{}

// ZerologObserver logs request lifecycle events through a zerolog logger.
// Starts are logged at debug level, completions at debug on success and
// warn on failure.
type ZerologObserver struct {
	log zerolog.Logger
}

// NewZerologObserver wraps the given logger in an observer.
func NewZerologObserver(log zerolog.Logger) *ZerologObserver {
	return &ZerologObserver{log: log}
}

// OnRequestStart logs the outgoing request.
func (o *ZerologObserver) OnRequestStart(e RequestStartEvent) {
	o.log.Debug().
		Str("method", e.Method).
		Str("url", e.URL).
		Msg("request start")
}

// OnRequestEnd logs the completed request.
func (o *ZerologObserver) OnRequestEnd(e RequestEndEvent) {
	ev := o.log.Debug()
	if e.Err != nil {
		ev = o.log.Warn().Err(e.Err)
	}
	ev.Str("method", e.Method).
		Str("url", e.URL).
		Int("status", e.Status).
		Str("tracking_id", e.TrackingID).
		Int("attempts", e.Attempts).
		Dur("duration", e.Duration()).
		Msg("request end")
}

// Compile-time check that ZerologObserver implements RequestObserver.
var _ RequestObserver = (*ZerologObserver)(nil)
