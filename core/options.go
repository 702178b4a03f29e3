package core

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Session.
type Option func(*Session)

// WithBaseURL overrides the API base URL. Useful for testing against a
// fake server or routing through a gateway.
func WithBaseURL(baseURL string) Option {
	return func(s *Session) {
		if baseURL != "" {
			s.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Session) {
		if client != nil {
			s.http = client
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.http.Timeout = d
		}
	}
}

// WithRetryPolicy sets the retry policy for the session.
func WithRetryPolicy(r RetryPolicy) Option {
	return func(s *Session) {
		if r != nil {
			s.retry = r
		}
	}
}

// WithRateLimiter installs a client-side rate limiter. Every request
// attempt waits on the limiter before being sent.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(s *Session) {
		s.limiter = l
	}
}

// WithObserver sets the request observer for the session.
func WithObserver(o RequestObserver) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Session) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithHeader adds a header to every outgoing request.
func WithHeader(key, value string) Option {
	return func(s *Session) {
		s.headers.Set(key, value)
	}
}
