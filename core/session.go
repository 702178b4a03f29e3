package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Webex REST API endpoint.
const DefaultBaseURL = "https://webexapis.com/v1"

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"

// TokenSource supplies the bearer token for outgoing requests. A source
// may refresh the token on demand; implementations MUST be safe for
// concurrent calls.
type TokenSource interface {
	// Token returns a currently valid access token.
	Token(ctx context.Context) (string, error)
}

// Session owns the HTTP transport shared by every endpoint group: one
// http.Client with connection reuse, authentication, retries, rate
// limiting and request observation. Session is safe for concurrent use.
type Session struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	retry     RetryPolicy
	limiter   *rate.Limiter
	observer  RequestObserver
	userAgent string
	headers   http.Header
}

// NewSession creates a session authenticating with the given token source.
func NewSession(ts TokenSource, opts ...Option) *Session {
	s := &Session{
		baseURL:   DefaultBaseURL,
		http:      defaultHTTPClient(),
		tokens:    ts,
		retry:     DefaultRetryPolicy(),
		observer:  NoopObserver{},
		userAgent: "calla/" + Version,
		headers:   make(http.Header),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultHTTPClient returns an http.Client with a transport tuned for
// connection reuse against a single API host.
func defaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}
}

// URL joins path segments onto the session base URL.
func (s *Session) URL(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, strings.TrimRight(s.baseURL, "/"))
	for _, seg := range segments {
		parts = append(parts, strings.Trim(seg, "/"))
	}
	return strings.Join(parts, "/")
}

// response is the outcome of a successful (2xx) request.
type response struct {
	status int
	header http.Header
	body   []byte
}

// GetJSON issues a GET request and decodes the response body into out.
func (s *Session) GetJSON(ctx context.Context, url string, params url.Values, out any) error {
	resp, err := s.do(ctx, http.MethodGet, url, params, nil)
	if err != nil {
		return err
	}
	return decodeBody(resp, out)
}

// PostJSON issues a POST request with a JSON body and decodes the
// response into out. out may be nil when the response body is irrelevant.
func (s *Session) PostJSON(ctx context.Context, url string, params url.Values, in, out any) error {
	body, err := marshalBody(in)
	if err != nil {
		return err
	}
	resp, err := s.do(ctx, http.MethodPost, url, params, body)
	if err != nil {
		return err
	}
	return decodeBody(resp, out)
}

// PutJSON issues a PUT request with a JSON body and decodes the response
// into out. out may be nil when the response body is irrelevant.
func (s *Session) PutJSON(ctx context.Context, url string, params url.Values, in, out any) error {
	body, err := marshalBody(in)
	if err != nil {
		return err
	}
	resp, err := s.do(ctx, http.MethodPut, url, params, body)
	if err != nil {
		return err
	}
	return decodeBody(resp, out)
}

// Delete issues a DELETE request. A 2xx response is treated as success
// regardless of body.
func (s *Session) Delete(ctx context.Context, url string, params url.Values) error {
	_, err := s.do(ctx, http.MethodDelete, url, params, nil)
	return err
}

// marshalBody encodes a request payload, mapping failures to ErrDecode.
func marshalBody(in any) ([]byte, error) {
	if in == nil {
		return nil, nil
	}
	body, err := json.Marshal(in)
	if err != nil {
		return nil, newDecodeError(err)
	}
	return body, nil
}

// decodeBody decodes a 2xx response body into out, mapping failures to
// ErrDecode. A nil out discards the body.
func decodeBody(resp *response, out any) error {
	if out == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return newDecodeError(err)
	}
	return nil
}

// do executes one API call with retries. The request body is a byte
// slice, never a reader, so replays on retry are always safe.
func (s *Session) do(ctx context.Context, method, rawURL string, params url.Values, body []byte) (*response, error) {
	fullURL := rawURL
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		fullURL = rawURL + sep + params.Encode()
	}

	start := time.Now()
	s.observer.OnRequestStart(RequestStartEvent{
		Method: method,
		URL:    fullURL,
		Start:  start,
	})

	var (
		resp       *response
		lastErr    error
		trackingID string
		attempts   int
	)

retryLoop:
	for attempt := 0; ; attempt++ {
		attempts++
		trackingID = fmt.Sprintf("CALLA_%s_%d", uuid.NewString(), attempt)

		resp, lastErr = s.attempt(ctx, method, fullURL, body, trackingID)
		if lastErr == nil {
			break
		}

		// POST is replayed only when the server demonstrably did not
		// process the request (429 rate limit, 423 org lock).
		if !retryEligible(method, lastErr) {
			break
		}

		delay, shouldRetry := s.retry.NextDelay(attempt, lastErr)
		if !shouldRetry {
			break
		}

		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			break retryLoop
		case <-time.After(delay):
			continue
		}
	}

	end := RequestEndEvent{
		Method:     method,
		URL:        fullURL,
		TrackingID: trackingID,
		Start:      start,
		End:        time.Now(),
		Attempts:   attempts,
		Err:        lastErr,
	}
	var apiErr *APIError
	if resp != nil {
		end.Status = resp.status
	} else if errors.As(lastErr, &apiErr) {
		end.Status = apiErr.Status
	}
	s.observer.OnRequestEnd(end)

	if lastErr != nil {
		return nil, lastErr
	}
	return resp, nil
}

// attempt performs a single request/response cycle.
func (s *Session) attempt(ctx context.Context, method, url string, body []byte, trackingID string) (*response, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("token source: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, newNetworkError(err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("TrackingID", trackingID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range s.headers {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	httpResp, err := s.http.Do(req)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	if httpResp.StatusCode >= 400 {
		return nil, newStatusError(httpResp.StatusCode, httpResp.Header, respBody)
	}

	return &response{
		status: httpResp.StatusCode,
		header: httpResp.Header,
		body:   respBody,
	}, nil
}

// retryEligible reports whether the verb may be replayed for the given
// failure. Non-idempotent verbs are retried only on 429/423, where the
// server rejected the request before processing it.
func retryEligible(method string, err error) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	default:
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr.Status == http.StatusTooManyRequests || apiErr.Status == http.StatusLocked
		}
		return false
	}
}

// webexErrorBody is the JSON shape of a Webex error response.
type webexErrorBody struct {
	Message    string        `json:"message"`
	Errors     []ErrorDetail `json:"errors"`
	TrackingID string        `json:"trackingId"`
}

// newStatusError builds the APIError for a non-2xx response.
func newStatusError(status int, header http.Header, body []byte) error {
	apiErr := &APIError{
		Status:  status,
		Message: http.StatusText(status),
		Err:     SentinelForStatus(status),
	}

	var parsed webexErrorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		apiErr.Details = parsed.Errors
		apiErr.TrackingID = parsed.TrackingID
	}
	if apiErr.TrackingID == "" {
		apiErr.TrackingID = header.Get("TrackingID")
	}

	if status == http.StatusTooManyRequests || status == http.StatusLocked {
		if secs, err := strconv.Atoi(header.Get("Retry-After")); err == nil && secs > 0 {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}

	return apiErr
}
