package core

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// staticToken is a trivial TokenSource for tests.
type staticToken string

func (t staticToken) Token(ctx context.Context) (string, error) {
	return string(t), nil
}

func newTestSession(serverURL string, opts ...Option) *Session {
	opts = append([]Option{WithBaseURL(serverURL)}, opts...)
	return NewSession(staticToken("test-token"), opts...)
}

func TestSessionGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %q, want GET", r.Method)
		}
		if r.URL.Path != "/rooms/room-1" {
			t.Errorf("Path = %q, want /rooms/room-1", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", got)
		}
		if got := r.Header.Get("TrackingID"); !strings.HasPrefix(got, "CALLA_") {
			t.Errorf("TrackingID = %q, want CALLA_ prefix", got)
		}
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "calla/") {
			t.Errorf("User-Agent = %q, want calla/ prefix", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "room-1", "title": "Ops"})
	}))
	defer server.Close()

	s := newTestSession(server.URL)
	var out struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := s.GetJSON(context.Background(), s.URL("rooms", "room-1"), nil, &out); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if out.ID != "room-1" || out.Title != "Ops" {
		t.Errorf("out = %+v, want id=room-1 title=Ops", out)
	}
}

func TestSessionPostJSONSetsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %q, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"title":"EraseMe"`) {
			t.Errorf("body = %s, missing title", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "new-room"})
	}))
	defer server.Close()

	s := newTestSession(server.URL)
	in := map[string]string{"title": "EraseMe"}
	var out struct {
		ID string `json:"id"`
	}
	if err := s.PostJSON(context.Background(), s.URL("rooms"), nil, in, &out); err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
	if out.ID != "new-room" {
		t.Errorf("ID = %q, want new-room", out.ID)
	}
}

func TestSessionQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("teamId") != "team-9" {
			t.Errorf("teamId = %q, want team-9", q.Get("teamId"))
		}
		if q.Get("max") != "50" {
			t.Errorf("max = %q, want 50", q.Get("max"))
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := newTestSession(server.URL)
	params := url.Values{}
	params.Set("teamId", "team-9")
	params.Set("max", "50")
	if err := s.GetJSON(context.Background(), s.URL("rooms"), params, nil); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
}

func TestSessionDecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{
			"message": "The requested resource could not be found.",
			"errors": [{"description": "Room not found for ID room-x"}],
			"trackingId": "ROUTER_123-456"
		}`))
	}))
	defer server.Close()

	s := newTestSession(server.URL)
	err := s.GetJSON(context.Background(), s.URL("rooms", "room-x"), nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(err, ErrNotFound) = false; err = %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Status != 404 {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "The requested resource could not be found." {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.TrackingID != "ROUTER_123-456" {
		t.Errorf("TrackingID = %q, want ROUTER_123-456", apiErr.TrackingID)
	}
	if len(apiErr.Details) != 1 || apiErr.Details[0].Description != "Room not found for ID room-x" {
		t.Errorf("Details = %+v", apiErr.Details)
	}
}

func TestSessionTrackingIDFromHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("TrackingID", "HDR_789")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	s := newTestSession(server.URL)
	err := s.GetJSON(context.Background(), s.URL("rooms"), nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.TrackingID != "HDR_789" {
		t.Errorf("TrackingID = %q, want HDR_789 from response header", apiErr.TrackingID)
	}
}

func TestSessionRetriesOn429(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"id":"ok"}`))
	}))
	defer server.Close()

	s := newTestSession(server.URL, WithRetryPolicy(NewRetryPolicy(RetryConfig{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Jitter:     0,
	})))

	var out struct {
		ID string `json:"id"`
	}
	if err := s.GetJSON(context.Background(), s.URL("rooms"), nil, &out); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("handler calls = %d, want 2", got)
	}
	if out.ID != "ok" {
		t.Errorf("ID = %q, want ok", out.ID)
	}
}

func TestSessionRetriesPostOn429Only(t *testing.T) {
	t.Run("retries 429", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		s := newTestSession(server.URL, WithRetryPolicy(NewRetryPolicy(RetryConfig{
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
			Jitter:     0,
		})))
		if err := s.PostJSON(context.Background(), s.URL("messages"), nil, map[string]string{}, nil); err != nil {
			t.Fatalf("PostJSON() error = %v", err)
		}
		if got := calls.Load(); got != 2 {
			t.Errorf("handler calls = %d, want 2", got)
		}
	})

	t.Run("does not retry 500", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		s := newTestSession(server.URL, WithRetryPolicy(NewRetryPolicy(RetryConfig{
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
			Jitter:     0,
		})))
		err := s.PostJSON(context.Background(), s.URL("messages"), nil, map[string]string{}, nil)
		if !errors.Is(err, ErrServer) {
			t.Fatalf("error = %v, want ErrServer", err)
		}
		if got := calls.Load(); got != 1 {
			t.Errorf("handler calls = %d, want 1 (POST must not replay on 5xx)", got)
		}
	})
}

func TestSessionPostBodyReplaysOnRetry(t *testing.T) {
	var calls atomic.Int32
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(body))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := newTestSession(server.URL, WithRetryPolicy(NewRetryPolicy(RetryConfig{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		Jitter:     0,
	})))
	if err := s.PostJSON(context.Background(), s.URL("messages"), nil, map[string]string{"text": "hi"}, nil); err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("handler calls = %d, want 2", len(bodies))
	}
	if bodies[0] != bodies[1] {
		t.Errorf("retry body %q differs from original %q", bodies[1], bodies[0])
	}
}

func TestSessionDoesNotRetryNonRetryable(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	s := newTestSession(server.URL)
	err := s.GetJSON(context.Background(), s.URL("rooms"), nil, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("handler calls = %d, want 1", got)
	}
}

func TestSessionContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := newTestSession(server.URL, WithRetryPolicy(NewRetryPolicy(RetryConfig{
		MaxRetries: 5,
		BaseDelay:  time.Hour, // the delay wait must be interrupted by ctx
		Jitter:     0,
	})))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.GetJSON(ctx, s.URL("rooms"), nil, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestSessionNetworkError(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s := newTestSession(server.URL, WithRetryPolicy(NoRetryPolicy()))
	err := s.GetJSON(context.Background(), s.URL("rooms"), nil, nil)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestSessionDeleteSendsNoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Method = %q, want DELETE", r.Method)
		}
		if r.Header.Get("Content-Type") != "" {
			t.Errorf("Content-Type = %q, want empty", r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	s := newTestSession(server.URL)
	if err := s.Delete(context.Background(), s.URL("rooms", "room-1"), nil); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestSessionExtraHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("X-Custom = %q, want yes", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	s := newTestSession(server.URL, WithHeader("X-Custom", "yes"))
	if err := s.GetJSON(context.Background(), s.URL("rooms"), nil, nil); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
}

// recordingObserver captures observer events for assertions.
type recordingObserver struct {
	starts []RequestStartEvent
	ends   []RequestEndEvent
}

func (o *recordingObserver) OnRequestStart(e RequestStartEvent) { o.starts = append(o.starts, e) }
func (o *recordingObserver) OnRequestEnd(e RequestEndEvent)     { o.ends = append(o.ends, e) }

func TestSessionObserverEvents(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	obs := &recordingObserver{}
	s := newTestSession(server.URL,
		WithObserver(obs),
		WithRetryPolicy(NewRetryPolicy(RetryConfig{
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
			Jitter:     0,
		})))

	if err := s.GetJSON(context.Background(), s.URL("rooms"), nil, nil); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}

	if len(obs.starts) != 1 {
		t.Fatalf("starts = %d, want 1 (one per call, not per attempt)", len(obs.starts))
	}
	if len(obs.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(obs.ends))
	}

	end := obs.ends[0]
	if end.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", end.Attempts)
	}
	if end.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", end.Status)
	}
	if end.Err != nil {
		t.Errorf("Err = %v, want nil", end.Err)
	}
	if !strings.HasPrefix(end.TrackingID, "CALLA_") {
		t.Errorf("TrackingID = %q, want CALLA_ prefix", end.TrackingID)
	}
	if strings.Contains(end.URL, "test-token") {
		t.Error("observer event URL must not contain the access token")
	}
}

func TestSessionObserverErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	obs := &recordingObserver{}
	s := newTestSession(server.URL, WithObserver(obs))

	_ = s.GetJSON(context.Background(), s.URL("rooms"), nil, nil)
	if len(obs.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(obs.ends))
	}
	if obs.ends[0].Status != http.StatusForbidden {
		t.Errorf("Status = %d, want 403", obs.ends[0].Status)
	}
	if obs.ends[0].Err == nil {
		t.Error("Err = nil, want error")
	}
}

func TestSessionURL(t *testing.T) {
	s := NewSession(staticToken("t"), WithBaseURL("https://example.com/v1/"))

	tests := []struct {
		segments []string
		want     string
	}{
		{[]string{"rooms"}, "https://example.com/v1/rooms"},
		{[]string{"rooms", "abc"}, "https://example.com/v1/rooms/abc"},
		{[]string{"people", "p-1", "features", "privacy"}, "https://example.com/v1/people/p-1/features/privacy"},
	}
	for _, tt := range tests {
		if got := s.URL(tt.segments...); got != tt.want {
			t.Errorf("URL(%v) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}
