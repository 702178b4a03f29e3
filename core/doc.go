// Package core provides the calla session and the types shared by every
// endpoint group of the Webex REST API.
//
// # Session
//
// The primary entry point is [Session], which owns the HTTP transport,
// authentication, retries, pagination and request observation. Endpoint
// group packages (rooms, messages, people, ...) are thin typed facades over
// one shared session:
//
//	session := core.NewSession(auth.StaticToken("ey..."),
//	    core.WithObserver(core.NewZerologObserver(logger)),
//	    core.WithRetryPolicy(core.DefaultRetryPolicy()),
//	)
//	api := rooms.New(session)
//
// Most callers should not construct a Session directly; the calla root
// package wires one session into every endpoint group.
//
// # Pagination
//
// List operations return a [Pager], a scanner-style iterator that follows
// the RFC 5988 Link headers Webex uses to split long result sets:
//
//	pager := api.List(nil)
//	for pager.Next(ctx) {
//	    room := pager.Item()
//	    fmt.Println(room.Title)
//	}
//	if err := pager.Err(); err != nil {
//	    return err
//	}
//
// Use [Pager.All] to collect every remaining item into a slice.
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//   - [ErrBadRequest]: the request was rejected (400)
//   - [ErrUnauthorized]: missing or invalid access token (401)
//   - [ErrForbidden]: the token lacks the required scope (403)
//   - [ErrNotFound]: the resource does not exist (404)
//   - [ErrConflict]: the request conflicts with current state (409)
//   - [ErrLocked]: the organization is temporarily locked (423)
//   - [ErrRateLimited]: too many requests (429)
//   - [ErrServer]: Webex server error (5xx)
//   - [ErrNetwork]: the request never produced a response
//   - [ErrDecode]: a response body could not be parsed
//   - [ErrValidation]: a request payload failed local validation
//
// Every failed API call yields an [*APIError] that wraps one of the
// sentinels, so both styles work:
//
//	if errors.Is(err, core.ErrRateLimited) { ... }
//
//	var apiErr *core.APIError
//	if errors.As(err, &apiErr) {
//	    log.Println(apiErr.TrackingID)
//	}
//
// # Retry Policy
//
// Transient failures (429, 423, 5xx on idempotent verbs, network errors)
// are retried with exponential backoff and jitter. When Webex supplies a
// Retry-After header the server value wins. Configure with
// [WithRetryPolicy]; disable with [NoRetryPolicy].
//
// # Request Observation
//
// Implement [RequestObserver] to watch the request lifecycle. Events carry
// operational metadata only (method, URL, status, tracking ID, timing,
// attempt); access tokens and payload bodies are never included.
// [NewZerologObserver] adapts any zerolog logger into an observer.
//
// # Thread Safety
//
// [Session] is safe for concurrent use. [Pager] is not; each goroutine
// should create its own via the List call.
package core
