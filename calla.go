// Package calla is a Go client for the Webex REST API: messaging, people
// and workspace management, and Webex Calling configuration.
//
// A Client bundles every endpoint group over one shared session:
//
//	client := calla.New(os.Getenv("CALLA_ACCESS_TOKEN"))
//	rooms, err := client.Rooms.List(nil).All(ctx)
//
// Tokens obtained interactively come from the auth package; session
// behavior (base URL, retries, rate limiting, observers) is tuned with
// core options.
package calla

import (
	"github.com/petal-labs/calla/auth"
	"github.com/petal-labs/calla/core"
	"github.com/petal-labs/calla/licenses"
	"github.com/petal-labs/calla/locations"
	"github.com/petal-labs/calla/messages"
	"github.com/petal-labs/calla/people"
	"github.com/petal-labs/calla/personsettings"
	"github.com/petal-labs/calla/rooms"
	"github.com/petal-labs/calla/telephony"
	"github.com/petal-labs/calla/webhooks"
	"github.com/petal-labs/calla/workspaces"
)

// Client is the entry point to the Webex API. All endpoint groups share
// one session, so retry policy, rate limiting, and observers configured
// at construction apply across the whole client.
type Client struct {
	// Rooms manages the spaces people collaborate in.
	Rooms *rooms.API
	// Messages posts and reads messages in rooms and 1:1 conversations.
	Messages *messages.API
	// People manages users of the organization.
	People *people.API
	// Webhooks manages event subscriptions.
	Webhooks *webhooks.API
	// Locations manages the physical locations of the organization.
	Locations *locations.API
	// Licenses reads the organization's license allocations.
	Licenses *licenses.API
	// Workspaces manages shared meeting and huddle spaces.
	Workspaces *workspaces.API
	// PersonSettings configures per-person calling features.
	PersonSettings *personsettings.API
	// Telephony configures Webex Calling locations and premises PSTN.
	Telephony *telephony.API

	session *core.Session
}

// New creates a client authenticating with a fixed access token.
func New(token string, opts ...core.Option) *Client {
	return NewWithTokenSource(auth.StaticToken(token), opts...)
}

// NewWithTokenSource creates a client over any token source, such as a
// refreshing OAuth integration source or a guest issuer source.
func NewWithTokenSource(ts core.TokenSource, opts ...core.Option) *Client {
	session := core.NewSession(ts, opts...)
	return &Client{
		Rooms:          rooms.New(session),
		Messages:       messages.New(session),
		People:         people.New(session),
		Webhooks:       webhooks.New(session),
		Locations:      locations.New(session),
		Licenses:       licenses.New(session),
		Workspaces:     workspaces.New(session),
		PersonSettings: personsettings.New(session),
		Telephony:      telephony.New(session),
		session:        session,
	}
}

// Session exposes the underlying session, for callers that need to issue
// requests against endpoints the typed APIs do not cover yet.
func (c *Client) Session() *core.Session {
	return c.session
}
