// Package telephony implements the Webex Calling configuration endpoints
// under /telephony/config: location call park and paging groups plus the
// premises PSTN objects (trunks, route groups, route lists).
//
// Unlike the collaboration endpoints these APIs are administrative: they
// require an administrator token and most of them are scoped to a calling
// location. List envelopes use per-resource keys instead of the usual
// "items" array.
package telephony

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petal-labs/calla/core"
)

// API bundles the Webex Calling configuration APIs over a shared session.
type API struct {
	// CallPark manages location call park extensions.
	CallPark *CallParkAPI
	// Paging manages location group paging.
	Paging *PagingAPI
	// PremPSTN manages premises PSTN trunking objects.
	PremPSTN *PremPSTNAPI

	session *core.Session
}

// New creates the telephony configuration APIs over the given session.
func New(s *core.Session) *API {
	return &API{
		CallPark: &CallParkAPI{session: s},
		Paging:   &PagingAPI{session: s},
		PremPSTN: &PremPSTNAPI{
			Trunk:      &TrunkAPI{session: s},
			RouteGroup: &RouteGroupAPI{session: s},
			RouteList:  &RouteListAPI{session: s},
		},
		session: s,
	}
}

// GeneratePassword asks the server for a password that satisfies the
// location's trunk password policy. The result is a suggestion; it is not
// stored anywhere.
func (a *API) GeneratePassword(ctx context.Context, locationID string) (string, error) {
	if err := requireID("locationID", locationID); err != nil {
		return "", err
	}
	var resp struct {
		ExampleSecurePassword string `json:"exampleSecurePassword"`
	}
	u := a.session.URL("telephony", "config", "locations", locationID, "actions", "generatePassword", "invoke")
	if err := a.session.PostJSON(ctx, u, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.ExampleSecurePassword, nil
}

// PersonPlaceAgent is a person or workspace acting as an agent of a call
// park or paging group. On writes only the ID is sent.
type PersonPlaceAgent struct {
	// ID is the unique identifier of the person or workspace.
	ID string `json:"id"`
	// FirstName is the agent's first name. Read-only.
	FirstName string `json:"firstName,omitempty"`
	// LastName is the agent's last name. Read-only.
	LastName string `json:"lastName,omitempty"`
	// DisplayName is the agent's display name. Read-only.
	DisplayName string `json:"displayName,omitempty"`
	// Type distinguishes PEOPLE from PLACE entries. Read-only.
	Type string `json:"type,omitempty"`
	// Email is the agent's email address. Read-only.
	Email string `json:"email,omitempty"`
	// Numbers holds the agent's phone numbers. Read-only.
	Numbers []AgentNumber `json:"numbers,omitempty"`
}

// AgentNumber is one phone number of an agent.
type AgentNumber struct {
	// External is the external (PSTN) number.
	External string `json:"external,omitempty"`
	// Extension is the on-net extension.
	Extension string `json:"extension,omitempty"`
	// Primary marks the primary number.
	Primary bool `json:"primary,omitempty"`
}

// agentIDs collapses agents to the bare IDs sent on create and update.
func agentIDs(agents []PersonPlaceAgent) []string {
	if len(agents) == 0 {
		return nil
	}
	ids := make([]string, len(agents))
	for i, agent := range agents {
		ids[i] = agent.ID
	}
	return ids
}

// newIDResponse is the body of every create call in this package: the
// server assigns the ID and returns nothing else.
type newIDResponse struct {
	ID string `json:"id"`
}

// listParams builds the shared query of the location-scoped list calls.
func listParams(name string, max int) url.Values {
	params := url.Values{}
	if name != "" {
		params.Set("name", name)
	}
	if max > 0 {
		params.Set("max", strconv.Itoa(max))
	}
	return params
}

// requireID is the shared argument check for path parameters.
func requireID(name, value string) error {
	if value == "" {
		return &core.ValidationError{Fields: []string{name + ": required"}}
	}
	return nil
}
