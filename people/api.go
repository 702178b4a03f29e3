// Package people implements the /people endpoint group: the directory of
// users, bots and appusers visible to the authenticated user.
package people

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/petal-labs/calla/core"
)

// API exposes the people operations over a shared session.
type API struct {
	session *core.Session
}

// New creates the people API over the given session.
func New(s *core.Session) *API {
	return &API{session: s}
}

// RequestOption adjusts the query of a single person operation.
type RequestOption func(url.Values)

// WithCallingData asks for Webex Calling user details in the returned
// person. Admin only; ignored by the server for other callers.
func WithCallingData() RequestOption {
	return func(params url.Values) {
		params.Set("callingData", "true")
	}
}

func requestParams(opts []RequestOption) url.Values {
	if len(opts) == 0 {
		return nil
	}
	params := url.Values{}
	for _, opt := range opts {
		opt(params)
	}
	return params
}

// List lists people in the organization. Admins can list everyone;
// regular users must filter by Email or DisplayName.
func (a *API) List(opts *ListOptions) *core.Pager[Person] {
	params := url.Values{}
	if opts != nil {
		if opts.Email != "" {
			params.Set("email", opts.Email)
		}
		if opts.DisplayName != "" {
			params.Set("displayName", opts.DisplayName)
		}
		if len(opts.IDs) > 0 {
			params.Set("id", strings.Join(opts.IDs, ","))
		}
		if opts.OrgID != "" {
			params.Set("orgId", opts.OrgID)
		}
		if opts.CallingData {
			params.Set("callingData", "true")
		}
		if opts.Max > 0 {
			params.Set("max", strconv.Itoa(opts.Max))
		}
	}
	return core.NewPager[Person](a.session, a.session.URL("people"), params)
}

// Create creates a person in the organization. Admin only; requires a
// full administrator token.
func (a *API) Create(ctx context.Context, req *CreatePersonRequest, opts ...RequestOption) (*Person, error) {
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var person Person
	if err := a.session.PostJSON(ctx, a.session.URL("people"), requestParams(opts), req, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Details shows details for a person, by ID.
func (a *API) Details(ctx context.Context, personID string, opts ...RequestOption) (*Person, error) {
	if personID == "" {
		return nil, &core.ValidationError{Fields: []string{"personID: required"}}
	}
	var person Person
	if err := a.session.GetJSON(ctx, a.session.URL("people", personID), requestParams(opts), &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Me shows the profile of the authenticated user.
func (a *API) Me(ctx context.Context) (*Person, error) {
	var person Person
	if err := a.session.GetJSON(ctx, a.session.URL("people", "me"), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Update updates a person, by ID. Admin only.
func (a *API) Update(ctx context.Context, personID string, req *UpdatePersonRequest, opts ...RequestOption) (*Person, error) {
	if personID == "" {
		return nil, &core.ValidationError{Fields: []string{"personID: required"}}
	}
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var person Person
	if err := a.session.PutJSON(ctx, a.session.URL("people", personID), requestParams(opts), req, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// Delete removes a person from the organization, by ID. Admin only.
func (a *API) Delete(ctx context.Context, personID string) error {
	if personID == "" {
		return &core.ValidationError{Fields: []string{"personID: required"}}
	}
	return a.session.Delete(ctx, a.session.URL("people", personID), nil)
}
