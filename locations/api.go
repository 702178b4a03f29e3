// Package locations implements the /locations endpoint group: the
// physical sites of an organization, used heavily by the telephony APIs.
package locations

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petal-labs/calla/core"
)

// API exposes the locations operations over a shared session.
type API struct {
	session *core.Session
}

// New creates the locations API over the given session.
func New(s *core.Session) *API {
	return &API{session: s}
}

// List lists locations visible to the authenticated user.
func (a *API) List(opts *ListOptions) *core.Pager[Location] {
	params := url.Values{}
	if opts != nil {
		if opts.Name != "" {
			params.Set("name", opts.Name)
		}
		if opts.ID != "" {
			params.Set("id", opts.ID)
		}
		if opts.OrgID != "" {
			params.Set("orgId", opts.OrgID)
		}
		if opts.Max > 0 {
			params.Set("max", strconv.Itoa(opts.Max))
		}
	}
	return core.NewPager[Location](a.session, a.session.URL("locations"), params)
}

// Details shows details for a location, by ID.
func (a *API) Details(ctx context.Context, locationID string) (*Location, error) {
	if locationID == "" {
		return nil, &core.ValidationError{Fields: []string{"locationID: required"}}
	}
	var loc Location
	if err := a.session.GetJSON(ctx, a.session.URL("locations", locationID), nil, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// Create creates a location. Admin only. The response carries only the
// new location's ID; fetch details for the full record.
func (a *API) Create(ctx context.Context, req *CreateLocationRequest) (string, error) {
	if err := core.Validate(req); err != nil {
		return "", err
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := a.session.PostJSON(ctx, a.session.URL("locations"), nil, req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Update updates a location, by ID. Admin only.
func (a *API) Update(ctx context.Context, locationID string, req *UpdateLocationRequest) error {
	if locationID == "" {
		return &core.ValidationError{Fields: []string{"locationID: required"}}
	}
	if err := core.Validate(req); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.session.URL("locations", locationID), nil, req, nil)
}
