// Package workspaces implements the /workspaces endpoint group: bookable
// physical places (rooms, desks) equipped with Webex devices.
package workspaces

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petal-labs/calla/core"
)

// API exposes the workspaces operations over a shared session.
type API struct {
	session *core.Session
}

// New creates the workspaces API over the given session.
func New(s *core.Session) *API {
	return &API{session: s}
}

// List lists workspaces matching the given filters.
func (a *API) List(opts *ListOptions) *core.Pager[Workspace] {
	params := url.Values{}
	if opts != nil {
		if opts.LocationID != "" {
			params.Set("workspaceLocationId", opts.LocationID)
		}
		if opts.FloorID != "" {
			params.Set("floorId", opts.FloorID)
		}
		if opts.DisplayName != "" {
			params.Set("displayName", opts.DisplayName)
		}
		if opts.Capacity > 0 {
			params.Set("capacity", strconv.Itoa(opts.Capacity))
		}
		if opts.Type != "" {
			params.Set("type", string(opts.Type))
		}
		if opts.Calling != "" {
			params.Set("calling", string(opts.Calling))
		}
		if opts.Calendar != "" {
			params.Set("calendar", string(opts.Calendar))
		}
		if opts.OrgID != "" {
			params.Set("orgId", opts.OrgID)
		}
		if opts.Max > 0 {
			params.Set("max", strconv.Itoa(opts.Max))
		}
	}
	return core.NewPager[Workspace](a.session, a.session.URL("workspaces"), params)
}

// Create creates a workspace.
func (a *API) Create(ctx context.Context, req *CreateWorkspaceRequest) (*Workspace, error) {
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var ws Workspace
	if err := a.session.PostJSON(ctx, a.session.URL("workspaces"), nil, req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Details shows details for a workspace, by ID.
func (a *API) Details(ctx context.Context, workspaceID string) (*Workspace, error) {
	if workspaceID == "" {
		return nil, &core.ValidationError{Fields: []string{"workspaceID: required"}}
	}
	var ws Workspace
	if err := a.session.GetJSON(ctx, a.session.URL("workspaces", workspaceID), nil, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Update updates a workspace, by ID.
func (a *API) Update(ctx context.Context, workspaceID string, req *UpdateWorkspaceRequest) (*Workspace, error) {
	if workspaceID == "" {
		return nil, &core.ValidationError{Fields: []string{"workspaceID: required"}}
	}
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var ws Workspace
	if err := a.session.PutJSON(ctx, a.session.URL("workspaces", workspaceID), nil, req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// Delete deletes a workspace, by ID. Devices in the workspace are
// reset to factory settings.
func (a *API) Delete(ctx context.Context, workspaceID string) error {
	if workspaceID == "" {
		return &core.ValidationError{Fields: []string{"workspaceID: required"}}
	}
	return a.session.Delete(ctx, a.session.URL("workspaces", workspaceID), nil)
}
