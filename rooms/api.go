// Package rooms implements the /rooms endpoint group: the virtual spaces
// where people post messages and collaborate.
package rooms

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petal-labs/calla/core"
)

// API exposes the rooms operations over a shared session.
type API struct {
	session *core.Session
}

// New creates the rooms API over the given session.
func New(s *core.Session) *API {
	return &API{session: s}
}

// List lists rooms visible to the authenticated user. Long result sets
// are split into pages; the returned pager fetches them on demand.
func (a *API) List(opts *ListOptions) *core.Pager[Room] {
	params := url.Values{}
	if opts != nil {
		if opts.TeamID != "" {
			params.Set("teamId", opts.TeamID)
		}
		if opts.Type != "" {
			params.Set("type", string(opts.Type))
		}
		if opts.SortBy != "" {
			params.Set("sortBy", opts.SortBy)
		}
		if opts.Max > 0 {
			params.Set("max", strconv.Itoa(opts.Max))
		}
	}
	return core.NewPager[Room](a.session, a.session.URL("rooms"), params)
}

// Create creates a room. The authenticated user is automatically added as
// a member. To create a 1:1 room, send a message directly to another
// person instead (see the messages package).
func (a *API) Create(ctx context.Context, req *CreateRoomRequest) (*Room, error) {
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var room Room
	if err := a.session.PostJSON(ctx, a.session.URL("rooms"), nil, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// Details shows details for a room, by ID.
func (a *API) Details(ctx context.Context, roomID string) (*Room, error) {
	if roomID == "" {
		return nil, &core.ValidationError{Fields: []string{"roomID: required"}}
	}
	var room Room
	if err := a.session.GetJSON(ctx, a.session.URL("rooms", roomID), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// MeetingDetails shows the Webex meeting details for a room: SIP address,
// meeting URL, toll-free and toll dial-in numbers.
func (a *API) MeetingDetails(ctx context.Context, roomID string) (*RoomMeeting, error) {
	if roomID == "" {
		return nil, &core.ValidationError{Fields: []string{"roomID: required"}}
	}
	var meeting RoomMeeting
	if err := a.session.GetJSON(ctx, a.session.URL("rooms", roomID, "meetingInfo"), nil, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Update updates details for a room, by ID.
func (a *API) Update(ctx context.Context, roomID string, req *UpdateRoomRequest) (*Room, error) {
	if roomID == "" {
		return nil, &core.ValidationError{Fields: []string{"roomID: required"}}
	}
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var room Room
	if err := a.session.PutJSON(ctx, a.session.URL("rooms", roomID), nil, req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete deletes a room, by ID. Deleted rooms cannot be recovered.
// Deleting a room that is part of a team archives the room instead.
func (a *API) Delete(ctx context.Context, roomID string) error {
	if roomID == "" {
		return &core.ValidationError{Fields: []string{"roomID: required"}}
	}
	return a.session.Delete(ctx, a.session.URL("rooms", roomID), nil)
}
