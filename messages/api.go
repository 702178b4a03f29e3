// Package messages implements the /messages endpoint group. Messages are
// how people communicate in rooms; each can carry plain text, Markdown,
// file URLs and adaptive card attachments.
//
// Just like in the Webex app, the authenticated user must be a member of
// a room to target it with this API.
package messages

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/petal-labs/calla/core"
)

// API exposes the messages operations over a shared session.
type API struct {
	session *core.Session
}

// New creates the messages API over the given session.
func New(s *core.Session) *API {
	return &API{session: s}
}

// List lists messages in a room, sorted in descending order by creation
// date. opts.RoomID is required.
func (a *API) List(opts *ListOptions) *core.Pager[Message] {
	params := url.Values{}
	if opts != nil {
		if opts.RoomID != "" {
			params.Set("roomId", opts.RoomID)
		}
		if opts.ParentID != "" {
			params.Set("parentId", opts.ParentID)
		}
		if len(opts.MentionedPeople) > 0 {
			params.Set("mentionedPeople", strings.Join(opts.MentionedPeople, ","))
		}
		if !opts.Before.IsZero() {
			params.Set("before", opts.Before.Format(time.RFC3339))
		}
		if opts.BeforeMessage != "" {
			params.Set("beforeMessage", opts.BeforeMessage)
		}
		if opts.Max > 0 {
			params.Set("max", strconv.Itoa(opts.Max))
		}
	}
	return core.NewPager[Message](a.session, a.session.URL("messages"), params)
}

// ListDirect lists all messages in a 1:1 (direct) room, selected by
// person ID or person email. The list sorts in descending order by
// creation date.
func (a *API) ListDirect(opts *ListDirectOptions) *core.Pager[Message] {
	params := url.Values{}
	if opts != nil {
		if opts.ParentID != "" {
			params.Set("parentId", opts.ParentID)
		}
		if opts.PersonID != "" {
			params.Set("personId", opts.PersonID)
		}
		if opts.PersonEmail != "" {
			params.Set("personEmail", opts.PersonEmail)
		}
	}
	return core.NewPager[Message](a.session, a.session.URL("messages", "direct"), params)
}

// Create posts a message to a room or directly to a person. File previews
// are only rendered for attachments of 1MB or less.
func (a *API) Create(ctx context.Context, req *CreateMessageRequest) (*Message, error) {
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var msg Message
	if err := a.session.PostJSON(ctx, a.session.URL("messages"), nil, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Details shows details for a message, by message ID.
func (a *API) Details(ctx context.Context, messageID string) (*Message, error) {
	if messageID == "" {
		return nil, &core.ValidationError{Fields: []string{"messageID: required"}}
	}
	var msg Message
	if err := a.session.GetJSON(ctx, a.session.URL("messages", messageID), nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Update edits a message the authenticated user posted. The server
// rejects edits of messages carrying files or attachments and edits
// beyond the per-message limit of 10.
func (a *API) Update(ctx context.Context, messageID string, req *UpdateMessageRequest) (*Message, error) {
	if messageID == "" {
		return nil, &core.ValidationError{Fields: []string{"messageID: required"}}
	}
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var msg Message
	if err := a.session.PutJSON(ctx, a.session.URL("messages", messageID), nil, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Delete deletes a message, by message ID.
func (a *API) Delete(ctx context.Context, messageID string) error {
	if messageID == "" {
		return &core.ValidationError{Fields: []string{"messageID: required"}}
	}
	return a.session.Delete(ctx, a.session.URL("messages", messageID), nil)
}
