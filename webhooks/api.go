// Package webhooks implements the /webhooks endpoint group: subscriptions
// that deliver resource events to an HTTPS target.
package webhooks

import (
	"context"
	"net/url"
	"strconv"

	"github.com/petal-labs/calla/core"
)

// API exposes the webhooks operations over a shared session.
type API struct {
	session *core.Session
}

// New creates the webhooks API over the given session.
func New(s *core.Session) *API {
	return &API{session: s}
}

// List lists the webhooks of the authenticated user.
func (a *API) List(opts *ListOptions) *core.Pager[Webhook] {
	params := url.Values{}
	if opts != nil {
		if opts.OwnedBy != "" {
			params.Set("ownedBy", opts.OwnedBy)
		}
		if opts.Max > 0 {
			params.Set("max", strconv.Itoa(opts.Max))
		}
	}
	return core.NewPager[Webhook](a.session, a.session.URL("webhooks"), params)
}

// Create registers a webhook.
func (a *API) Create(ctx context.Context, req *CreateWebhookRequest) (*Webhook, error) {
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var wh Webhook
	if err := a.session.PostJSON(ctx, a.session.URL("webhooks"), nil, req, &wh); err != nil {
		return nil, err
	}
	return &wh, nil
}

// Details shows details for a webhook, by ID.
func (a *API) Details(ctx context.Context, webhookID string) (*Webhook, error) {
	if webhookID == "" {
		return nil, &core.ValidationError{Fields: []string{"webhookID: required"}}
	}
	var wh Webhook
	if err := a.session.GetJSON(ctx, a.session.URL("webhooks", webhookID), nil, &wh); err != nil {
		return nil, err
	}
	return &wh, nil
}

// Update updates a webhook, by ID. The server deactivates webhooks whose
// target fails repeatedly; setting Status to active re-enables delivery.
func (a *API) Update(ctx context.Context, webhookID string, req *UpdateWebhookRequest) (*Webhook, error) {
	if webhookID == "" {
		return nil, &core.ValidationError{Fields: []string{"webhookID: required"}}
	}
	if err := core.Validate(req); err != nil {
		return nil, err
	}
	var wh Webhook
	if err := a.session.PutJSON(ctx, a.session.URL("webhooks", webhookID), nil, req, &wh); err != nil {
		return nil, err
	}
	return &wh, nil
}

// Delete deletes a webhook, by ID.
func (a *API) Delete(ctx context.Context, webhookID string) error {
	if webhookID == "" {
		return &core.ValidationError{Fields: []string{"webhookID: required"}}
	}
	return a.session.Delete(ctx, a.session.URL("webhooks", webhookID), nil)
}
