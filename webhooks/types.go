package webhooks

import "time"

// Resource is the resource type a webhook subscribes to.
type Resource string

const (
	// ResourceAll subscribes to all resources.
	ResourceAll Resource = "all"
	// ResourceMemberships subscribes to membership changes.
	ResourceMemberships Resource = "memberships"
	// ResourceMessages subscribes to message activity.
	ResourceMessages Resource = "messages"
	// ResourceRooms subscribes to room activity.
	ResourceRooms Resource = "rooms"
	// ResourceAttachmentActions subscribes to adaptive card submissions.
	ResourceAttachmentActions Resource = "attachmentActions"
)

// Event is the activity a webhook fires on.
type Event string

const (
	// EventAll fires on any event.
	EventAll Event = "all"
	// EventCreated fires when a resource is created.
	EventCreated Event = "created"
	// EventUpdated fires when a resource is updated.
	EventUpdated Event = "updated"
	// EventDeleted fires when a resource is deleted.
	EventDeleted Event = "deleted"
)

// Status is the operational state of a webhook.
type Status string

const (
	// StatusActive means the webhook delivers events.
	StatusActive Status = "active"
	// StatusInactive means delivery is suspended.
	StatusInactive Status = "inactive"
)

// Webhook is a subscription delivering events to a target URL.
type Webhook struct {
	// ID is the unique identifier for the webhook.
	ID string `json:"id,omitempty"`
	// Name is a user-friendly name for the webhook.
	Name string `json:"name,omitempty"`
	// TargetURL is where events are POSTed.
	TargetURL string `json:"targetUrl,omitempty"`
	// Resource is the subscribed resource type.
	Resource Resource `json:"resource,omitempty"`
	// Event is the subscribed activity.
	Event Event `json:"event,omitempty"`
	// Filter narrows the subscription, e.g. "roomId=...".
	Filter string `json:"filter,omitempty"`
	// Secret is used to compute the X-Spark-Signature of deliveries.
	Secret string `json:"secret,omitempty"`
	// Status is active or inactive.
	Status Status `json:"status,omitempty"`
	// Created is when the webhook was created.
	Created time.Time `json:"created,omitempty"`
	// OwnedBy is "org" for org-level webhooks, empty for personal ones.
	OwnedBy string `json:"ownedBy,omitempty"`
}

// CreateWebhookRequest is the payload for API.Create.
type CreateWebhookRequest struct {
	// Name is a user-friendly name for the webhook.
	Name string `json:"name" validate:"required,max=100"`
	// TargetURL is where events are POSTed; must be reachable over HTTPS.
	TargetURL string `json:"targetUrl" validate:"required,url"`
	// Resource is the resource type to subscribe to.
	Resource Resource `json:"resource" validate:"required"`
	// Event is the activity to fire on.
	Event Event `json:"event" validate:"required"`
	// Filter narrows the subscription.
	Filter string `json:"filter,omitempty"`
	// Secret is used to sign deliveries.
	Secret string `json:"secret,omitempty"`
	// OwnedBy set to "org" creates an org-level webhook (admin only).
	OwnedBy string `json:"ownedBy,omitempty"`
}

// UpdateWebhookRequest is the payload for API.Update. Resource and event
// cannot change after creation.
type UpdateWebhookRequest struct {
	// Name is the new webhook name.
	Name string `json:"name" validate:"required,max=100"`
	// TargetURL is the new delivery target.
	TargetURL string `json:"targetUrl" validate:"required,url"`
	// Secret replaces the signing secret.
	Secret string `json:"secret,omitempty"`
	// Status set to active re-enables a webhook the server deactivated.
	Status Status `json:"status,omitempty"`
}

// ListOptions filters API.List.
type ListOptions struct {
	// OwnedBy set to "org" lists org-level webhooks (admin only).
	OwnedBy string
	// Max is the page size for pagination.
	Max int
}
