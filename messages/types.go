package messages

import "time"

// RoomType identifies the kind of room a message was posted in.
type RoomType string

const (
	// RoomTypeDirect is a 1:1 room.
	RoomTypeDirect RoomType = "direct"
	// RoomTypeGroup is a space with any number of members.
	RoomTypeGroup RoomType = "group"
)

// AdaptiveCardContentType is the attachment content type for adaptive
// cards, the only attachment kind the API supports.
const AdaptiveCardContentType = "application/vnd.microsoft.card.adaptive"

// AdaptiveCardElement is a single element of an adaptive card body,
// for example a TextBlock.
type AdaptiveCardElement struct {
	// Type is the element type, e.g. "TextBlock".
	Type string `json:"type,omitempty"`
	// Text is the element text.
	Text string `json:"text,omitempty"`
	// Size is the element text size, e.g. "large".
	Size string `json:"size,omitempty"`
}

// AdaptiveCardAction is a single action of an adaptive card, for example
// Action.OpenUrl.
type AdaptiveCardAction struct {
	// Type is the action type, e.g. "Action.OpenUrl".
	Type string `json:"type,omitempty"`
	// URL is the action target.
	URL string `json:"url,omitempty"`
	// Title is the action label.
	Title string `json:"title,omitempty"`
}

// AdaptiveCard is the card payload of an attachment.
type AdaptiveCard struct {
	// Type is the card type; only "AdaptiveCard" is supported.
	Type string `json:"type,omitempty"`
	// Version is the Adaptive Card schema version.
	Version string `json:"version,omitempty"`
	// Body holds the card's elements.
	Body []AdaptiveCardElement `json:"body,omitempty"`
	// Actions holds the card's actions.
	Actions []AdaptiveCardAction `json:"actions,omitempty"`
}

// Attachment is a message content attachment (an adaptive card).
type Attachment struct {
	// ContentType is AdaptiveCardContentType.
	ContentType string `json:"contentType,omitempty"`
	// Content is the card itself.
	Content *AdaptiveCard `json:"content,omitempty"`
}

// NewCardAttachment wraps a card in an attachment with the correct
// content type.
func NewCardAttachment(card *AdaptiveCard) Attachment {
	return Attachment{ContentType: AdaptiveCardContentType, Content: card}
}

// Message is a single message in a room.
type Message struct {
	// ID is the unique identifier for the message.
	ID string `json:"id,omitempty"`
	// ParentID is the parent message, when the message is a reply.
	ParentID string `json:"parentId,omitempty"`
	// RoomID is the room the message was posted in.
	RoomID string `json:"roomId,omitempty"`
	// RoomType is the room type (direct or group).
	RoomType RoomType `json:"roomType,omitempty"`
	// ToPersonID is the recipient of a 1:1 message, by person ID.
	ToPersonID string `json:"toPersonId,omitempty"`
	// ToPersonEmail is the recipient of a 1:1 message, by email.
	ToPersonEmail string `json:"toPersonEmail,omitempty"`
	// Text is the message in plain text.
	Text string `json:"text,omitempty"`
	// Markdown is the message in Markdown format.
	Markdown string `json:"markdown,omitempty"`
	// HTML is the rendered message; read-only, used by Webex clients.
	HTML string `json:"html,omitempty"`
	// Files holds public URLs of files attached to the message.
	Files []string `json:"files,omitempty"`
	// PersonID is the message author.
	PersonID string `json:"personId,omitempty"`
	// PersonEmail is the message author's email.
	PersonEmail string `json:"personEmail,omitempty"`
	// MentionedPeople lists person IDs mentioned in the message.
	MentionedPeople []string `json:"mentionedPeople,omitempty"`
	// MentionedGroups lists group names mentioned in the message.
	MentionedGroups []string `json:"mentionedGroups,omitempty"`
	// Attachments holds adaptive card attachments.
	Attachments []Attachment `json:"attachments,omitempty"`
	// Created is when the message was posted.
	Created time.Time `json:"created,omitempty"`
	// Updated is when the message was last edited by the author; present
	// only when the contents have changed.
	Updated time.Time `json:"updated,omitempty"`
	// IsVoiceClip reports whether the audio file is a voice clip recorded
	// by the client rather than a standard audio file.
	IsVoiceClip bool `json:"isVoiceClip,omitempty"`
}

// CreateMessageRequest is the payload for API.Create. Exactly one
// destination (RoomID, ToPersonID or ToPersonEmail) must be set, and at
// least one content field (Text, Markdown, Files or Attachments).
type CreateMessageRequest struct {
	// RoomID posts the message to a room.
	RoomID string `json:"roomId,omitempty" validate:"required_without_all=ToPersonID ToPersonEmail,excluded_with=ToPersonID ToPersonEmail"`
	// ToPersonID posts a 1:1 message, by person ID.
	ToPersonID string `json:"toPersonId,omitempty" validate:"excluded_with=ToPersonEmail"`
	// ToPersonEmail posts a 1:1 message, by email.
	ToPersonEmail string `json:"toPersonEmail,omitempty" validate:"omitempty,email"`
	// ParentID posts the message as a reply.
	ParentID string `json:"parentId,omitempty"`
	// Text is the message in plain text. When Markdown is also set, Text
	// is the fallback for clients that do not support rich text.
	Text string `json:"text,omitempty" validate:"required_without_all=Markdown Files Attachments"`
	// Markdown is the message in Markdown format.
	Markdown string `json:"markdown,omitempty"`
	// Files holds public URLs to attach. The field is an array for future
	// expansion; currently only one file may be included.
	Files []string `json:"files,omitempty" validate:"omitempty,max=1,dive,url"`
	// Attachments holds adaptive card attachments.
	Attachments []Attachment `json:"attachments,omitempty"`
}

// UpdateMessageRequest is the payload for API.Update. Only the text of a
// message can be edited; messages containing files or attachments cannot
// be edited, and each message can be edited at most 10 times (both
// enforced server-side).
type UpdateMessageRequest struct {
	// RoomID must repeat the room of the message being edited.
	RoomID string `json:"roomId" validate:"required"`
	// Text is the replacement plain text.
	Text string `json:"text,omitempty" validate:"required_without=Markdown"`
	// Markdown is the replacement Markdown.
	Markdown string `json:"markdown,omitempty"`
}

// ListOptions filters API.List. RoomID is required.
type ListOptions struct {
	// RoomID lists messages in a room, by ID.
	RoomID string
	// ParentID lists replies to a message, by ID.
	ParentID string
	// MentionedPeople lists messages mentioning these people. Use "me"
	// for the current user; bots must set this to list group rooms.
	MentionedPeople []string
	// Before lists messages sent before a date and time.
	Before time.Time
	// BeforeMessage lists messages sent before a message, by ID.
	BeforeMessage string
	// Max is the page size for pagination.
	Max int
}

// ListDirectOptions filters API.ListDirect. Specify the 1:1 room by
// PersonID or PersonEmail.
type ListDirectOptions struct {
	// ParentID lists replies to a message, by ID.
	ParentID string
	// PersonID selects the 1:1 room by person ID.
	PersonID string
	// PersonEmail selects the 1:1 room by person email.
	PersonEmail string
}
