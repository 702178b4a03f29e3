package rooms

import "time"

// RoomType identifies the kind of room.
type RoomType string

const (
	// RoomTypeDirect is a 1:1 room between two people.
	RoomTypeDirect RoomType = "direct"
	// RoomTypeGroup is a space with any number of members.
	RoomTypeGroup RoomType = "group"
)

// Room is a virtual meeting place where people post messages and
// collaborate. Server-assigned fields (ID, Created, ...) are read-only;
// use CreateRoomRequest and UpdateRoomRequest for writes.
type Room struct {
	// ID is the unique identifier for the room.
	ID string `json:"id,omitempty"`
	// Title is the user-friendly name for the room. For 1:1 rooms the
	// title is the display name of the other person.
	Title string `json:"title,omitempty"`
	// Type is the room type (direct or group).
	Type RoomType `json:"type,omitempty"`
	// IsLocked reports whether the room is moderated.
	IsLocked bool `json:"isLocked,omitempty"`
	// TeamID is the team this room is associated with, if any.
	TeamID string `json:"teamId,omitempty"`
	// LastActivity is the date and time of the room's last activity.
	LastActivity time.Time `json:"lastActivity,omitempty"`
	// CreatorID is the person who created the room.
	CreatorID string `json:"creatorId,omitempty"`
	// Created is when the room was created.
	Created time.Time `json:"created,omitempty"`
	// OwnerID is the organization which owns the room.
	OwnerID string `json:"ownerId,omitempty"`
	// ClassificationID is the space classification, settable at creation
	// and modifiable by authorized users.
	ClassificationID string `json:"classificationId,omitempty"`
	// IsAnnouncementOnly indicates announcement mode, where only
	// moderators can post. Only lockable rooms can enter this mode.
	IsAnnouncementOnly bool `json:"isAnnouncementOnly,omitempty"`
	// IsReadOnly marks a direct room frozen by a compliance officer.
	IsReadOnly bool `json:"isReadOnly,omitempty"`
}

// RoomMeeting holds the Webex meeting details of a room: SIP address,
// meeting URL, and dial-in numbers.
type RoomMeeting struct {
	// RoomID is the unique identifier for the room.
	RoomID string `json:"roomId,omitempty"`
	// MeetingLink is the Webex meeting URL for the room.
	MeetingLink string `json:"meetingLink,omitempty"`
	// SIPAddress is the SIP address for the room.
	SIPAddress string `json:"sipAddress,omitempty"`
	// MeetingNumber is the Webex meeting number for the room.
	MeetingNumber string `json:"meetingNumber,omitempty"`
	// MeetingID is the Webex meeting ID for the room.
	MeetingID string `json:"meetingId,omitempty"`
	// CallInTollFreeNumber is the toll-free PSTN number for the room.
	CallInTollFreeNumber string `json:"callInTollFreeNumber,omitempty"`
	// CallInTollNumber is the toll (local) PSTN number for the room.
	CallInTollNumber string `json:"callInTollNumber,omitempty"`
}

// CreateRoomRequest is the payload for API.Create. Server-assigned room
// fields are deliberately absent.
type CreateRoomRequest struct {
	// Title is the user-friendly name for the room.
	Title string `json:"title" validate:"required"`
	// TeamID associates the room with a team.
	TeamID string `json:"teamId,omitempty"`
	// ClassificationID classifies the space at creation time.
	ClassificationID string `json:"classificationId,omitempty"`
	// IsLocked creates the room in moderated mode.
	IsLocked *bool `json:"isLocked,omitempty"`
	// IsAnnouncementOnly creates the room in announcement mode.
	IsAnnouncementOnly *bool `json:"isAnnouncementOnly,omitempty"`
}

// UpdateRoomRequest is the payload for API.Update.
type UpdateRoomRequest struct {
	// Title is the new room title.
	Title string `json:"title,omitempty"`
	// ClassificationID reclassifies the space.
	ClassificationID string `json:"classificationId,omitempty"`
	// IsLocked toggles moderation.
	IsLocked *bool `json:"isLocked,omitempty"`
	// IsAnnouncementOnly toggles announcement mode. A space can only be
	// put into announcement mode when it is locked.
	IsAnnouncementOnly *bool `json:"isAnnouncementOnly,omitempty"`
	// IsReadOnly freezes or unfreezes a direct room.
	IsReadOnly *bool `json:"isReadOnly,omitempty"`
}

// ListOptions filters API.List.
type ListOptions struct {
	// TeamID limits results to rooms of the given team.
	TeamID string
	// Type limits results to direct or group rooms.
	Type RoomType
	// SortBy sorts results by id, lastactivity or created.
	SortBy string
	// Max is the page size for pagination.
	Max int
}
