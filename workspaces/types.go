package workspaces

import "time"

// WorkspaceType classifies the physical kind of a workspace.
type WorkspaceType string

const (
	// TypeNotSet means no type has been assigned.
	TypeNotSet WorkspaceType = "notSet"
	// TypeFocus is a focus room or pod.
	TypeFocus WorkspaceType = "focus"
	// TypeHuddle is a huddle space.
	TypeHuddle WorkspaceType = "huddle"
	// TypeMeetingRoom is a standard meeting room.
	TypeMeetingRoom WorkspaceType = "meetingRoom"
	// TypeOpen is an open space.
	TypeOpen WorkspaceType = "open"
	// TypeDesk is an individual desk.
	TypeDesk WorkspaceType = "desk"
	// TypeOther is any other kind of workspace.
	TypeOther WorkspaceType = "other"
)

// CallingType is the calling setup of a workspace.
type CallingType string

const (
	// CallingFreeCalling is the default free calling.
	CallingFreeCalling CallingType = "freeCalling"
	// CallingHybrid is hybrid calling through a Unified CM mailbox.
	CallingHybrid CallingType = "hybridCalling"
	// CallingWebexCalling is Webex Calling.
	CallingWebexCalling CallingType = "webexCalling"
	// CallingNone disables calling.
	CallingNone CallingType = "none"
)

// CalendarType is the calendar integration of a workspace.
type CalendarType string

const (
	// CalendarNone disables calendar integration.
	CalendarNone CalendarType = "none"
	// CalendarGoogle integrates a Google calendar.
	CalendarGoogle CalendarType = "google"
	// CalendarMicrosoft integrates an Office 365 calendar.
	CalendarMicrosoft CalendarType = "microsoft"
)

// Calling describes the calling setup of a workspace.
type Calling struct {
	// Type is the calling type.
	Type CallingType `json:"type,omitempty"`
}

// Calendar describes the calendar integration of a workspace.
type Calendar struct {
	// Type is the calendar type.
	Type CalendarType `json:"type,omitempty"`
	// EmailAddress is the calendar mailbox address.
	EmailAddress string `json:"emailAddress,omitempty"`
}

// Workspace is a bookable physical place with Webex devices.
type Workspace struct {
	// ID is the unique identifier for the workspace.
	ID string `json:"id,omitempty"`
	// OrgID is the organization the workspace belongs to.
	OrgID string `json:"orgId,omitempty"`
	// LocationID is the workspace location, if assigned.
	LocationID string `json:"workspaceLocationId,omitempty"`
	// FloorID is the floor within the location, if assigned.
	FloorID string `json:"floorId,omitempty"`
	// DisplayName is the workspace name.
	DisplayName string `json:"displayName,omitempty"`
	// Capacity is how many people the workspace fits.
	Capacity int `json:"capacity,omitempty"`
	// Type classifies the workspace.
	Type WorkspaceType `json:"type,omitempty"`
	// SIPAddress is the workspace SIP URI.
	SIPAddress string `json:"sipAddress,omitempty"`
	// Created is when the workspace was created.
	Created time.Time `json:"created,omitempty"`
	// Calling is the calling setup.
	Calling *Calling `json:"calling,omitempty"`
	// Calendar is the calendar integration.
	Calendar *Calendar `json:"calendar,omitempty"`
	// Notes holds free-form notes about the workspace.
	Notes string `json:"notes,omitempty"`
}

// CreateWorkspaceRequest is the payload for API.Create.
type CreateWorkspaceRequest struct {
	// DisplayName is the workspace name.
	DisplayName string `json:"displayName" validate:"required,max=100"`
	// LocationID assigns the workspace to a location.
	LocationID string `json:"workspaceLocationId,omitempty"`
	// FloorID assigns the workspace to a floor.
	FloorID string `json:"floorId,omitempty"`
	// Capacity is how many people the workspace fits.
	Capacity int `json:"capacity,omitempty" validate:"omitempty,min=0"`
	// Type classifies the workspace.
	Type WorkspaceType `json:"type,omitempty"`
	// Calling is the calling setup; defaults to free calling.
	Calling *Calling `json:"calling,omitempty"`
	// Calendar is the calendar integration; defaults to none.
	Calendar *Calendar `json:"calendar,omitempty"`
	// Notes holds free-form notes about the workspace.
	Notes string `json:"notes,omitempty"`
}

// UpdateWorkspaceRequest is the payload for API.Update.
type UpdateWorkspaceRequest struct {
	// DisplayName is the new workspace name.
	DisplayName string `json:"displayName,omitempty" validate:"omitempty,max=100"`
	// LocationID reassigns the workspace to a location.
	LocationID string `json:"workspaceLocationId,omitempty"`
	// FloorID reassigns the workspace to a floor.
	FloorID string `json:"floorId,omitempty"`
	// Capacity is how many people the workspace fits.
	Capacity int `json:"capacity,omitempty" validate:"omitempty,min=0"`
	// Type classifies the workspace.
	Type WorkspaceType `json:"type,omitempty"`
	// Calendar is the calendar integration.
	Calendar *Calendar `json:"calendar,omitempty"`
	// Notes holds free-form notes about the workspace.
	Notes string `json:"notes,omitempty"`
}

// ListOptions filters API.List.
type ListOptions struct {
	// LocationID limits results to a workspace location.
	LocationID string
	// FloorID limits results to a floor.
	FloorID string
	// DisplayName lists workspaces whose name contains this string.
	DisplayName string
	// Capacity limits results to workspaces of at least this capacity.
	Capacity int
	// Type limits results to one workspace type.
	Type WorkspaceType
	// Calling limits results to one calling type.
	Calling CallingType
	// Calendar limits results to one calendar type.
	Calendar CalendarType
	// OrgID limits results to an organization (admin only).
	OrgID string
	// Max is the page size for pagination.
	Max int
}
