package people

import "time"

// PersonStatus is the current presence status of a person.
type PersonStatus string

const (
	// PersonStatusActive means the person is active within the last 10 minutes.
	PersonStatusActive PersonStatus = "active"
	// PersonStatusCall means the person is in a call.
	PersonStatusCall PersonStatus = "call"
	// PersonStatusDoNotDisturb means the person has manually set do-not-disturb.
	PersonStatusDoNotDisturb PersonStatus = "DoNotDisturb"
	// PersonStatusInactive means the person is not active.
	PersonStatusInactive PersonStatus = "inactive"
	// PersonStatusMeeting means the person is in a meeting.
	PersonStatusMeeting PersonStatus = "meeting"
	// PersonStatusOutOfOffice means the person's calendar shows out of office.
	PersonStatusOutOfOffice PersonStatus = "OutOfOffice"
	// PersonStatusPending means the person has been invited but not signed up.
	PersonStatusPending PersonStatus = "pending"
	// PersonStatusPresenting means the person is sharing content.
	PersonStatusPresenting PersonStatus = "presenting"
	// PersonStatusUnknown means presence could not be determined.
	PersonStatusUnknown PersonStatus = "unknown"
)

// PersonType distinguishes people from bots and appusers.
type PersonType string

const (
	// PersonTypePerson is an account belonging to a human.
	PersonTypePerson PersonType = "person"
	// PersonTypeBot is a bot account.
	PersonTypeBot PersonType = "bot"
	// PersonTypeAppUser is a guest user created by an app.
	PersonTypeAppUser PersonType = "appuser"
)

// PhoneNumberType classifies a person's phone number.
type PhoneNumberType string

const (
	// PhoneNumberTypeWork is a work number.
	PhoneNumberTypeWork PhoneNumberType = "work"
	// PhoneNumberTypeMobile is a mobile number.
	PhoneNumberTypeMobile PhoneNumberType = "mobile"
	// PhoneNumberTypeFax is a fax number.
	PhoneNumberTypeFax PhoneNumberType = "fax"
	// PhoneNumberTypeWorkExtension is an on-net extension.
	PhoneNumberTypeWorkExtension PhoneNumberType = "work_extension"
)

// PhoneNumber is one of a person's phone numbers.
type PhoneNumber struct {
	// Type classifies the number.
	Type PhoneNumberType `json:"type,omitempty"`
	// Value is the number itself.
	Value string `json:"value,omitempty"`
}

// SIPAddress is one of a person's SIP addresses.
type SIPAddress struct {
	// Type classifies the address, e.g. "personal-room".
	Type string `json:"type,omitempty"`
	// Value is the address itself.
	Value string `json:"value,omitempty"`
	// Primary marks the primary address.
	Primary bool `json:"primary,omitempty"`
}

// Person is a Webex user, bot or appuser.
type Person struct {
	// ID is the unique identifier for the person.
	ID string `json:"id,omitempty"`
	// Emails lists the person's email addresses.
	Emails []string `json:"emails,omitempty"`
	// PhoneNumbers lists the person's phone numbers.
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
	// SIPAddresses lists the person's SIP addresses.
	SIPAddresses []SIPAddress `json:"sipAddresses,omitempty"`
	// DisplayName is the full name displayed in Webex.
	DisplayName string `json:"displayName,omitempty"`
	// NickName is the preferred short name.
	NickName string `json:"nickName,omitempty"`
	// FirstName is the person's first name.
	FirstName string `json:"firstName,omitempty"`
	// LastName is the person's last name.
	LastName string `json:"lastName,omitempty"`
	// Avatar is the URL of the person's avatar.
	Avatar string `json:"avatar,omitempty"`
	// OrgID is the organization the person belongs to.
	OrgID string `json:"orgId,omitempty"`
	// Roles lists role IDs assigned to the person (admin only).
	Roles []string `json:"roles,omitempty"`
	// Licenses lists license IDs assigned to the person (admin only).
	Licenses []string `json:"licenses,omitempty"`
	// Created is when the person was created.
	Created time.Time `json:"created,omitempty"`
	// LastModified is when the person was last changed.
	LastModified time.Time `json:"lastModified,omitempty"`
	// Timezone is the person's IANA time zone name.
	Timezone string `json:"timezone,omitempty"`
	// LastActivity is the date and time of the person's last activity.
	LastActivity time.Time `json:"lastActivity,omitempty"`
	// Status is the person's presence status.
	Status PersonStatus `json:"status,omitempty"`
	// InvitePending reports an invite that has not been accepted.
	InvitePending bool `json:"invitePending,omitempty"`
	// LoginEnabled reports whether the person is allowed to sign in.
	LoginEnabled bool `json:"loginEnabled,omitempty"`
	// Type distinguishes people, bots and appusers.
	Type PersonType `json:"type,omitempty"`
}

// CreatePersonRequest is the payload for API.Create (admin only).
type CreatePersonRequest struct {
	// Emails holds the person's email addresses; exactly one is allowed.
	Emails []string `json:"emails" validate:"required,len=1,dive,email"`
	// PhoneNumbers lists the person's phone numbers.
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
	// DisplayName is the full name displayed in Webex.
	DisplayName string `json:"displayName,omitempty"`
	// FirstName is the person's first name.
	FirstName string `json:"firstName,omitempty"`
	// LastName is the person's last name.
	LastName string `json:"lastName,omitempty"`
	// Avatar is the URL of the person's avatar.
	Avatar string `json:"avatar,omitempty"`
	// OrgID is the organization to create the person in.
	OrgID string `json:"orgId,omitempty"`
	// Roles lists role IDs to assign.
	Roles []string `json:"roles,omitempty"`
	// Licenses lists license IDs to assign.
	Licenses []string `json:"licenses,omitempty"`
}

// UpdatePersonRequest is the payload for API.Update (admin only). The
// server requires the full set of writable fields; the usual pattern is
// to fetch details, modify, and send the result back.
type UpdatePersonRequest struct {
	// Emails holds the person's email addresses.
	Emails []string `json:"emails,omitempty" validate:"omitempty,len=1,dive,email"`
	// PhoneNumbers lists the person's phone numbers.
	PhoneNumbers []PhoneNumber `json:"phoneNumbers,omitempty"`
	// DisplayName is the full name displayed in Webex.
	DisplayName string `json:"displayName,omitempty"`
	// FirstName is the person's first name.
	FirstName string `json:"firstName,omitempty"`
	// LastName is the person's last name.
	LastName string `json:"lastName,omitempty"`
	// Avatar is the URL of the person's avatar.
	Avatar string `json:"avatar,omitempty"`
	// OrgID is the organization the person belongs to.
	OrgID string `json:"orgId,omitempty"`
	// Roles lists role IDs assigned to the person.
	Roles []string `json:"roles,omitempty"`
	// Licenses lists license IDs assigned to the person.
	Licenses []string `json:"licenses,omitempty"`
	// LoginEnabled allows or blocks sign in.
	LoginEnabled *bool `json:"loginEnabled,omitempty"`
}

// ListOptions filters API.List.
type ListOptions struct {
	// Email lists people with this email address (non-admin users must
	// filter by email or display name).
	Email string
	// DisplayName lists people whose name starts with this string.
	DisplayName string
	// IDs lists people by ID, up to 85 at a time.
	IDs []string
	// OrgID limits results to an organization (admin only).
	OrgID string
	// CallingData includes Webex Calling user details in the response.
	CallingData bool
	// Max is the page size for pagination.
	Max int
}
