package locations

// Address is the postal address of a location.
type Address struct {
	// Address1 is the first street address line.
	Address1 string `json:"address1,omitempty"`
	// Address2 is the second street address line.
	Address2 string `json:"address2,omitempty"`
	// City is the address city.
	City string `json:"city,omitempty"`
	// State is the address state or province.
	State string `json:"state,omitempty"`
	// PostalCode is the address ZIP or postal code.
	PostalCode string `json:"postalCode,omitempty"`
	// Country is the ISO-3166-1 country code.
	Country string `json:"country,omitempty"`
}

// Location is a physical site (office, branch) of an organization.
type Location struct {
	// ID is the unique identifier for the location.
	ID string `json:"id,omitempty"`
	// Name is the location name.
	Name string `json:"name,omitempty"`
	// OrgID is the organization the location belongs to.
	OrgID string `json:"orgId,omitempty"`
	// TimeZone is the IANA time zone name of the location.
	TimeZone string `json:"timeZone,omitempty"`
	// PreferredLanguage is the default language of users at the location.
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	// AnnouncementLanguage is the language for audio announcements.
	AnnouncementLanguage string `json:"announcementLanguage,omitempty"`
	// Address is the postal address.
	Address *Address `json:"address,omitempty"`
	// Latitude is the location latitude.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude is the location longitude.
	Longitude float64 `json:"longitude,omitempty"`
	// Notes holds free-form notes about the location.
	Notes string `json:"notes,omitempty"`
}

// CreateLocationRequest is the payload for API.Create (admin only).
type CreateLocationRequest struct {
	// Name is the location name.
	Name string `json:"name" validate:"required,max=60"`
	// TimeZone is the IANA time zone name of the location.
	TimeZone string `json:"timeZone" validate:"required"`
	// PreferredLanguage is the default language of users at the location.
	PreferredLanguage string `json:"preferredLanguage" validate:"required"`
	// AnnouncementLanguage is the language for audio announcements.
	AnnouncementLanguage string `json:"announcementLanguage,omitempty"`
	// Address is the postal address.
	Address Address `json:"address" validate:"required"`
	// Latitude is the location latitude.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude is the location longitude.
	Longitude float64 `json:"longitude,omitempty"`
	// Notes holds free-form notes about the location.
	Notes string `json:"notes,omitempty"`
}

// UpdateLocationRequest is the payload for API.Update (admin only).
type UpdateLocationRequest struct {
	// Name is the new location name.
	Name string `json:"name,omitempty" validate:"omitempty,max=60"`
	// TimeZone is the IANA time zone name of the location.
	TimeZone string `json:"timeZone,omitempty"`
	// PreferredLanguage is the default language of users at the location.
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	// AnnouncementLanguage is the language for audio announcements.
	AnnouncementLanguage string `json:"announcementLanguage,omitempty"`
	// Address is the postal address.
	Address *Address `json:"address,omitempty"`
	// Notes holds free-form notes about the location.
	Notes string `json:"notes,omitempty"`
}

// ListOptions filters API.List.
type ListOptions struct {
	// Name lists locations whose name starts with this string.
	Name string
	// ID lists a location by ID.
	ID string
	// OrgID limits results to an organization (admin only).
	OrgID string
	// Max is the page size for pagination.
	Max int
}
