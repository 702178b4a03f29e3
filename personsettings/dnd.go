package personsettings

import "context"

// DND is a person's do-not-disturb settings.
type DND struct {
	// Enabled silences incoming calls.
	Enabled *bool `json:"enabled,omitempty"`
	// RingSplashEnabled plays a short ring splash on silenced calls.
	RingSplashEnabled *bool `json:"ringSplashEnabled,omitempty"`
}

// DNDAPI reads and configures a person's do-not-disturb settings.
type DNDAPI struct {
	feature
}

// Read gets the do-not-disturb settings of a person.
func (a *DNDAPI) Read(ctx context.Context, personID, orgID string) (*DND, error) {
	if err := requirePersonID(personID); err != nil {
		return nil, err
	}
	var settings DND
	if err := a.session.GetJSON(ctx, a.endpoint(personID), orgParams(orgID), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Configure updates the do-not-disturb settings of a person.
func (a *DNDAPI) Configure(ctx context.Context, personID string, settings *DND, orgID string) error {
	if err := requirePersonID(personID); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.endpoint(personID), orgParams(orgID), settings, nil)
}
