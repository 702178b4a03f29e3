package personsettings

import "context"

// Barge is a person's barge-in settings. With barge in enabled, other
// selected users may join the person's active calls.
type Barge struct {
	// Enabled allows barge in.
	Enabled *bool `json:"enabled,omitempty"`
	// ToneEnabled plays a tone to all parties when someone barges in.
	ToneEnabled *bool `json:"toneEnabled,omitempty"`
}

// BargeAPI reads and configures a person's barge-in settings.
type BargeAPI struct {
	feature
}

// Read gets the barge-in settings of a person.
func (a *BargeAPI) Read(ctx context.Context, personID, orgID string) (*Barge, error) {
	if err := requirePersonID(personID); err != nil {
		return nil, err
	}
	var settings Barge
	if err := a.session.GetJSON(ctx, a.endpoint(personID), orgParams(orgID), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Configure updates the barge-in settings of a person.
func (a *BargeAPI) Configure(ctx context.Context, personID string, settings *Barge, orgID string) error {
	if err := requirePersonID(personID); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.endpoint(personID), orgParams(orgID), settings, nil)
}
