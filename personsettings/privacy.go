package personsettings

import (
	"context"
	"encoding/json"
)

// MonitoredAgent is a person or place whose line is being monitored. On
// reads the server returns the full record; on writes only the ID is
// sent.
type MonitoredAgent struct {
	// ID is the unique identifier of the monitored person or place.
	ID string `json:"id"`
	// LastName is the monitored agent's last name. Read-only.
	LastName string `json:"lastName,omitempty"`
	// FirstName is the monitored agent's first name. Read-only.
	FirstName string `json:"firstName,omitempty"`
	// DisplayName is the monitored agent's display name. Read-only.
	DisplayName string `json:"displayName,omitempty"`
	// Type distinguishes PEOPLE from PLACE entries. Read-only.
	Type string `json:"type,omitempty"`
	// Email is the monitored agent's email address. Read-only.
	Email string `json:"email,omitempty"`
	// Numbers holds the monitored agent's phone numbers. Read-only.
	Numbers []AgentNumber `json:"numbers,omitempty"`
}

// AgentNumber is one phone number of a monitored agent.
type AgentNumber struct {
	// External is the external (PSTN) number.
	External string `json:"external,omitempty"`
	// Extension is the on-net extension.
	Extension string `json:"extension,omitempty"`
	// Primary marks the primary number.
	Primary bool `json:"primary,omitempty"`
}

// Privacy is a person's privacy settings: auto attendant reachability and
// directory phone status visibility, plus the list of monitoring agents.
type Privacy struct {
	// AAExtensionDialingEnabled allows auto attendant extension dialing.
	AAExtensionDialingEnabled *bool `json:"aaExtensionDialingEnabled,omitempty"`
	// AANamingDialingEnabled allows auto attendant dialing by name.
	AANamingDialingEnabled *bool `json:"aaNamingDialingEnabled,omitempty"`
	// EnablePhoneStatusDirectoryPrivacy hides phone status from the
	// directory.
	EnablePhoneStatusDirectoryPrivacy *bool `json:"enablePhoneStatusDirectoryPrivacy,omitempty"`
	// MonitoringAgents lists who may monitor this person's line.
	MonitoringAgents []MonitoredAgent `json:"monitoringAgents,omitempty"`
}

// privacyUpdate is the wire form of a privacy configure call: monitoring
// agents collapse to their IDs.
type privacyUpdate struct {
	AAExtensionDialingEnabled         *bool    `json:"aaExtensionDialingEnabled,omitempty"`
	AANamingDialingEnabled            *bool    `json:"aaNamingDialingEnabled,omitempty"`
	EnablePhoneStatusDirectoryPrivacy *bool    `json:"enablePhoneStatusDirectoryPrivacy,omitempty"`
	MonitoringAgents                  []string `json:"monitoringAgents,omitempty"`
}

// MarshalJSON lets a Privacy value read from the server be sent back on
// configure unchanged: agents serialize as bare IDs.
func (p Privacy) MarshalJSON() ([]byte, error) {
	update := privacyUpdate{
		AAExtensionDialingEnabled:         p.AAExtensionDialingEnabled,
		AANamingDialingEnabled:            p.AANamingDialingEnabled,
		EnablePhoneStatusDirectoryPrivacy: p.EnablePhoneStatusDirectoryPrivacy,
	}
	for _, agent := range p.MonitoringAgents {
		update.MonitoringAgents = append(update.MonitoringAgents, agent.ID)
	}
	return json.Marshal(update)
}

// PrivacyAPI reads and configures a person's privacy settings.
type PrivacyAPI struct {
	feature
}

// Read gets the privacy settings of a person. Requires a full, user, or
// read-only administrator token with the spark-admin:people_read scope.
func (a *PrivacyAPI) Read(ctx context.Context, personID, orgID string) (*Privacy, error) {
	if err := requirePersonID(personID); err != nil {
		return nil, err
	}
	var settings Privacy
	if err := a.session.GetJSON(ctx, a.endpoint(personID), orgParams(orgID), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Configure updates the privacy settings of a person. Requires a full or
// user administrator token with the spark-admin:people_write scope.
func (a *PrivacyAPI) Configure(ctx context.Context, personID string, settings *Privacy, orgID string) error {
	if err := requirePersonID(personID); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.endpoint(personID), orgParams(orgID), settings, nil)
}
