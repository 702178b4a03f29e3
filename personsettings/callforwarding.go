package personsettings

import "context"

// ForwardingRule is one call forwarding rule: where calls go and whether
// the destination's voicemail may answer.
type ForwardingRule struct {
	// Enabled turns the rule on.
	Enabled *bool `json:"enabled,omitempty"`
	// Destination is the number or URI calls are forwarded to.
	Destination string `json:"destination,omitempty"`
	// DestinationVoicemailEnabled sends forwarded calls to the
	// destination's voicemail when it does not answer.
	DestinationVoicemailEnabled *bool `json:"destinationVoicemailEnabled,omitempty"`
}

// ForwardingAlwaysRule forwards every incoming call.
type ForwardingAlwaysRule struct {
	ForwardingRule
	// RingReminderEnabled plays a brief ring on the person's devices
	// when a call is forwarded.
	RingReminderEnabled *bool `json:"ringReminderEnabled,omitempty"`
}

// ForwardingNoAnswerRule forwards calls that ring unanswered.
type ForwardingNoAnswerRule struct {
	ForwardingRule
	// NumberOfRings is how many rings before the call forwards.
	NumberOfRings int `json:"numberOfRings,omitempty"`
	// SystemMaxNumberOfRings is the system ceiling for NumberOfRings.
	// Read-only.
	SystemMaxNumberOfRings int `json:"systemMaxNumberOfRings,omitempty"`
}

// CallForwardingRules groups the three per-person forwarding rules.
type CallForwardingRules struct {
	// Always forwards every call.
	Always *ForwardingAlwaysRule `json:"always,omitempty"`
	// Busy forwards calls arriving while the person is on a call.
	Busy *ForwardingRule `json:"busy,omitempty"`
	// NoAnswer forwards calls that ring unanswered.
	NoAnswer *ForwardingNoAnswerRule `json:"noAnswer,omitempty"`
}

// CallForwarding is a person's call forwarding settings.
type CallForwarding struct {
	// CallForwarding holds the always, busy, and no-answer rules.
	CallForwarding *CallForwardingRules `json:"callForwarding,omitempty"`
	// BusinessContinuity forwards calls when all of the person's devices
	// are unreachable, for example during an outage.
	BusinessContinuity *ForwardingRule `json:"businessContinuity,omitempty"`
}

// CallForwardingAPI reads and configures a person's call forwarding.
type CallForwardingAPI struct {
	feature
}

// Read gets the call forwarding settings of a person.
func (a *CallForwardingAPI) Read(ctx context.Context, personID, orgID string) (*CallForwarding, error) {
	if err := requirePersonID(personID); err != nil {
		return nil, err
	}
	var settings CallForwarding
	if err := a.session.GetJSON(ctx, a.endpoint(personID), orgParams(orgID), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Configure updates the call forwarding settings of a person.
func (a *CallForwardingAPI) Configure(ctx context.Context, personID string, settings *CallForwarding, orgID string) error {
	if err := requirePersonID(personID); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.endpoint(personID), orgParams(orgID), settings, nil)
}
