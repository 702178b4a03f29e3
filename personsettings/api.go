// Package personsettings implements the per-person feature settings under
// /people/{personId}/features: privacy, do not disturb, barge in, and
// call forwarding.
//
// Every feature follows the same shape: a Read call returning the current
// settings and a Configure call writing them. Admin operations may target
// people of another organization via the OrgID parameter.
package personsettings

import (
	"net/url"

	"github.com/petal-labs/calla/core"
)

// API bundles the per-feature settings APIs over a shared session.
type API struct {
	// Privacy is the directory privacy and monitoring feature.
	Privacy *PrivacyAPI
	// DND is the do-not-disturb feature.
	DND *DNDAPI
	// Barge is the barge-in feature.
	Barge *BargeAPI
	// CallForwarding is the call forwarding feature.
	CallForwarding *CallForwardingAPI
}

// New creates the person settings APIs over the given session.
func New(s *core.Session) *API {
	return &API{
		Privacy:        &PrivacyAPI{feature: feature{session: s, name: "privacy"}},
		DND:            &DNDAPI{feature: feature{session: s, name: "doNotDisturb"}},
		Barge:          &BargeAPI{feature: feature{session: s, name: "bargeIn"}},
		CallForwarding: &CallForwardingAPI{feature: feature{session: s, name: "callForwarding"}},
	}
}

// feature is the shared base of every per-person feature API: it knows
// the feature's endpoint below a person and the optional orgId query.
type feature struct {
	session *core.Session
	name    string
}

// endpoint builds the feature URL for a person.
func (f *feature) endpoint(personID string) string {
	return f.session.URL("people", personID, "features", f.name)
}

// orgParams builds the query for an optional organization override.
// Partner administrators may act on people of another organization; the
// default is the organization of the token in use.
func orgParams(orgID string) url.Values {
	if orgID == "" {
		return nil
	}
	params := url.Values{}
	params.Set("orgId", orgID)
	return params
}

// requirePersonID is the shared argument check of every feature call.
func requirePersonID(personID string) error {
	if personID == "" {
		return &core.ValidationError{Fields: []string{"personID: required"}}
	}
	return nil
}
