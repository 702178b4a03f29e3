package telephony

import (
	"context"
	"encoding/json"

	"github.com/petal-labs/calla/core"
)

// RecallOption selects who is alerted when a parked call recalls.
type RecallOption string

const (
	// RecallParkingUserOnly alerts only the user who parked the call.
	RecallParkingUserOnly RecallOption = "ALERT_PARKING_USER_ONLY"
	// RecallParkingUserFirstThenHuntGroup alerts the parking user first,
	// then the recall hunt group.
	RecallParkingUserFirstThenHuntGroup RecallOption = "ALERT_PARKING_USER_FIRST_THEN_HUNT_GROUP"
	// RecallHuntGroupOnly alerts only the recall hunt group.
	RecallHuntGroupOnly RecallOption = "ALERT_HUNT_GROUP_ONLY"
)

// RecallHuntGroup is the recall destination of a call park. Clearing the
// hunt group ID detaches the hunt group.
type RecallHuntGroup struct {
	// HuntGroupID is the recall hunt group, empty for none.
	HuntGroupID string `json:"huntGroupId,omitempty"`
	// HuntGroupName is the hunt group's name. Read-only.
	HuntGroupName string `json:"huntGroupName,omitempty"`
	// Option selects who is alerted on recall.
	Option RecallOption `json:"option,omitempty"`
}

// recallUpdate is the wire form of a recall setting on create and update:
// the hunt group name stays server-side.
type recallUpdate struct {
	HuntGroupID string       `json:"huntGroupId"`
	Option      RecallOption `json:"option,omitempty"`
}

// CallPark is a call park extension of a calling location. List entries
// carry the location fields; details do not.
type CallPark struct {
	// ID is the unique identifier of the call park.
	ID string `json:"id,omitempty"`
	// Name is the call park's name, unique within the location.
	Name string `json:"name,omitempty"`
	// LocationID is the owning location. Only set on list results.
	LocationID string `json:"locationId,omitempty"`
	// LocationName is the owning location's name. Only set on list
	// results.
	LocationName string `json:"locationName,omitempty"`
	// Recall configures where unanswered parked calls return to.
	Recall *RecallHuntGroup `json:"recall,omitempty"`
	// Agents are the people and workspaces whose calls can be parked
	// against this extension.
	Agents []PersonPlaceAgent `json:"agents,omitempty"`
}

// DefaultCallPark returns the minimal call park settings for a create
// call: a name and a recall alerting the parking user only.
func DefaultCallPark(name string) *CallPark {
	return &CallPark{
		Name:   name,
		Recall: &RecallHuntGroup{Option: RecallParkingUserOnly},
	}
}

// callParkUpdate is the wire form of a create or update call: location
// fields stripped, agents collapsed to IDs.
type callParkUpdate struct {
	Name   string        `json:"name,omitempty"`
	Recall *recallUpdate `json:"recall,omitempty"`
	Agents []string      `json:"agents,omitempty"`
}

// MarshalJSON lets a CallPark value read from the server be sent back on
// update unchanged: server-assigned fields are stripped and agents
// serialize as bare IDs.
func (cp CallPark) MarshalJSON() ([]byte, error) {
	update := callParkUpdate{
		Name:   cp.Name,
		Agents: agentIDs(cp.Agents),
	}
	if cp.Recall != nil {
		update.Recall = &recallUpdate{
			HuntGroupID: cp.Recall.HuntGroupID,
			Option:      cp.Recall.Option,
		}
	}
	return json.Marshal(update)
}

// AvailableRecallHuntGroup is a hunt group that can take parked call
// recalls in a location.
type AvailableRecallHuntGroup struct {
	// ID is the unique identifier of the hunt group.
	ID string `json:"id"`
	// Name is the hunt group's name.
	Name string `json:"name,omitempty"`
}

// CallParkSettings are the ring and timing settings of a location's call
// parks.
type CallParkSettings struct {
	// RingPattern is the ring pattern of recalled calls, for example
	// NORMAL or LONG_LONG.
	RingPattern string `json:"ringPattern,omitempty"`
	// RecallTime is the seconds a call stays parked before recalling.
	RecallTime int `json:"recallTime,omitempty"`
	// HuntWaitTime is the seconds a recall waits at the parking user
	// before moving on to the hunt group.
	HuntWaitTime int `json:"huntWaitTime,omitempty"`
}

// LocationCallParkSettings are the location-wide call park settings.
type LocationCallParkSettings struct {
	// CallParkRecall is the default recall destination of the location.
	CallParkRecall *RecallHuntGroup `json:"callParkRecall,omitempty"`
	// CallParkSettings holds the ring and timing settings.
	CallParkSettings *CallParkSettings `json:"callParkSettings,omitempty"`
}

// locationCallParkSettingsUpdate is the wire form of a location settings
// update.
type locationCallParkSettingsUpdate struct {
	CallParkRecall   *recallUpdate     `json:"callParkRecall,omitempty"`
	CallParkSettings *CallParkSettings `json:"callParkSettings,omitempty"`
}

// MarshalJSON strips the server-side hunt group name on update.
func (s LocationCallParkSettings) MarshalJSON() ([]byte, error) {
	update := locationCallParkSettingsUpdate{
		CallParkSettings: s.CallParkSettings,
	}
	if s.CallParkRecall != nil {
		update.CallParkRecall = &recallUpdate{
			HuntGroupID: s.CallParkRecall.HuntGroupID,
			Option:      s.CallParkRecall.Option,
		}
	}
	return json.Marshal(update)
}

// CallParkAPI manages the call park extensions of calling locations.
type CallParkAPI struct {
	session *core.Session
}

func (a *CallParkAPI) base(locationID string, segments ...string) string {
	all := append([]string{"telephony", "config", "locations", locationID, "callParks"}, segments...)
	return a.session.URL(all...)
}

// List lists the call parks of a location. name filters to call parks
// whose name starts with the given prefix; max caps the page size.
func (a *CallParkAPI) List(locationID, name string, max int) *core.Pager[CallPark] {
	return core.NewKeyedPager[CallPark](a.session, a.base(locationID), listParams(name, max), "callParks")
}

// Create creates a call park in a location and returns the new ID.
func (a *CallParkAPI) Create(ctx context.Context, locationID string, settings *CallPark) (string, error) {
	if err := requireID("locationID", locationID); err != nil {
		return "", err
	}
	if settings == nil || settings.Name == "" {
		return "", &core.ValidationError{Fields: []string{"settings.Name: required"}}
	}
	var resp newIDResponse
	if err := a.session.PostJSON(ctx, a.base(locationID), nil, settings, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Details gets the settings of a call park. The result does not carry the
// location fields.
func (a *CallParkAPI) Details(ctx context.Context, locationID, callParkID string) (*CallPark, error) {
	if err := requireID("locationID", locationID); err != nil {
		return nil, err
	}
	if err := requireID("callParkID", callParkID); err != nil {
		return nil, err
	}
	var cp CallPark
	if err := a.session.GetJSON(ctx, a.base(locationID, callParkID), nil, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// Update updates a call park. Renaming may move the call park to a new
// ID; the returned ID replaces the old one and must be used from then on.
func (a *CallParkAPI) Update(ctx context.Context, locationID, callParkID string, settings *CallPark) (string, error) {
	if err := requireID("locationID", locationID); err != nil {
		return "", err
	}
	if err := requireID("callParkID", callParkID); err != nil {
		return "", err
	}
	var resp newIDResponse
	if err := a.session.PutJSON(ctx, a.base(locationID, callParkID), nil, settings, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return callParkID, nil
	}
	return resp.ID, nil
}

// Delete deletes a call park.
func (a *CallParkAPI) Delete(ctx context.Context, locationID, callParkID string) error {
	if err := requireID("locationID", locationID); err != nil {
		return err
	}
	if err := requireID("callParkID", callParkID); err != nil {
		return err
	}
	return a.session.Delete(ctx, a.base(locationID, callParkID), nil)
}

// AvailableAgents lists the people and workspaces that can be added as
// agents of a call park in the location.
func (a *CallParkAPI) AvailableAgents(locationID, name string, max int) *core.Pager[PersonPlaceAgent] {
	return core.NewKeyedPager[PersonPlaceAgent](a.session, a.base(locationID, "availableUsers"), listParams(name, max), "agents")
}

// AvailableRecalls lists the hunt groups that can take parked call
// recalls in the location.
func (a *CallParkAPI) AvailableRecalls(locationID, name string, max int) *core.Pager[AvailableRecallHuntGroup] {
	return core.NewKeyedPager[AvailableRecallHuntGroup](a.session, a.base(locationID, "availableRecallHuntGroups"), listParams(name, max), "huntGroups")
}

// LocationSettings gets the location-wide call park settings.
func (a *CallParkAPI) LocationSettings(ctx context.Context, locationID string) (*LocationCallParkSettings, error) {
	if err := requireID("locationID", locationID); err != nil {
		return nil, err
	}
	var settings LocationCallParkSettings
	if err := a.session.GetJSON(ctx, a.base(locationID, "settings"), nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateLocationSettings updates the location-wide call park settings.
func (a *CallParkAPI) UpdateLocationSettings(ctx context.Context, locationID string, settings *LocationCallParkSettings) error {
	if err := requireID("locationID", locationID); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.base(locationID, "settings"), nil, settings, nil)
}
