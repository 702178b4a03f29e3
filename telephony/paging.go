package telephony

import (
	"context"
	"encoding/json"

	"github.com/petal-labs/calla/core"
)

// Paging is a group paging extension of a calling location: originators
// page all targets simultaneously over their device speakers.
type Paging struct {
	// ID is the unique identifier of the paging group.
	ID string `json:"id,omitempty"`
	// Name is the paging group's name, unique within the location.
	Name string `json:"name,omitempty"`
	// LocationID is the owning location. Only set on list results.
	LocationID string `json:"locationId,omitempty"`
	// LocationName is the owning location's name. Only set on list
	// results.
	LocationName string `json:"locationName,omitempty"`
	// Enabled turns the paging group on.
	Enabled *bool `json:"enabled,omitempty"`
	// Extension is the paging group's on-net extension.
	Extension string `json:"extension,omitempty"`
	// PhoneNumber is the paging group's PSTN number, if any.
	PhoneNumber string `json:"phoneNumber,omitempty"`
	// LanguageCode is the announcement language.
	LanguageCode string `json:"languageCode,omitempty"`
	// FirstName is the calling line ID first name.
	FirstName string `json:"firstName,omitempty"`
	// LastName is the calling line ID last name.
	LastName string `json:"lastName,omitempty"`
	// OriginatorCapsEnabled includes the originator in the page.
	OriginatorCapsEnabled *bool `json:"originatorCapsEnabled,omitempty"`
	// Originators are the people allowed to start a page.
	Originators []PersonPlaceAgent `json:"originators,omitempty"`
	// Targets are the people and workspaces that get paged.
	Targets []PersonPlaceAgent `json:"targets,omitempty"`
}

// pagingUpdate is the wire form of a create or update call: location
// fields stripped, members collapsed to IDs.
type pagingUpdate struct {
	Name                  string   `json:"name,omitempty"`
	Enabled               *bool    `json:"enabled,omitempty"`
	Extension             string   `json:"extension,omitempty"`
	PhoneNumber           string   `json:"phoneNumber,omitempty"`
	LanguageCode          string   `json:"languageCode,omitempty"`
	FirstName             string   `json:"firstName,omitempty"`
	LastName              string   `json:"lastName,omitempty"`
	OriginatorCapsEnabled *bool    `json:"originatorCapsEnabled,omitempty"`
	Originators           []string `json:"originators,omitempty"`
	Targets               []string `json:"targets,omitempty"`
}

// MarshalJSON lets a Paging value read from the server be sent back on
// update unchanged: originators and targets serialize as bare IDs.
func (p Paging) MarshalJSON() ([]byte, error) {
	return json.Marshal(pagingUpdate{
		Name:                  p.Name,
		Enabled:               p.Enabled,
		Extension:             p.Extension,
		PhoneNumber:           p.PhoneNumber,
		LanguageCode:          p.LanguageCode,
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		OriginatorCapsEnabled: p.OriginatorCapsEnabled,
		Originators:           agentIDs(p.Originators),
		Targets:               agentIDs(p.Targets),
	})
}

// PagingAPI manages the group paging extensions of calling locations.
type PagingAPI struct {
	session *core.Session
}

func (a *PagingAPI) base(locationID string, segments ...string) string {
	all := append([]string{"telephony", "config", "locations", locationID, "paging"}, segments...)
	return a.session.URL(all...)
}

// List lists the paging groups of a location.
func (a *PagingAPI) List(locationID, name string, max int) *core.Pager[Paging] {
	return core.NewKeyedPager[Paging](a.session, a.base(locationID), listParams(name, max), "locationPaging")
}

// Create creates a paging group in a location and returns the new ID. A
// paging group needs at least an extension or a phone number.
func (a *PagingAPI) Create(ctx context.Context, locationID string, settings *Paging) (string, error) {
	if err := requireID("locationID", locationID); err != nil {
		return "", err
	}
	if settings == nil || settings.Name == "" {
		return "", &core.ValidationError{Fields: []string{"settings.Name: required"}}
	}
	if settings.Extension == "" && settings.PhoneNumber == "" {
		return "", &core.ValidationError{Fields: []string{"settings: extension or phone number required"}}
	}
	var resp newIDResponse
	if err := a.session.PostJSON(ctx, a.base(locationID), nil, settings, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Details gets the settings of a paging group.
func (a *PagingAPI) Details(ctx context.Context, locationID, pagingID string) (*Paging, error) {
	if err := requireID("locationID", locationID); err != nil {
		return nil, err
	}
	if err := requireID("pagingID", pagingID); err != nil {
		return nil, err
	}
	var paging Paging
	if err := a.session.GetJSON(ctx, a.base(locationID, pagingID), nil, &paging); err != nil {
		return nil, err
	}
	return &paging, nil
}

// Update updates a paging group.
func (a *PagingAPI) Update(ctx context.Context, locationID, pagingID string, settings *Paging) error {
	if err := requireID("locationID", locationID); err != nil {
		return err
	}
	if err := requireID("pagingID", pagingID); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.base(locationID, pagingID), nil, settings, nil)
}

// Delete deletes a paging group.
func (a *PagingAPI) Delete(ctx context.Context, locationID, pagingID string) error {
	if err := requireID("locationID", locationID); err != nil {
		return err
	}
	if err := requireID("pagingID", pagingID); err != nil {
		return err
	}
	return a.session.Delete(ctx, a.base(locationID, pagingID), nil)
}
