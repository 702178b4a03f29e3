package telephony

import (
	"context"

	"github.com/petal-labs/calla/core"
)

// PremPSTNAPI groups the premises PSTN configuration APIs: trunks carry
// the calls, route groups bundle trunks with priorities, and route lists
// bind numbers in a location to a route group.
type PremPSTNAPI struct {
	// Trunk manages trunks to premises equipment.
	Trunk *TrunkAPI
	// RouteGroup manages prioritized trunk bundles.
	RouteGroup *RouteGroupAPI
	// RouteList manages per-location number lists routed via a group.
	RouteList *RouteListAPI
}

// TrunkType distinguishes how a trunk registers with Webex Calling.
type TrunkType string

const (
	// TrunkRegistering trunks register with a SIP password.
	TrunkRegistering TrunkType = "REGISTERING"
	// TrunkCertificateBased trunks authenticate with mutual TLS.
	TrunkCertificateBased TrunkType = "CERTIFICATE_BASED"
)

// IDName is a referenced object carried as an ID plus display name.
type IDName struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Trunk is a connection to premises PSTN equipment.
type Trunk struct {
	// ID is the unique identifier of the trunk.
	ID string `json:"id,omitempty"`
	// Name is the trunk's name, unique within the organization.
	Name string `json:"name,omitempty"`
	// Location is the owning location.
	Location *IDName `json:"location,omitempty"`
	// InUse reports whether any route group or location uses the trunk.
	InUse bool `json:"inUse,omitempty"`
	// TrunkType is how the trunk registers.
	TrunkType TrunkType `json:"trunkType,omitempty"`
}

// CreateTrunkRequest is the body of a trunk create call.
type CreateTrunkRequest struct {
	// Name is the trunk's name. Required.
	Name string `json:"name" validate:"required,max=24"`
	// LocationID is the owning location. Required.
	LocationID string `json:"locationId" validate:"required"`
	// Password is the SIP registration password. Required; see
	// API.GeneratePassword for a compliant suggestion.
	Password string `json:"password" validate:"required"`
	// TrunkType is how the trunk registers. Required.
	TrunkType TrunkType `json:"trunkType" validate:"required"`
	// DualIdentitySupportEnabled relaxes the From header check for
	// forwarded calls.
	DualIdentitySupportEnabled *bool `json:"dualIdentitySupportEnabled,omitempty"`
}

// TrunkAPI manages trunks to premises PSTN equipment.
type TrunkAPI struct {
	session *core.Session
}

func (a *TrunkAPI) base(segments ...string) string {
	all := append([]string{"telephony", "config", "premisePstn", "trunks"}, segments...)
	return a.session.URL(all...)
}

// List lists the trunks of the organization.
func (a *TrunkAPI) List(name string, max int) *core.Pager[Trunk] {
	return core.NewKeyedPager[Trunk](a.session, a.base(), listParams(name, max), "trunks")
}

// Create creates a trunk and returns the new ID.
func (a *TrunkAPI) Create(ctx context.Context, req *CreateTrunkRequest) (string, error) {
	if err := core.Validate(req); err != nil {
		return "", err
	}
	var resp newIDResponse
	if err := a.session.PostJSON(ctx, a.base(), nil, req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Details gets the settings of a trunk.
func (a *TrunkAPI) Details(ctx context.Context, trunkID string) (*Trunk, error) {
	if err := requireID("trunkID", trunkID); err != nil {
		return nil, err
	}
	var trunk Trunk
	if err := a.session.GetJSON(ctx, a.base(trunkID), nil, &trunk); err != nil {
		return nil, err
	}
	return &trunk, nil
}

// Delete deletes a trunk. A trunk in use by a route group cannot be
// deleted.
func (a *TrunkAPI) Delete(ctx context.Context, trunkID string) error {
	if err := requireID("trunkID", trunkID); err != nil {
		return err
	}
	return a.session.Delete(ctx, a.base(trunkID), nil)
}

// RouteGroupTrunk is one trunk of a route group with its selection
// priority. Lower priorities are tried first.
type RouteGroupTrunk struct {
	// ID is the trunk's unique identifier.
	ID string `json:"id" validate:"required"`
	// Name is the trunk's name. Read-only.
	Name string `json:"name,omitempty"`
	// LocationID is the trunk's owning location. Read-only.
	LocationID string `json:"locationId,omitempty"`
	// Priority is the trunk's selection priority, starting at 1.
	Priority int `json:"priority" validate:"required,min=1"`
}

// RouteGroup is a prioritized bundle of trunks.
type RouteGroup struct {
	// ID is the unique identifier of the route group.
	ID string `json:"id,omitempty"`
	// Name is the route group's name, unique within the organization.
	Name string `json:"name,omitempty"`
	// InUse reports whether any route list or dial plan uses the group.
	InUse bool `json:"inUse,omitempty"`
	// LocalGateways are the trunks of the group.
	LocalGateways []RouteGroupTrunk `json:"localGateways,omitempty"`
}

// CreateRouteGroupRequest is the body of a route group create call.
type CreateRouteGroupRequest struct {
	// Name is the route group's name. Required.
	Name string `json:"name" validate:"required,max=80"`
	// LocalGateways are the trunks of the group. At least one is
	// required.
	LocalGateways []RouteGroupTrunk `json:"localGateways" validate:"required,min=1,dive"`
}

// RouteGroupAPI manages prioritized trunk bundles.
type RouteGroupAPI struct {
	session *core.Session
}

func (a *RouteGroupAPI) base(segments ...string) string {
	all := append([]string{"telephony", "config", "premisePstn", "routeGroups"}, segments...)
	return a.session.URL(all...)
}

// List lists the route groups of the organization.
func (a *RouteGroupAPI) List(name string, max int) *core.Pager[RouteGroup] {
	return core.NewKeyedPager[RouteGroup](a.session, a.base(), listParams(name, max), "routeGroups")
}

// Create creates a route group and returns the new ID.
func (a *RouteGroupAPI) Create(ctx context.Context, req *CreateRouteGroupRequest) (string, error) {
	if err := core.Validate(req); err != nil {
		return "", err
	}
	var resp newIDResponse
	if err := a.session.PostJSON(ctx, a.base(), nil, req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Details gets the settings of a route group.
func (a *RouteGroupAPI) Details(ctx context.Context, routeGroupID string) (*RouteGroup, error) {
	if err := requireID("routeGroupID", routeGroupID); err != nil {
		return nil, err
	}
	var rg RouteGroup
	if err := a.session.GetJSON(ctx, a.base(routeGroupID), nil, &rg); err != nil {
		return nil, err
	}
	return &rg, nil
}

// Delete deletes a route group. A route group in use by a route list
// cannot be deleted.
func (a *RouteGroupAPI) Delete(ctx context.Context, routeGroupID string) error {
	if err := requireID("routeGroupID", routeGroupID); err != nil {
		return err
	}
	return a.session.Delete(ctx, a.base(routeGroupID), nil)
}

// RouteList binds numbers of a location to a route group. List entries
// carry flat location and route group fields; details nest them.
type RouteList struct {
	// ID is the unique identifier of the route list.
	ID string `json:"id,omitempty"`
	// Name is the route list's name, unique within the organization.
	Name string `json:"name,omitempty"`
	// LocationID is the owning location. Only set on list results.
	LocationID string `json:"locationId,omitempty"`
	// LocationName is the owning location's name. Only set on list
	// results.
	LocationName string `json:"locationName,omitempty"`
	// RouteGroupID is the routing group. Only set on list results.
	RouteGroupID string `json:"routeGroupId,omitempty"`
	// RouteGroupName is the routing group's name. Only set on list
	// results.
	RouteGroupName string `json:"routeGroupName,omitempty"`
	// Location is the owning location. Only set on details.
	Location *IDName `json:"location,omitempty"`
	// RouteGroup is the routing group. Only set on details.
	RouteGroup *IDName `json:"routeGroup,omitempty"`
}

// CreateRouteListRequest is the body of a route list create call.
type CreateRouteListRequest struct {
	// Name is the route list's name. Required.
	Name string `json:"name" validate:"required,max=80"`
	// LocationID is the owning location. Required.
	LocationID string `json:"locationId" validate:"required"`
	// RouteGroupID is the routing group. Required.
	RouteGroupID string `json:"routeGroupId" validate:"required"`
}

// UpdateRouteListRequest is the body of a route list update call.
type UpdateRouteListRequest struct {
	// Name is the route list's new name.
	Name string `json:"name,omitempty"`
	// RouteGroupID is the new routing group.
	RouteGroupID string `json:"routeGroupId,omitempty"`
}

// NumberAction says what to do with one number of a route list.
type NumberAction string

const (
	// NumberAdd adds the number to the route list.
	NumberAdd NumberAction = "ADD"
	// NumberDelete removes the number from the route list.
	NumberDelete NumberAction = "DELETE"
)

// NumberAndAction is one number change of a route list update.
type NumberAndAction struct {
	// Number is the phone number in E.164 format.
	Number string `json:"number" validate:"required"`
	// Action says whether the number is added or removed.
	Action NumberAction `json:"action" validate:"required,oneof=ADD DELETE"`
}

// AddNumber builds the change adding a number to a route list.
func AddNumber(number string) NumberAndAction {
	return NumberAndAction{Number: number, Action: NumberAdd}
}

// DeleteNumber builds the change removing a number from a route list.
func DeleteNumber(number string) NumberAndAction {
	return NumberAndAction{Number: number, Action: NumberDelete}
}

// NumberStatus reports the outcome of one number change.
type NumberStatus struct {
	// PhoneNumber is the number the status refers to.
	PhoneNumber string `json:"phoneNumber"`
	// Accepted reports whether the change was applied.
	Accepted bool `json:"accepted"`
	// Message explains a rejected change.
	Message string `json:"message,omitempty"`
}

// RouteListAPI manages per-location number lists routed via a group.
type RouteListAPI struct {
	session *core.Session
}

func (a *RouteListAPI) base(segments ...string) string {
	all := append([]string{"telephony", "config", "premisePstn", "routeLists"}, segments...)
	return a.session.URL(all...)
}

// List lists the route lists of the organization.
func (a *RouteListAPI) List(name string, max int) *core.Pager[RouteList] {
	return core.NewKeyedPager[RouteList](a.session, a.base(), listParams(name, max), "routeLists")
}

// Create creates a route list and returns the new ID.
func (a *RouteListAPI) Create(ctx context.Context, req *CreateRouteListRequest) (string, error) {
	if err := core.Validate(req); err != nil {
		return "", err
	}
	var resp newIDResponse
	if err := a.session.PostJSON(ctx, a.base(), nil, req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Details gets the settings of a route list, with location and route
// group as nested records.
func (a *RouteListAPI) Details(ctx context.Context, routeListID string) (*RouteList, error) {
	if err := requireID("routeListID", routeListID); err != nil {
		return nil, err
	}
	var rl RouteList
	if err := a.session.GetJSON(ctx, a.base(routeListID), nil, &rl); err != nil {
		return nil, err
	}
	return &rl, nil
}

// Update updates the name or routing group of a route list.
func (a *RouteListAPI) Update(ctx context.Context, routeListID string, req *UpdateRouteListRequest) error {
	if err := requireID("routeListID", routeListID); err != nil {
		return err
	}
	return a.session.PutJSON(ctx, a.base(routeListID), nil, req, nil)
}

// Delete deletes a route list.
func (a *RouteListAPI) Delete(ctx context.Context, routeListID string) error {
	if err := requireID("routeListID", routeListID); err != nil {
		return err
	}
	return a.session.Delete(ctx, a.base(routeListID), nil)
}

// Numbers lists the numbers of a route list.
func (a *RouteListAPI) Numbers(routeListID string, max int) *core.Pager[string] {
	return core.NewKeyedPager[string](a.session, a.base(routeListID, "numbers"), listParams("", max), "phoneNumbers")
}

// UpdateNumbers adds and removes numbers of a route list. The result
// carries one status per rejected change; an empty result means every
// change was applied.
func (a *RouteListAPI) UpdateNumbers(ctx context.Context, routeListID string, numbers []NumberAndAction) ([]NumberStatus, error) {
	if err := requireID("routeListID", routeListID); err != nil {
		return nil, err
	}
	for _, n := range numbers {
		if err := core.Validate(&n); err != nil {
			return nil, err
		}
	}
	body := struct {
		Numbers []NumberAndAction `json:"numbers"`
	}{Numbers: numbers}
	var resp struct {
		NumberStatus []NumberStatus `json:"numberStatus"`
	}
	if err := a.session.PutJSON(ctx, a.base(routeListID, "numbers"), nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.NumberStatus, nil
}
