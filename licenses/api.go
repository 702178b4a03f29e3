// Package licenses implements the /licenses endpoint group: the service
// entitlements of an organization and their consumption.
package licenses

import (
	"context"
	"net/url"

	"github.com/petal-labs/calla/core"
)

// License is a service entitlement, for example a Webex Calling or
// Meetings subscription unit.
type License struct {
	// ID is the unique identifier for the license.
	ID string `json:"id,omitempty"`
	// Name is the license name.
	Name string `json:"name,omitempty"`
	// TotalUnits is the total number of units provisioned.
	TotalUnits int `json:"totalUnits,omitempty"`
	// ConsumedUnits is the number of units assigned to users.
	ConsumedUnits int `json:"consumedUnits,omitempty"`
	// SubscriptionID is the subscription the license belongs to.
	SubscriptionID string `json:"subscriptionId,omitempty"`
	// SiteURL is the Webex meeting site backing the license, if any.
	SiteURL string `json:"siteUrl,omitempty"`
	// SiteType distinguishes control-hub from linked sites.
	SiteType string `json:"siteType,omitempty"`
}

// ListOptions filters API.List.
type ListOptions struct {
	// OrgID lists licenses of another organization (partner admin only).
	OrgID string
}

// API exposes the licenses operations over a shared session.
type API struct {
	session *core.Session
}

// New creates the licenses API over the given session.
func New(s *core.Session) *API {
	return &API{session: s}
}

// List lists all licenses of the organization.
func (a *API) List(opts *ListOptions) *core.Pager[License] {
	params := url.Values{}
	if opts != nil && opts.OrgID != "" {
		params.Set("orgId", opts.OrgID)
	}
	return core.NewPager[License](a.session, a.session.URL("licenses"), params)
}

// Details shows details for a license, by ID.
func (a *API) Details(ctx context.Context, licenseID string) (*License, error) {
	if licenseID == "" {
		return nil, &core.ValidationError{Fields: []string{"licenseID: required"}}
	}
	var lic License
	if err := a.session.GetJSON(ctx, a.session.URL("licenses", licenseID), nil, &lic); err != nil {
		return nil, err
	}
	return &lic, nil
}
