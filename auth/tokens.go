package auth

import (
	"context"
	"time"

	"github.com/petal-labs/calla/core"
)

// refreshWindow is how much remaining lifetime triggers a refresh.
const refreshWindow = 15 * time.Minute

// StaticToken returns a token source that always yields the given token.
// Use this for personal access tokens and bot tokens.
func StaticToken(token string) core.TokenSource {
	return staticSource{token: core.NewSecret(token)}
}

type staticSource struct {
	token core.Secret
}

func (s staticSource) Token(ctx context.Context) (string, error) {
	return s.token.Expose(), nil
}

// Tokens is an OAuth token set as returned by the Webex token endpoint.
// The wire format carries lifetimes as relative seconds; call
// SetExpiration after obtaining a token set to pin absolute deadlines.
type Tokens struct {
	// AccessToken is the bearer token used on API requests.
	AccessToken string `json:"access_token"`
	// ExpiresIn is the access token lifetime in seconds at issue time.
	ExpiresIn int `json:"expires_in"`
	// ExpiresAt is the absolute access token deadline. Not part of the
	// wire format; set via SetExpiration.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// RefreshToken can be exchanged for a fresh access token.
	RefreshToken string `json:"refresh_token,omitempty"`
	// RefreshTokenExpiresIn is the refresh token lifetime in seconds.
	RefreshTokenExpiresIn int `json:"refresh_token_expires_in,omitempty"`
	// RefreshTokenExpiresAt is the absolute refresh token deadline.
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	// TokenType is the token scheme, normally "Bearer".
	TokenType string `json:"token_type,omitempty"`
	// Scope is the space-separated list of granted scopes.
	Scope string `json:"scope,omitempty"`
}

// SetExpiration converts the relative lifetimes into absolute deadlines
// anchored at now.
func (t *Tokens) SetExpiration(now time.Time) {
	if t.ExpiresIn > 0 {
		t.ExpiresAt = now.Add(time.Duration(t.ExpiresIn) * time.Second)
	}
	if t.RefreshTokenExpiresIn > 0 {
		t.RefreshTokenExpiresAt = now.Add(time.Duration(t.RefreshTokenExpiresIn) * time.Second)
	}
}

// Remaining returns the access token lifetime left at now. Zero when no
// deadline is known.
func (t *Tokens) Remaining(now time.Time) time.Duration {
	if t.ExpiresAt.IsZero() {
		return 0
	}
	remaining := t.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NeedsRefresh reports whether the access token is within the refresh
// window (less than 15 minutes of lifetime left). A token set without a
// known deadline never reports needing refresh.
func (t *Tokens) NeedsRefresh(now time.Time) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return t.Remaining(now) < refreshWindow
}
