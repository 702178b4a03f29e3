package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/petal-labs/calla/core"
)

const (
	defaultAuthorizeURL = "https://webexapis.com/v1/authorize"
	defaultTokenURL     = "https://webexapis.com/v1/access_token"
)

// Integration implements the OAuth authorization code flow for a Webex
// integration. An Integration is immutable after construction and safe
// for concurrent use.
type Integration struct {
	clientID     string
	clientSecret core.Secret
	redirectURI  string
	scopes       []string
	authorizeURL string
	tokenURL     string
	http         *http.Client
}

// IntegrationOption configures an Integration.
type IntegrationOption func(*Integration)

// WithTokenURL overrides the token endpoint. Useful for testing.
func WithTokenURL(u string) IntegrationOption {
	return func(i *Integration) {
		if u != "" {
			i.tokenURL = u
		}
	}
}

// WithAuthorizeURL overrides the authorization endpoint.
func WithAuthorizeURL(u string) IntegrationOption {
	return func(i *Integration) {
		if u != "" {
			i.authorizeURL = u
		}
	}
}

// WithIntegrationHTTPClient replaces the HTTP client used for token
// endpoint calls.
func WithIntegrationHTTPClient(c *http.Client) IntegrationOption {
	return func(i *Integration) {
		if c != nil {
			i.http = c
		}
	}
}

// NewIntegration creates an OAuth integration client.
func NewIntegration(clientID, clientSecret, redirectURI string, scopes []string, opts ...IntegrationOption) *Integration {
	i := &Integration{
		clientID:     clientID,
		clientSecret: core.NewSecret(clientSecret),
		redirectURI:  redirectURI,
		scopes:       scopes,
		authorizeURL: defaultAuthorizeURL,
		tokenURL:     defaultTokenURL,
		http:         &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// AuthURL returns the URL a user visits to grant the integration access.
// state is echoed back on the redirect and must be verified by the caller.
func (i *Integration) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", i.clientID)
	q.Set("response_type", "code")
	q.Set("redirect_uri", i.redirectURI)
	q.Set("scope", strings.Join(i.scopes, " "))
	q.Set("state", state)
	return i.authorizeURL + "?" + q.Encode()
}

// Exchange trades an authorization code for a token set.
func (i *Integration) Exchange(ctx context.Context, code string) (*Tokens, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", i.clientID)
	form.Set("client_secret", i.clientSecret.Expose())
	form.Set("code", code)
	form.Set("redirect_uri", i.redirectURI)
	return i.tokenRequest(ctx, form)
}

// Refresh obtains a fresh access token using the refresh token of the
// given token set. The refresh token itself is carried over when the
// server does not rotate it.
func (i *Integration) Refresh(ctx context.Context, tokens *Tokens) (*Tokens, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", i.clientID)
	form.Set("client_secret", i.clientSecret.Expose())
	form.Set("refresh_token", tokens.RefreshToken)
	fresh, err := i.tokenRequest(ctx, form)
	if err != nil {
		return nil, err
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = tokens.RefreshToken
		fresh.RefreshTokenExpiresAt = tokens.RefreshTokenExpiresAt
	}
	return fresh, nil
}

// tokenRequest posts a form to the token endpoint and decodes the result.
func (i *Integration) tokenRequest(ctx context.Context, form url.Values) (*Tokens, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrNetwork}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := i.http.Do(req)
	if err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrNetwork}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrNetwork}
	}

	if resp.StatusCode >= 400 {
		apiErr := &core.APIError{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
			Err:     core.SentinelForStatus(resp.StatusCode),
		}
		var parsed struct {
			Message string `json:"message"`
			// Token endpoint errors may use the OAuth shape instead.
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		if json.Unmarshal(body, &parsed) == nil {
			switch {
			case parsed.Message != "":
				apiErr.Message = parsed.Message
			case parsed.ErrorDescription != "":
				apiErr.Message = parsed.ErrorDescription
			case parsed.Error != "":
				apiErr.Message = parsed.Error
			}
		}
		return nil, apiErr
	}

	tokens := &Tokens{}
	if err := json.Unmarshal(body, tokens); err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrDecode}
	}
	tokens.SetExpiration(time.Now())
	return tokens, nil
}

// Source wraps a token set into a refreshing token source. Token calls
// return the cached access token until it enters the refresh window, then
// refresh it through the integration. Concurrent callers share a single
// refresh.
func (i *Integration) Source(tokens *Tokens) core.TokenSource {
	return &refreshingSource{integration: i, tokens: tokens}
}

type refreshingSource struct {
	integration *Integration

	mu     sync.Mutex
	tokens *Tokens
}

func (r *refreshingSource) Token(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tokens.NeedsRefresh(time.Now()) && r.tokens.RefreshToken != "" {
		fresh, err := r.integration.Refresh(ctx, r.tokens)
		if err != nil {
			// A still-valid token can serve while refresh fails.
			if r.tokens.Remaining(time.Now()) > 0 {
				return r.tokens.AccessToken, nil
			}
			return "", err
		}
		r.tokens = fresh
	}
	return r.tokens.AccessToken, nil
}
