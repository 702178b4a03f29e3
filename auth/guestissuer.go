package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/petal-labs/calla/core"
)

const defaultJWTLoginURL = "https://webexapis.com/v1/jwt/login"

// GuestIssuer creates access tokens for guest users. A guest issuer app
// holds a shared secret; the SDK signs a short JWT with it and exchanges
// the JWT for a guest access token at the jwt/login endpoint.
type GuestIssuer struct {
	issuerID string
	secret   core.Secret
	loginURL string
	http     *http.Client
}

// GuestIssuerOption configures a GuestIssuer.
type GuestIssuerOption func(*GuestIssuer)

// WithLoginURL overrides the jwt/login endpoint. Useful for testing.
func WithLoginURL(u string) GuestIssuerOption {
	return func(g *GuestIssuer) {
		if u != "" {
			g.loginURL = u
		}
	}
}

// WithGuestIssuerHTTPClient replaces the HTTP client used for login calls.
func WithGuestIssuerHTTPClient(c *http.Client) GuestIssuerOption {
	return func(g *GuestIssuer) {
		if c != nil {
			g.http = c
		}
	}
}

// NewGuestIssuer creates a guest issuer client. secret is the
// base64-encoded shared secret shown when the guest issuer app was
// created.
func NewGuestIssuer(issuerID, secret string, opts ...GuestIssuerOption) *GuestIssuer {
	g := &GuestIssuer{
		issuerID: issuerID,
		secret:   core.NewSecret(secret),
		loginURL: defaultJWTLoginURL,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SignJWT builds and signs the guest JWT for the given subject. subject
// uniquely identifies the guest within the issuer; displayName is shown
// to other users.
func (g *GuestIssuer) SignJWT(subject, displayName string, ttl time.Duration) (string, error) {
	key, err := base64.StdEncoding.DecodeString(g.secret.Expose())
	if err != nil {
		return "", fmt.Errorf("guest issuer secret is not valid base64: %w", err)
	}

	claims := jwt.MapClaims{
		"sub":  subject,
		"name": displayName,
		"iss":  g.issuerID,
	}
	if ttl > 0 {
		claims["exp"] = time.Now().Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// guestLoginResponse is the body of a successful jwt/login call.
type guestLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// Login signs a guest JWT and exchanges it for a guest token set.
func (g *GuestIssuer) Login(ctx context.Context, subject, displayName string) (*Tokens, error) {
	signed, err := g.SignJWT(subject, displayName, time.Hour)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.loginURL, nil)
	if err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrNetwork}
	}
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrNetwork}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrNetwork}
	}

	if resp.StatusCode >= 400 {
		return nil, &core.APIError{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
			Err:     core.SentinelForStatus(resp.StatusCode),
		}
	}

	var login guestLoginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return nil, &core.APIError{Message: err.Error(), Err: core.ErrDecode}
	}

	tokens := &Tokens{
		AccessToken: login.Token,
		ExpiresIn:   login.ExpiresIn,
		TokenType:   "Bearer",
	}
	tokens.SetExpiration(time.Now())
	return tokens, nil
}

// Source returns a token source that logs the guest in on first use and
// re-logs in when the guest token nears expiry.
func (g *GuestIssuer) Source(subject, displayName string) core.TokenSource {
	return &guestSource{issuer: g, subject: subject, displayName: displayName}
}

type guestSource struct {
	issuer      *GuestIssuer
	subject     string
	displayName string

	mu     sync.Mutex
	tokens *Tokens
}

func (s *guestSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens == nil || s.tokens.NeedsRefresh(time.Now()) {
		tokens, err := s.issuer.Login(ctx, s.subject, s.displayName)
		if err != nil {
			if s.tokens != nil && s.tokens.Remaining(time.Now()) > 0 {
				return s.tokens.AccessToken, nil
			}
			return "", err
		}
		s.tokens = tokens
	}
	return s.tokens.AccessToken, nil
}
