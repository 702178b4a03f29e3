// Package auth provides token sources for the calla SDK: static bearer
// tokens, OAuth integrations with automatic refresh, and guest issuer
// (JWT) login.
//
// The simplest path is a personal access token:
//
//	api := calla.New(os.Getenv("CALLA_ACCESS_TOKEN"))
//
// An OAuth integration refreshes expiring tokens transparently:
//
//	integ := auth.NewIntegration(clientID, clientSecret, redirectURI, scopes)
//	api := calla.NewWithTokenSource(integ.Source(tokens))
package auth
