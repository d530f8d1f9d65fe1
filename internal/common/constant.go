// Package common contains constants and small helpers shared by the client
// packages.
package common

const (
	// TokenStorageKey is the metadata key the session token is persisted under.
	TokenStorageKey = "token"

	// AuthorizationHeader carries "Bearer <token>" on authenticated requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)
