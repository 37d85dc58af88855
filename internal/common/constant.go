// Package common defines shared constants and sentinel errors used across
// the client layers of Inkpress. Callers should use errors.Is to match errors.
package common

const (
	// Storage keys for the locally persisted session.
	TokenStorageKey = "token"
	UserStorageKey  = "user"

	// AuthorizationHeader carries the bearer credential on authenticated calls.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader tags every outbound request for backend-side correlation.
	RequestIDHeader = "X-Request-ID"
)
