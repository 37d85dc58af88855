package common

import "errors"

var (
	// Validation errors, detected before any network call.
	ErrValidation = errors.New("validation failed")

	// Auth errors: absent/expired credential, or a 401 from the backend.
	ErrSessionExpired = errors.New("session expired")

	// Authorization errors: 403 from the backend.
	ErrForbidden = errors.New("access forbidden")

	// Not-found errors: 404 from the backend.
	ErrNotFound = errors.New("not found")

	// Transport errors: network unreachable or a non-JSON response.
	ErrUnavailable = errors.New("server unavailable")

	// Generic server errors: any other non-2xx status.
	ErrServer = errors.New("server error")
)
