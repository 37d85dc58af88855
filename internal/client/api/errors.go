package api

import "github.com/inkpress/inkcli/internal/common"

// Error is the normalized failure every operation returns. Message is safe to
// show to the user as-is; the wrapped sentinel from internal/common lets
// callers branch with errors.Is without parsing text.
type Error struct {
	// Status is the HTTP status that produced the error, 0 when the request
	// never reached the backend (validation, expired session, transport).
	Status  int
	Message string

	kind error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, status int, message string) *Error {
	return &Error{Status: status, Message: message, kind: kind}
}

func validationError(message string) *Error {
	return newError(common.ErrValidation, 0, message)
}

func sessionExpiredError() *Error {
	return newError(common.ErrSessionExpired, 0, "Session expired. Please login again.")
}
