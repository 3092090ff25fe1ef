package domain

import "errors"

// Domain errors represent the classified outcomes of a failed sign-in.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidCredentials is returned when the server rejects the credentials (HTTP 401).
	// Callers can recover by asking for the credentials again.
	ErrInvalidCredentials = errors.New("signin: invalid credentials")

	// ErrUnexpected is returned for any other non-success response.
	ErrUnexpected = errors.New("signin: something went wrong, try again soon")
)
