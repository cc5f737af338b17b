package services

import "errors"

// Stable error discriminants. Handlers match these with errors.Is and map
// them to status codes; the wrapped detail stays in the logs.
var (
	// ErrConflict signals a duplicate unique field at registration.
	ErrConflict = errors.New("duplicate email or nickname")

	// ErrUnauthenticated covers every credential rejection: missing or bad
	// token, no matching login credentials, or a token whose user no longer
	// exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidToken signals a malformed token, a bad signature, or an
	// unexpected signing method.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound signals a requested product that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPasswordMismatch signals a registration whose password and
	// confirmation differ.
	ErrPasswordMismatch = errors.New("password and confirmation do not match")

	// ErrInvalidQuantity signals a cart quantity that is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
