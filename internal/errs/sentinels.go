// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across store/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist for the caller.
	// Covers both "no such item" and "item owned by someone else" so that
	// ownership is never leaked through error responses.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials indicates failed username/password authentication.
	// Identical for unknown user and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingCredentials indicates a login request without username or password.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrMissingToken indicates no bearer credential on a protected route.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken indicates a malformed, mis-signed, or expired token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmptyTitle indicates item creation without a title.
	ErrEmptyTitle = errors.New("empty title")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")
)
