package domain

import "errors"

// Sentinel errors shared across services and handlers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug indicates a slug uniqueness violation.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrInvalidCredentials indicates a failed login. Deliberately generic:
	// wrong email and wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrTokenMissing indicates no bearer token was presented.
	ErrTokenMissing = errors.New("missing token")
	// ErrTokenInvalid indicates an unknown or expired token.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrEmptySlug indicates a title with no usable characters for a slug.
	ErrEmptySlug = errors.New("title produces an empty slug")
)
