package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrStoreUnavailable indicates the settings backend could not be opened.
	ErrStoreUnavailable = errors.New("unable to locate store")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownKey indicates a settings key that is not one of the known keys.
	ErrUnknownKey = errors.New("unknown settings key")
)
