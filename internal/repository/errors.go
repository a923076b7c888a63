package repository

import "errors"

var (
	// ErrNotFound is returned for missing entities and for tickets the
	// caller does not own. The two cases are deliberately the same error.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("email already registered")
)
