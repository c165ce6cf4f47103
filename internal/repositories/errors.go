package repositories

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// errors.Is and translate them into their own taxonomy.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// email index. The index, not the application pre-check, is the
	// source of truth for email uniqueness.
	ErrDuplicateEmail = errors.New("email already registered")
)
