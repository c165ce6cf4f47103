package services

import (
	"errors"
	"fmt"
	"strings"
)

// Expected failure modes surfaced to handlers. Anything outside this set is
// an internal error and must not leak its detail to the client.
var (
	// ErrMissingFields is returned when a required register/login field
	// is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrDuplicateAccount is returned when the email is already
	// registered.
	ErrDuplicateAccount = errors.New("user already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, with identical wording, so login failures leak no
	// account-existence signal.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a bearer token has a bad
	// signature or has expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrAccountNotFound is returned when a token verifies but the
	// account it names no longer exists.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmptyOrder is returned when an order is placed without items.
	ErrEmptyOrder = errors.New("order must include at least one item")
)

// FieldError describes one failing field of a validation run.
type FieldError struct {
	Field   string      `json:"field"`
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// ValidationError carries the complete set of failing fields, not just the
// first one encountered.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		fields = append(fields, d.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
