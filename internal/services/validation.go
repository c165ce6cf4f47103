package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// asValidationError converts a go-playground validation result into the
// field-level ValidationError the API returns. Every failing field is
// included, not just the first.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		details = append(details, FieldError{
			Field:   field,
			Kind:    e.Tag(),
			Message: fmt.Sprintf("field '%s' failed on the '%s' rule", field, e.Tag()),
			Value:   e.Value(),
		})
	}
	return &ValidationError{Details: details}
}
