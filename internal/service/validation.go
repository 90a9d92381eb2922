package service

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"scribe/internal/domain"
)

// hexColorRe matches a 7-character hex color like #1A2b3C.
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// asValidationError converts an ozzo validation result into a domain
// validation error carrying every failed field, so a response can report
// all violations at once instead of just the first.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return &domain.ValidationError{Message: err.Error()}
	}
	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		fields[field] = fieldErr.Error()
	}
	return &domain.ValidationError{
		Message: "validation failed",
		Fields:  fields,
	}
}

// ValidateID checks that a path or query parameter carries a well-formed
// UUID before it reaches storage. The field name is echoed back so the
// caller knows which parameter was malformed.
func ValidateID(field, value string) error {
	if err := validation.Validate(value, validation.Required, is.UUID); err != nil {
		return &domain.ValidationError{
			Message: fmt.Sprintf("invalid %s", field),
			Fields:  map[string]string{field: "must be a valid UUID"},
		}
	}
	return nil
}
