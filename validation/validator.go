package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kynalabs/inferkit/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an AppError if there are validation errors, nil otherwise.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	appErr := errors.Validation(strings.Join(messages, "; "))
	appErr.Details = map[string]any{
		"fields": v.errors,
	}

	return appErr
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Range checks if a float is within [min, max] inclusive.
func (v *Validator) Range(field string, value, min, max float64) *Validator {
	if value < min || value > max {
		v.AddError(field, fmt.Sprintf("must be between %g and %g", min, max))
	}
	return v
}

// NonNegative checks if an integer is zero or greater.
func (v *Validator) NonNegative(field string, value int) *Validator {
	if value < 0 {
		v.AddError(field, "must not be negative")
	}
	return v
}

// MaxLength checks if a string is within max length.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.AddError(field, fmt.Sprintf("must be %d characters or less", maxLen))
	}
	return v
}

// OneOf checks if a value is one of the allowed options.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, "must be one of: "+strings.Join(allowed, ", "))
	return v
}

// OptionalUUID checks if a non-empty string is a valid UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if value == "" {
		return v
	}
	if _, err := uuid.Parse(value); err != nil {
		v.AddError(field, "must be a valid UUID")
	}
	return v
}

// Check adds an error when the condition is false.
func (v *Validator) Check(ok bool, field, message string) *Validator {
	if !ok {
		v.AddError(field, message)
	}
	return v
}
