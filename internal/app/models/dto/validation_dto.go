package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a request binding error into an error detail.
// Validator errors become a per-field list; anything else (malformed JSON,
// type mismatches) is reported as an invalid request format.
func HandleValidationError(err error) *ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return NewErrorDetail(ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())
	}

	validationErrors := NewValidationErrors()
	for _, fieldError := range fieldErrors {
		validationErrors.AddError(fieldError.Field(), formatValidationError(fieldError))
	}
	return NewErrorDetail(ErrorCodeValidationFailed, "Request validation failed").
		WithDetails(validationErrors.Errors)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
