package dto

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding error into an error detail. Field
// level failures from the validator are listed individually in Details.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrors := NewValidationErrors()
		for _, e := range validationErrs {
			fieldErrors.AddError(e.Field(), formatValidationError(e))
		}

		detail := NewErrorDetail(ErrorCodeValidationFailed, "Request validation failed").
			WithDetails(fieldErrors.Errors)
		if len(validationErrs) == 1 {
			detail = detail.WithField(validationErrs[0].Field())
		}
		return detail
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return NewErrorDetail(ErrorCodeValidationFailed, "Request body is not valid JSON")
	case errors.As(err, &typeErr):
		return NewErrorDetail(ErrorCodeValidationFailed, "Request body has a field of the wrong type").
			WithField(typeErr.Field)
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
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
	case "email":
		return e.Field() + " must be a valid email address"
	case "datetime":
		return e.Field() + " must be a date in the format " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
