package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError pairs a form field with a human-readable message. It is the
// shape returned in the details of a 400 response and the shape the
// client-side rules produce for inline display.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// fieldNames maps struct field names to their wire (JSON) names.
var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Company": "company",
	"Subject": "subject",
	"Message": "message",
	"HP":      "hp",
}

// FormatValidationErrors converts validator.ValidationErrors into
// field-keyed messages suitable for the error payload.
func FormatValidationErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   wireName(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return out
}

func wireName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}

func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "valid_name":
		return "may only contain letters, spaces, apostrophes and hyphens"
	case "subject_kind":
		return "must be one of: client, job, other"
	case "not_url":
		return "may not contain links or HTML"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
