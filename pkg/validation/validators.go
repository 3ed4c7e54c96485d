package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"go-portfolio-backend/pkg/textguard"
)

// Regex patterns
var (
	// One or more Unicode-letter groups separated by a single space,
	// apostrophe or hyphen: "Jean-Luc O'Neil".
	nameRegex = regexp.MustCompile(`^\p{L}+(?:[ '-]\p{L}+)*$`)

	// Pragmatic email shape: no whitespace, exactly one @, a dot after it.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("subject_kind", SubjectKind)
	_ = v.RegisterValidation("not_url", NotURL)
}

// ValidName validates that a string is shaped like a human name.
// Empty passes; combine with required when the field is mandatory.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

// SubjectKind validates the fixed contact-subject taxonomy.
func SubjectKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "client", "job", "other":
		return true
	}
	return false
}

// NotURL rejects values carrying links or HTML markup.
func NotURL(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return !textguard.LooksLikeURLOrHTML(val)
}

// ValidEmailShape reports whether s has a plausible mailbox shape.
// Exposed for the client-side rules, which share the pattern.
func ValidEmailShape(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidNameShape reports whether s matches the name pattern.
func ValidNameShape(s string) bool {
	return nameRegex.MatchString(s)
}
