package form

import (
	"strings"
	"unicode/utf8"

	"go-portfolio-backend/internal/i18n"
	"go-portfolio-backend/pkg/textguard"
	"go-portfolio-backend/pkg/validation"
)

// Rule checks a single field value. A nil return means valid; otherwise
// the *FieldError carries a localized message for inline display. Rules
// are pure and synchronous.
type Rule func(value string) error

// Optional wraps a rule so that an empty value always passes.
func Optional(r Rule) Rule {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		return r(value)
	}
}

// Chain runs rules in order and returns the first failure.
func Chain(rules ...Rule) Rule {
	return func(value string) error {
		for _, r := range rules {
			if err := r(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Message length bounds shared with the server schema.
const (
	MessageMinLen = 10
	MessageMaxLen = 1200
	EmailMaxLen   = 200
)

// Rules builds the per-field rule sets against one language's dictionary.
type Rules struct {
	dict  *i18n.Dictionary
	guard textguard.Options
}

// NewRules returns field rules with messages from dict and profanity
// matching for dict's language.
func NewRules(dict *i18n.Dictionary) *Rules {
	return &Rules{
		dict:  dict,
		guard: textguard.Options{Language: dict.Lang},
	}
}

func (r *Rules) fail(field, key string) error {
	return &validation.FieldError{Field: field, Message: r.dict.Error(key)}
}

// Name is required: letter groups separated by space/apostrophe/hyphen,
// no links, no profanity, no gibberish.
func (r *Rules) Name(field string) Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		switch {
		case v == "":
			return r.fail(field, "required")
		case textguard.LooksLikeURLOrHTML(v):
			return r.fail(field, "no_links")
		case !validation.ValidNameShape(v):
			return r.fail(field, "name_format")
		case textguard.ContainsProfanity(v, r.guard):
			return r.fail(field, "profanity")
		case textguard.IsGibberish(v):
			return r.fail(field, "gibberish")
		}
		return nil
	}
}

// LastName applies the Name rules but passes when empty.
func (r *Rules) LastName(field string) Rule {
	return Optional(r.Name(field))
}

// Email checks mailbox shape, length, and profanity in the local part.
func (r *Rules) Email(field string) Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		switch {
		case v == "":
			return r.fail(field, "required")
		case utf8.RuneCountInString(v) > EmailMaxLen:
			return r.fail(field, "email_too_long")
		case !validation.ValidEmailShape(v):
			return r.fail(field, "email_format")
		}
		local := v[:strings.Index(v, "@")]
		if textguard.ContainsProfanity(local, r.guard) {
			return r.fail(field, "profanity")
		}
		return nil
	}
}

// Company is optional: no links, no profanity.
func (r *Rules) Company(field string) Rule {
	return Optional(func(value string) error {
		v := strings.TrimSpace(value)
		if textguard.LooksLikeURLOrHTML(v) {
			return r.fail(field, "no_links")
		}
		if textguard.ContainsProfanity(v, r.guard) {
			return r.fail(field, "profanity")
		}
		return nil
	})
}

// Subject validates the fixed taxonomy. When "other" is chosen, the linked
// custom-subject value becomes required and is itself guarded.
func (r *Rules) Subject(field, customField string) func(subject, custom string) error {
	return func(subject, custom string) error {
		switch subject {
		case "":
			return r.fail(field, "required")
		case "client", "job":
			return nil
		case "other":
			c := strings.TrimSpace(custom)
			switch {
			case c == "":
				return r.fail(customField, "required")
			case textguard.LooksLikeURLOrHTML(c):
				return r.fail(customField, "no_links")
			case textguard.ContainsProfanity(c, r.guard):
				return r.fail(customField, "profanity")
			}
			return nil
		default:
			return r.fail(field, "subject_invalid")
		}
	}
}

// Message is required, 10-1200 characters, no profanity, no gibberish.
func (r *Rules) Message(field string) Rule {
	return func(value string) error {
		v := strings.TrimSpace(value)
		n := utf8.RuneCountInString(v)
		switch {
		case v == "":
			return r.fail(field, "required")
		case n < MessageMinLen:
			return r.fail(field, "message_too_short")
		case n > MessageMaxLen:
			return r.fail(field, "message_too_long")
		case textguard.ContainsProfanity(v, r.guard):
			return r.fail(field, "profanity")
		case textguard.IsGibberish(v):
			return r.fail(field, "gibberish")
		}
		return nil
	}
}
