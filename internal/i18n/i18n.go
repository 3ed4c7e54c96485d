package i18n

// Dictionary holds the localized strings the form core needs: field labels
// for display and error messages keyed by rule name.
type Dictionary struct {
	Lang   string
	Labels map[string]string
	Errors map[string]string
}

// DefaultLang is the fallback when a requested language has no dictionary.
const DefaultLang = "en"

var dictionaries = map[string]*Dictionary{
	"en": {
		Lang: "en",
		Labels: map[string]string{
			"name":           "Name",
			"last_name":      "Last name",
			"email":          "Email",
			"company":        "Company",
			"subject":        "Subject",
			"custom_subject": "Tell me more",
			"message":        "Message",
		},
		Errors: map[string]string{
			"required":          "This field is required",
			"name_format":       "Use letters, spaces, apostrophes or hyphens only",
			"email_format":      "Enter a valid email address",
			"email_too_long":    "Email address is too long",
			"message_too_short": "Message must be at least 10 characters",
			"message_too_long":  "Message must be at most 1200 characters",
			"subject_invalid":   "Pick one of the proposed subjects",
			"no_links":          "Links and HTML are not allowed here",
			"profanity":         "Please keep it polite",
			"gibberish":         "This does not look like real text",
		},
	},
	"fr": {
		Lang: "fr",
		Labels: map[string]string{
			"name":           "Nom",
			"last_name":      "Nom de famille",
			"email":          "Email",
			"company":        "Entreprise",
			"subject":        "Sujet",
			"custom_subject": "Dites-m'en plus",
			"message":        "Message",
		},
		Errors: map[string]string{
			"required":          "Ce champ est obligatoire",
			"name_format":       "Utilisez uniquement des lettres, espaces, apostrophes ou tirets",
			"email_format":      "Saisissez une adresse email valide",
			"email_too_long":    "L'adresse email est trop longue",
			"message_too_short": "Le message doit contenir au moins 10 caractères",
			"message_too_long":  "Le message doit contenir au plus 1200 caractères",
			"subject_invalid":   "Choisissez un des sujets proposés",
			"no_links":          "Les liens et le HTML ne sont pas autorisés ici",
			"profanity":         "Merci de rester poli",
			"gibberish":         "Ceci ne ressemble pas à du vrai texte",
		},
	},
}

// Dict returns the dictionary for lang, falling back to English when the
// language is unknown. It never returns nil.
func Dict(lang string) *Dictionary {
	if d, ok := dictionaries[lang]; ok {
		return d
	}
	return dictionaries[DefaultLang]
}

// Langs lists the languages with a dictionary, fallback first.
func Langs() []string {
	return []string{"en", "fr"}
}

// Error returns the localized message for key, falling back to the English
// message, then to the key itself.
func (d *Dictionary) Error(key string) string {
	if msg, ok := d.Errors[key]; ok {
		return msg
	}
	if msg, ok := dictionaries[DefaultLang].Errors[key]; ok {
		return msg
	}
	return key
}

// Label returns the localized label for a field, falling back like Error.
func (d *Dictionary) Label(field string) string {
	if l, ok := d.Labels[field]; ok {
		return l
	}
	if l, ok := dictionaries[DefaultLang].Labels[field]; ok {
		return l
	}
	return field
}
