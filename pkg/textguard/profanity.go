package textguard

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Options tunes profanity detection per call site.
type Options struct {
	// Language selects the blocklist ("en", "fr"). Unknown values fall
	// back to English.
	Language string
	// Whitelist replaces the default false-positive list when non-nil.
	Whitelist []string
	// Extra adds terms to the selected blocklist.
	Extra []string
}

// blocklists hold normalized terms per language. Matching is fuzzy, so a
// short list covers the substitution/spacing variants bots actually use.
var blocklists = map[string][]string{
	"en": {
		"fuck", "shit", "bitch", "asshole", "bastard", "cunt",
		"dick", "slut", "whore", "ass",
	},
	"fr": {
		"merde", "putain", "salope", "connard", "connasse",
		"encule", "pute", "batard", "salaud", "nique",
	},
}

// defaultWhitelist carries words that legitimately contain a blocked term
// as a substring. Checked before any pattern matching.
var defaultWhitelist = []string{
	"assassin", "bass", "class", "pass", "passion", "massage",
	"dickens", "scunthorpe", "cocktail", "cassock",
}

// leet maps a letter to the substitutions seen in filter-evasion attempts.
var leet = map[rune]string{
	'a': "a@4",
	'b': "b8",
	'e': "e3",
	'g': "g9",
	'i': "i1!",
	'l': "l1",
	'o': "o0",
	's': "s5$",
	't': "t7",
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// ContainsProfanity reports whether text contains a blocked term for the
// given language, tolerating case, diacritics, leetspeak substitution and
// separators inserted between letters.
func ContainsProfanity(text string, opts Options) bool {
	normalized := Normalize(text)
	if normalized == "" {
		return false
	}

	whitelist := opts.Whitelist
	if whitelist == nil {
		whitelist = defaultWhitelist
	}
	for _, w := range whitelist {
		if w = Normalize(w); w != "" && strings.Contains(normalized, w) {
			return false
		}
	}

	terms, ok := blocklists[opts.Language]
	if !ok {
		terms = blocklists["en"]
	}
	for _, term := range terms {
		if termPattern(term).MatchString(normalized) {
			return true
		}
	}
	for _, term := range opts.Extra {
		if term = Normalize(term); term != "" && termPattern(term).MatchString(normalized) {
			return true
		}
	}
	return false
}

// Normalize lowercases, folds diacritics and collapses whitespace runs,
// so "PUTÀIN" and "putain" compare equal.
func Normalize(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	decomposed := norm.NFD.String(lower)
	var b strings.Builder
	b.Grow(len(decomposed))
	lastSpace := false
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// termPattern compiles a blocked term into a permissive regexp: each letter
// may be a leet substitution, letters may be separated by spaces, dots,
// underscores or hyphens, and the whole match must sit on word edges.
func termPattern(term string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[term]; ok {
		return re
	}

	var b strings.Builder
	b.WriteString(`(?:^|[^\p{L}\p{N}])`)
	letters := []rune(term)
	for i, r := range letters {
		if i > 0 {
			b.WriteString(`[ ._-]*`)
		}
		if subs, ok := leet[r]; ok {
			b.WriteString("[" + regexp.QuoteMeta(subs) + "]")
		} else {
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`(?:$|[^\p{L}\p{N}])`)

	re := regexp.MustCompile(b.String())
	patternCache[term] = re
	return re
}
