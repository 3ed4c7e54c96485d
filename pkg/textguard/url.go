package textguard

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[a-zA-Z][^<>]*>`)

// LooksLikeURLOrHTML reports whether text carries a link or markup, neither
// of which belongs in a name or company field.
func LooksLikeURLOrHTML(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") || strings.Contains(lower, "www.") {
		return true
	}
	return htmlTagPattern.MatchString(text)
}
