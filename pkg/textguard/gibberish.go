package textguard

import (
	"strings"
	"unicode"
)

// Vowel set covering plain and Latin-accented vowels. Text of 12+ chars
// with none of these is almost always keyboard noise.
const vowels = "aeiouyàáâäãåæèéêëìíîïòóôöõøùúûüýAEIOUYÀÁÂÄÃÅÆÈÉÊËÌÍÎÏÒÓÔÖÕØÙÚÛÜÝ"

// Common keyboard-mashing sequences, including the Cyrillic home rows
// transliterated to Latin as they arrive from RU/UA keyboards.
var mashPatterns = []string{
	"qwerty",
	"azerty",
	"asdfgh",
	"qsdfgh",
	"zxcvbn",
	"wxcvbn",
	"uiop",
	"hjkl",
	"ytsuken",
	"йцукен",
	"фывапр",
}

// IsGibberish reports whether text looks like keyboard noise rather than
// something a human meant to write. Empty or whitespace-only input is not
// gibberish; absence of content is a different problem than nonsense.
func IsGibberish(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	runes := []rune(trimmed)

	// Any character repeated 5+ times in a row.
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 5 {
				return true
			}
		} else {
			run = 1
		}
	}

	// More than half the characters are not letters.
	nonLetters := 0
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			nonLetters++
		}
	}
	if nonLetters*2 > len(runes) {
		return true
	}

	// Long text with no vowel at all.
	if len(runes) >= 12 && !strings.ContainsAny(trimmed, vowels) {
		return true
	}

	lower := strings.ToLower(trimmed)
	for _, p := range mashPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}

	return false
}
