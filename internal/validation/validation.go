package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxKeywordLength bounds fallback keywords; they are phrases, not documents.
const MaxKeywordLength = 100

// NormalizeMessage trims surrounding whitespace and lowercases a chat message.
func NormalizeMessage(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// NormalizeKeyword lowercases a keyword so lookups are case-insensitive.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// ValidateKeyword checks that a normalized keyword is usable for substring matching.
// Inner spaces are allowed since keywords may be phrases.
func ValidateKeyword(keyword string) bool {
	if keyword == "" || utf8.RuneCountInString(keyword) > MaxKeywordLength {
		return false
	}
	return keyword == NormalizeKeyword(keyword)
}
