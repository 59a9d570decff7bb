package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases s and strips surrounding whitespace. Both the chatbot
// and guess parsing match on the result.
func Normalize(s string) string {
	return strings.TrimFunc(cases.Lower(language.Und).String(s), isSpace)
}

// isSpace also treats the ASCII separators U+001C..U+001F as whitespace,
// which unicode.IsSpace does not.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
