package str

import (
	"slices"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"golang.org/x/text/cases"
)

// DefaultSuffix is appended by Truncate when no suffix is given.
const DefaultSuffix = "..."

// Truncate shortens s to at most maxLength runes. Strings that already fit
// are returned unchanged; longer ones keep their first maxLength-len(suffix)
// runes followed by suffix (default [DefaultSuffix]).
//
// When maxLength is shorter than the suffix itself the result is the suffix
// cut to maxLength runes. A negative maxLength behaves like 0.
//
//	Truncate("hello world", 8)       // "hello..."
//	Truncate("hello world", 8, "…")  // "hello w…"
func Truncate(s string, maxLength int, suffix ...string) string {
	sfx := DefaultSuffix
	if len(suffix) > 0 {
		sfx = suffix[0]
	}
	maxLength = max(maxLength, 0)

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	sfxRunes := []rune(sfx)
	if maxLength < len(sfxRunes) {
		return string(sfxRunes[:maxLength])
	}
	return string(runes[:maxLength-len(sfxRunes)]) + sfx
}

// RemoveWhitespace drops every Unicode white space rune and U+FEFF.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}

// CountOccurrences counts non-overlapping occurrences of search in s,
// matched literally. An empty search counts as 0.
//
//	CountOccurrences("aaaa", "aa") // 2
func CountOccurrences(s, search string) int {
	if search == "" {
		return 0
	}
	return strings.Count(s, search)
}

// Reverse reverses the runes of s. Combining marks and multi-rune emoji are
// split apart; use [ReverseGraphemes] to keep them intact.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// ReverseGraphemes reverses the user-perceived characters (extended grapheme
// clusters) of s.
//
//	ReverseGraphemes("ae\u0301") // "e\u0301a"
func ReverseGraphemes(s string) string {
	var clusters []string
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		clusters = append(clusters, tokens.Value())
	}
	slices.Reverse(clusters)
	return strings.Join(clusters, "")
}

// IsPalindrome reports whether the letters and digits of s read the same in
// both directions, ignoring case. Everything else is skipped, so an empty or
// punctuation-only string is a palindrome.
//
//	IsPalindrome("A man, a plan, a canal: Panama") // true
func IsPalindrome(s string) bool {
	var cleaned []rune
	for _, r := range cases.Fold().String(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned = append(cleaned, r)
		}
	}
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}
