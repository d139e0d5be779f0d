package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first rune of s and lower-cases the rest.
//
//	Capitalize("hELLO") // "Hello"
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// ToCamelCase joins the words of s as lowerCamelCase. Every rune that is not
// a letter or digit separates words, as does a lower-to-upper transition.
//
//	ToCamelCase("hello world")   // "helloWorld"
//	ToCamelCase("foo-bar_baz")   // "fooBarBaz"
//	ToCamelCase("HelloWorld")    // "helloWorld"
func ToCamelCase(s string) string {
	parts := words(s, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	lower := cases.Lower(language.Und)
	var b strings.Builder
	for i, w := range parts {
		if i == 0 {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// ToKebabCase lower-cases the words of s and joins them with "-".
// Whitespace, "_" and "-" separate words, as does a lower-to-upper
// transition; other punctuation is kept.
//
//	ToKebabCase("helloWorld")   // "hello-world"
//	ToKebabCase("Hello_World")  // "hello-world"
func ToKebabCase(s string) string {
	return joinLower(words(s, isWordSeparator), "-")
}

// ToSnakeCase is [ToKebabCase] joined with "_".
func ToSnakeCase(s string) string {
	return joinLower(words(s, isWordSeparator), "_")
}

func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '_' || r == '-'
}

func joinLower(parts []string, sep string) string {
	return cases.Lower(language.Und).String(strings.Join(parts, sep))
}

// words splits s at runs of separator runes and before an upper-case rune
// that follows a lower-case one. Empty words are dropped.
func words(s string, isSep func(rune) bool) []string {
	var (
		out  []string
		cur  []rune
		prev rune
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		switch {
		case isSep(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return out
}
