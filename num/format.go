package num

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used by FormatNumber when no locale is given.
const DefaultLocale = "en-US"

// maxFractionDigits matches the default precision of CLDR decimal patterns.
const maxFractionDigits = 3

// FormatNumber renders n with the grouping and decimal separators of locale,
// a BCP 47 tag such as "en-US", "de-DE" or "fr". An empty locale means
// [DefaultLocale]. At most three fraction digits are printed.
//
// Returns [ErrUnsupportedLocale] when locale cannot be parsed or names an
// unknown language. Known languages without regional data use their parent
// locale's symbols.
func FormatNumber(n float64, locale string) (string, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(n, number.MaxFractionDigits(maxFractionDigits))), nil
}
