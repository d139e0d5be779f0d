// Package num provides numeric helpers over float64: clamping, rounding,
// aggregates, unit conversion, random values and locale-aware formatting.
//
// Special values follow IEEE 754: NaN passes through [Clamp], [Round], [Sum],
// [Min] and [Max] unchanged. The only guarded division is [Percentage], which
// returns 0 for a zero total.
//
// Aggregates that have no answer for an empty input report it instead of
// inventing one:
//
//	if lo, ok := num.Min(values); ok { ... }
//
// [FormatNumber] uses CLDR data from golang.org/x/text, so grouping and
// decimal symbols follow the requested locale:
//
//	num.FormatNumber(1234567.5, "en-US") // "1,234,567.5"
//	num.FormatNumber(1234567.5, "de-DE") // "1.234.567,5"
package num
