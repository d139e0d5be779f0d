// Package str provides string helpers that operate on Unicode code points
// (runes) rather than bytes: case conversion, truncation, whitespace removal,
// substring counting, reversal and palindrome checks.
//
// Case mapping uses golang.org/x/text/cases, so multi-rune mappings such as
// "ß" → "SS" are handled.
package str
