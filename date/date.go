package date

import "time"

const (
	// DateLayout is the layout produced by FormatDate.
	DateLayout = "2006-01-02"

	// DateTimeLayout is the layout produced by FormatDateTime.
	DateTimeLayout = "2006-01-02 15:04:05"

	secondsPerDay = 24 * 60 * 60
)

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// FormatDate renders t as YYYY-MM-DD in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime renders t as YYYY-MM-DD HH:MM:SS in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// AddDays returns t shifted by days calendar days. The wall-clock time is
// kept across DST transitions.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMonths returns t shifted by months calendar months. Days past the end of
// the target month roll over into the following month.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// DaysBetween returns the number of whole days from the calendar date of a to
// the calendar date of b, both taken as UTC midnight. The result is negative
// when b is before a; the time of day is ignored.
func DaysBetween(a, b time.Time) int {
	return int(dayNumber(b) - dayNumber(a))
}

func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// ─────────────────────────────────────────────────────────────────────────────
// Day boundaries
// ─────────────────────────────────────────────────────────────────────────────

// StartOfDay returns 00:00:00.000 of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// IsSameDay reports whether a and b fall on the same calendar day in a's
// location.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
