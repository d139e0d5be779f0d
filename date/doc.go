// Package date provides formatting, arithmetic and comparison helpers over
// time.Time.
//
// No helper mutates its argument; time.Time is a value type and every result
// is a new value. Calendar fields (year, month, day, hour) are read in the
// value's own Location, so convert with t.Local() or t.In(loc) first when a
// specific zone matters. [FormatDateTime] and [DaysBetween] are the exceptions
// and work in UTC.
//
// # Month arithmetic
//
// [AddMonths] follows time.Time.AddDate: a day that does not exist in the
// target month rolls over into the next one.
//
//	date.AddMonths(jan31, 1) // → March 2 in a leap year, March 3 otherwise
//
// # Relative comparisons
//
// [IsToday], [IsPast], [IsFuture] and [TimeAgo] compare against the system
// clock. A [Calendar] exposes the same methods over any clock.Clock, which is
// how tests pin "now":
//
//	mock := clock.NewMock()
//	mock.Set(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
//	cal := date.New(mock)
//	cal.TimeAgo(mock.Now().Add(-2 * time.Hour)) // → "2 hours ago"
package date
