package date

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// timeAgoUnits lists the units TimeAgo reports, largest first. Months and
// years are fixed lengths (30 and 365 days), not calendar months.
var timeAgoUnits = []struct {
	name    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// Calendar evaluates relative comparisons against a clock.
type Calendar struct {
	clock clock.Clock
}

var system = New(clock.New())

// New returns a Calendar reading the current instant from c.
func New(c clock.Clock) *Calendar {
	return &Calendar{clock: c}
}

// Now returns the calendar's current instant.
func (c *Calendar) Now() time.Time { return c.clock.Now() }

// IsToday reports whether t falls on the current calendar day, judged in
// t's location.
func (c *Calendar) IsToday(t time.Time) bool {
	return IsSameDay(t, c.clock.Now())
}

// IsPast reports whether t is strictly before now.
func (c *Calendar) IsPast(t time.Time) bool {
	return t.Before(c.clock.Now())
}

// IsFuture reports whether t is strictly after now.
func (c *Calendar) IsFuture(t time.Time) bool {
	return t.After(c.clock.Now())
}

// TimeAgo describes the time elapsed since t using the largest whole unit,
// e.g. "1 minute ago" or "3 weeks ago". Less than one second, and any instant
// in the future, is "just now".
func (c *Calendar) TimeAgo(t time.Time) string {
	elapsed := (c.clock.Now().UnixMilli() - t.UnixMilli()) / 1000
	for _, unit := range timeAgoUnits {
		n := elapsed / unit.seconds
		if n < 1 {
			continue
		}
		plural := ""
		if n != 1 {
			plural = "s"
		}
		return fmt.Sprintf("%d %s%s ago", n, unit.name, plural)
	}
	return "just now"
}

// IsToday reports whether t falls on today's date per the system clock.
func IsToday(t time.Time) bool { return system.IsToday(t) }

// IsPast reports whether t is before the current instant.
func IsPast(t time.Time) bool { return system.IsPast(t) }

// IsFuture reports whether t is after the current instant.
func IsFuture(t time.Time) bool { return system.IsFuture(t) }

// TimeAgo is [Calendar.TimeAgo] against the system clock.
func TimeAgo(t time.Time) string { return system.TimeAgo(t) }
