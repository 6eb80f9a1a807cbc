package dateutil

import "time"

// DayFormat is the wire format for calendar dates.
const DayFormat = "2006-01-02"

// Truncate drops the time-of-day component, keeping year/month/day in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing t, at 00:00 UTC.
// Sunday counts as day 7 of the preceding Monday-start week, so a week runs
// Monday 00:00 through Sunday 23:59 inclusive.
func WeekStart(t time.Time) time.Time {
	d := Truncate(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}

// WeekEnd returns the Sunday that closes the week anchored at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return Truncate(weekStart).AddDate(0, 0, 6)
}

// CurrentWeek returns the canonical week key for the injected as-of time.
func CurrentWeek(asOf time.Time) time.Time {
	return WeekStart(asOf)
}

// MonthRange returns the first and last day of the calendar month, both
// inclusive, at 00:00 UTC.
func MonthRange(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// InMonth reports whether the day of t falls inside the given calendar month.
func InMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Truncate(a).Equal(Truncate(b))
}

// ParseDay parses a YYYY-MM-DD string into a day-precision UTC time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// FormatDay renders t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}
