package dateutil

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStartReturnsMonday(t *testing.T) {
	cases := []struct {
		input time.Time
		want  time.Time
	}{
		{day(2025, time.June, 2), day(2025, time.June, 2)}, // Monday maps to itself
		{day(2025, time.June, 4), day(2025, time.June, 2)}, // Wednesday
		{day(2025, time.June, 7), day(2025, time.June, 2)}, // Saturday
		{day(2025, time.June, 8), day(2025, time.June, 2)}, // Sunday belongs to previous Monday
		{day(2025, time.June, 9), day(2025, time.June, 9)}, // next Monday
		{day(2025, time.January, 1), day(2024, time.December, 30)}, // year boundary
	}
	for _, c := range cases {
		got := WeekStart(c.input)
		if !got.Equal(c.want) {
			t.Errorf("WeekStart(%s) = %s, want %s", FormatDay(c.input), FormatDay(got), FormatDay(c.want))
		}
		if got.Weekday() != time.Monday {
			t.Errorf("WeekStart(%s) = %s, not a Monday", FormatDay(c.input), got.Weekday())
		}
	}
}

func TestWeekStartIdempotent(t *testing.T) {
	for d := 0; d < 14; d++ {
		input := day(2025, time.March, 1).AddDate(0, 0, d)
		once := WeekStart(input)
		twice := WeekStart(once)
		if !once.Equal(twice) {
			t.Errorf("WeekStart not idempotent for %s: %s vs %s", FormatDay(input), FormatDay(once), FormatDay(twice))
		}
	}
}

func TestWeekStartIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.June, 8, 23, 59, 59, 0, time.UTC)
	if got := WeekStart(late); !got.Equal(day(2025, time.June, 2)) {
		t.Errorf("WeekStart(%v) = %s, want 2025-06-02", late, FormatDay(got))
	}
}

func TestWeekEnd(t *testing.T) {
	if got := WeekEnd(day(2025, time.June, 2)); !got.Equal(day(2025, time.June, 8)) {
		t.Errorf("WeekEnd = %s, want 2025-06-08", FormatDay(got))
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2025, time.February)
	if !first.Equal(day(2025, time.February, 1)) || !last.Equal(day(2025, time.February, 28)) {
		t.Errorf("MonthRange(2025, Feb) = %s..%s", FormatDay(first), FormatDay(last))
	}
	_, last = MonthRange(2024, time.February)
	if !last.Equal(day(2024, time.February, 29)) {
		t.Errorf("MonthRange leap year last = %s, want 2024-02-29", FormatDay(last))
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2025-06-08")
	if err != nil {
		t.Fatalf("ParseDay returned error: %v", err)
	}
	if !got.Equal(day(2025, time.June, 8)) {
		t.Errorf("ParseDay = %v", got)
	}
	if _, err := ParseDay("08/06/2025"); err == nil {
		t.Error("ParseDay accepted non-ISO input")
	}
}
