package utils

import (
	"testing"
	"time"
)

// withLocation swaps the process location for one test. The handlers
// key attendance days on server-local midnight, so the tests must be
// able to pretend the server runs somewhere specific.
func withLocation(t *testing.T, loc *time.Location) {
	t.Helper()
	old := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = old })
}

func TestStartOfDay(t *testing.T) {
	withLocation(t, time.FixedZone("EAT", 3*60*60))

	in := time.Date(2024, time.January, 10, 17, 45, 30, 999, time.Local)
	got := StartOfDay(in)

	want := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
	}
	if got.Location() != time.Local {
		t.Errorf("location = %v, want server-local", got.Location())
	}
}

func TestStartOfDayCanonicalLocation(t *testing.T) {
	withLocation(t, time.FixedZone("EAT", 3*60*60))

	// 22:30 UTC is already the next calendar day in the server zone
	in := time.Date(2024, time.January, 10, 22, 30, 0, 0, time.UTC)
	got := StartOfDay(in)

	want := time.Date(2024, time.January, 11, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
	}
}

func TestStartOfDayIdempotent(t *testing.T) {
	day := StartOfDay(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC))
	if !StartOfDay(day).Equal(day) {
		t.Errorf("StartOfDay not idempotent for %v", day)
	}
}

func TestMonthRange(t *testing.T) {
	in := time.Date(2024, time.January, 15, 13, 0, 0, 0, time.UTC)

	start, next := MonthRange(in)

	if want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC); !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestMonthRangeDecemberRollsOver(t *testing.T) {
	in := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)

	start, next := MonthRange(in)

	if start.Month() != time.December || start.Year() != 2024 {
		t.Errorf("start = %v, want December 2024", start)
	}
	if next.Month() != time.January || next.Year() != 2025 {
		t.Errorf("next = %v, want January 2025", next)
	}
}

func TestMonthLabel(t *testing.T) {
	in := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	if got := MonthLabel(in); got != "January 2024" {
		t.Errorf("MonthLabel = %q, want %q", got, "January 2024")
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-10", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)},
		{"2024-01-10T08:30:00Z", time.Date(2024, time.January, 10, 8, 30, 0, 0, time.UTC)},
		{"2024-01-10T08:30:00", time.Date(2024, time.January, 10, 8, 30, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "10/01/2024"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", in)
		}
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		part, total int64
		want        float64
	}{
		{3, 4, 75},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{0, 5, 0},
		{5, 5, 100},
		{0, 0, 0},
		{7, 0, 0},
	}
	for _, tc := range cases {
		if got := Percentage(tc.part, tc.total); got != tc.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tc.part, tc.total, got, tc.want)
		}
	}
}
