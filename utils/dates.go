package utils

import (
	"fmt"
	"math"
	"time"
)

// StartOfDay truncates t to midnight in server-local time. Every
// attendance-day key goes through this, so inputs carrying any offset
// collapse onto one calendar day and compare equal to keys built from
// time.Now().
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// MonthRange returns the half-open [first of month, first of next month)
// range containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// MonthLabel renders t as a human readable month, e.g. "January 2024".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts the date formats clients actually send: RFC3339,
// RFC3339 without a zone, and a plain calendar day. Zone-less inputs
// are read as server-local time so a calendar-day string means that
// day on the server.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// Percentage returns part/total as a percentage rounded to two decimals,
// or 0 when total is zero.
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
