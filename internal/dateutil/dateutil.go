// Package dateutil holds the calendar-date helpers shared by the store,
// the reconciler and the presentation layer. Dates are plain YYYY-MM-DD
// strings with no time component.
package dateutil

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// Format renders t as a YYYY-MM-DD database date.
func Format(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns the current calendar date.
func Today() string {
	return Format(time.Now())
}

// Parse parses a YYYY-MM-DD date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// LastNDays returns the n dates ending today, oldest first.
func LastNDays(n int, now time.Time) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, Format(now.AddDate(0, 0, -i)))
	}
	return dates
}

// Range returns every date from start to end inclusive, oldest first.
// Returns nil if either date is malformed or end precedes start.
func Range(start, end string) []string {
	from, err := Parse(start)
	if err != nil {
		return nil
	}
	to, err := Parse(end)
	if err != nil || to.Before(from) {
		return nil
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, Format(d))
	}
	return dates
}

// ZeroFill expands the sparse per-date counts the store returns into a
// contiguous series over [start, end], inserting count=0 for dates with
// no activity.
func ZeroFill(start, end string, sparse []models.DateCount) []models.DateCount {
	byDate := make(map[string]int, len(sparse))
	for _, dc := range sparse {
		byDate[dc.Date] = dc.Count
	}

	dates := Range(start, end)
	filled := make([]models.DateCount, 0, len(dates))
	for _, d := range dates {
		filled = append(filled, models.DateCount{Date: d, Count: byDate[d]})
	}
	return filled
}

// DisplayName renders a date as Today, Yesterday, or a weekday-and-month
// label for the TUI header.
func DisplayName(date string, now time.Time) string {
	d, err := Parse(date)
	if err != nil {
		return date
	}

	switch Format(d) {
	case Format(now):
		return "Today"
	case Format(now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return d.Format("Monday, Jan 2")
}

// Greeting returns a salutation for the given wall-clock time.
func Greeting(now time.Time) string {
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return "Happy " + wd.String()
	}

	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17 && hour < 21:
		return "Good evening"
	default:
		return "Good night"
	}
}

// ClockDisplay renders an HH:MM 24-hour time in 12-hour form for display.
func ClockDisplay(clock string) string {
	if clock == "" {
		return ""
	}
	t, err := time.Parse(constants.TimeFormat, clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}
