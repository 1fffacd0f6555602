// Package timewindow decides whether a routine may be checked off at a
// given instant. It is a pure function of its inputs and performs no
// store access.
package timewindow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/dateutil"
)

type Status string

const (
	StatusAnytime      Status = "anytime"
	StatusTooEarly     Status = "too_early"
	StatusWithinWindow Status = "within_window"
	StatusTooLate      Status = "too_late"
	StatusWrongDate    Status = "wrong_date"
)

// Reasons for a WrongDate result.
const (
	ReasonPastDate   = "past_date"
	ReasonFutureDate = "future_date"
)

// Result describes whether a check-in is permitted right now and why not
// if it isn't.
type Result struct {
	Status   Status
	CanCheck bool
	Reason   string
	Message  string

	// MinutesRemaining is set for WithinWindow: minutes until the window
	// closes, rounded.
	MinutesRemaining int

	// MinutesUntilStart is set for TooEarly: minutes until the window
	// opens, rounded.
	MinutesUntilStart int
}

// Tier is the presentation tier for a window state.
type Tier string

const (
	TierOK      Tier = "ok"      // within window, comfortable margin
	TierWarning Tier = "warning" // within window, closing soon
	TierExpired Tier = "expired" // window has passed
	TierPending Tier = "pending" // not yet open, or wrong date
)

// Evaluate classifies a check-in attempt. scheduled is an HH:MM clock
// time or empty for "anytime today"; targetDate is the YYYY-MM-DD date
// being checked; now is the reference instant. The date check runs first
// for every routine, scheduled or not: only today's routines can be
// checked, past and future dates are refused outright.
func Evaluate(scheduled string, now time.Time, targetDate string, windowMinutes int) Result {
	today := dateutil.Format(now)
	if targetDate != today {
		if targetDate < today {
			return Result{
				Status:  StatusWrongDate,
				Reason:  ReasonPastDate,
				Message: "Cannot check past dates",
			}
		}
		return Result{
			Status:  StatusWrongDate,
			Reason:  ReasonFutureDate,
			Message: "Cannot check future dates",
		}
	}

	if scheduled == "" {
		return Result{Status: StatusAnytime, CanCheck: true, Reason: "anytime"}
	}

	hour, minute, err := parseClock(scheduled)
	if err != nil {
		// Malformed schedules never gate a check-in; the store rejects
		// them on write, so treat any stray value as unscheduled.
		return Result{Status: StatusAnytime, CanCheck: true, Reason: "anytime"}
	}

	scheduledAt := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	window := time.Duration(windowMinutes) * time.Minute
	windowStart := scheduledAt.Add(-window)
	windowEnd := scheduledAt.Add(window)

	if !now.Before(windowStart) && !now.After(windowEnd) {
		remaining := roundMinutes(windowEnd.Sub(now))
		return Result{
			Status:           StatusWithinWindow,
			CanCheck:         true,
			Reason:           "within_window",
			MinutesRemaining: remaining,
			Message:          fmt.Sprintf("%d min remaining", remaining),
		}
	}

	if now.Before(windowStart) {
		until := roundMinutes(windowStart.Sub(now))
		return Result{
			Status:            StatusTooEarly,
			Reason:            "too_early",
			MinutesUntilStart: until,
			Message:           fmt.Sprintf("Available in %d min", until),
		}
	}

	return Result{Status: StatusTooLate, Reason: "too_late", Message: "Window expired"}
}

// Expired reports whether the window for scheduled has completely passed
// as of now.
func Expired(scheduled string, now time.Time, targetDate string, windowMinutes int) bool {
	if scheduled == "" {
		return false
	}
	return Evaluate(scheduled, now, targetDate, windowMinutes).Status == StatusTooLate
}

// Classify maps a Result onto its presentation tier.
func Classify(r Result) Tier {
	if r.CanCheck {
		if r.Status == StatusWithinWindow && r.MinutesRemaining <= constants.WarningThresholdMin {
			return TierWarning
		}
		return TierOK
	}
	if r.Status == StatusTooLate {
		return TierExpired
	}
	return TierPending
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

func roundMinutes(d time.Duration) int {
	return int((d + 30*time.Second) / time.Minute)
}
