package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

const today = "2026-03-14"

func TestEvaluateWindowBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		scheduled string
		now       time.Time
		status    Status
		canCheck  bool
	}{
		{"well before window", "09:00", at(8, 0), StatusTooEarly, false},
		{"one minute before window", "09:00", at(8, 29), StatusTooEarly, false},
		{"exact window start", "09:00", at(8, 30), StatusWithinWindow, true},
		{"at scheduled time", "09:00", at(9, 0), StatusWithinWindow, true},
		{"exact window end", "09:00", at(9, 30), StatusWithinWindow, true},
		{"one minute after window", "09:00", at(9, 31), StatusTooLate, false},
		{"hours after window", "09:00", at(14, 0), StatusTooLate, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Evaluate(tc.scheduled, tc.now, today, 30)
			assert.Equal(t, tc.status, result.Status)
			assert.Equal(t, tc.canCheck, result.CanCheck)
		})
	}
}

func TestEvaluateAnytime(t *testing.T) {
	for _, clock := range []time.Time{at(0, 0), at(12, 0), at(23, 59)} {
		result := Evaluate("", clock, today, 30)
		require.Equal(t, StatusAnytime, result.Status)
		require.True(t, result.CanCheck)
	}
}

func TestEvaluateWrongDate(t *testing.T) {
	now := at(12, 0)

	past := Evaluate("09:00", now, "2026-03-13", 30)
	assert.Equal(t, StatusWrongDate, past.Status)
	assert.False(t, past.CanCheck)
	assert.Equal(t, ReasonPastDate, past.Reason)

	future := Evaluate("09:00", now, "2026-03-15", 30)
	assert.Equal(t, StatusWrongDate, future.Status)
	assert.Equal(t, ReasonFutureDate, future.Reason)
}

func TestEvaluateWrongDateBeatsAnytime(t *testing.T) {
	// Unscheduled routines are still date-gated
	result := Evaluate("", at(12, 0), "2026-03-13", 30)
	assert.Equal(t, StatusWrongDate, result.Status)
	assert.False(t, result.CanCheck)
}

func TestEvaluateMinutes(t *testing.T) {
	within := Evaluate("09:00", at(9, 10), today, 30)
	require.Equal(t, StatusWithinWindow, within.Status)
	assert.Equal(t, 20, within.MinutesRemaining)

	early := Evaluate("09:00", at(8, 15), today, 30)
	require.Equal(t, StatusTooEarly, early.Status)
	assert.Equal(t, 15, early.MinutesUntilStart)
}

func TestEvaluateMalformedScheduleIsAnytime(t *testing.T) {
	for _, bad := range []string{"9am", "25:00", "12:65", "noon"} {
		result := Evaluate(bad, at(12, 0), today, 30)
		assert.Equal(t, StatusAnytime, result.Status, "schedule %q", bad)
		assert.True(t, result.CanCheck)
	}
}

func TestEvaluateCustomWindow(t *testing.T) {
	// 60 minute half-window widens both sides
	result := Evaluate("09:00", at(8, 15), today, 60)
	assert.Equal(t, StatusWithinWindow, result.Status)

	result = Evaluate("09:00", at(9, 55), today, 60)
	assert.Equal(t, StatusWithinWindow, result.Status)

	result = Evaluate("09:00", at(10, 1), today, 60)
	assert.Equal(t, StatusTooLate, result.Status)
}

func TestExpired(t *testing.T) {
	assert.False(t, Expired("", at(23, 0), today, 30))
	assert.True(t, Expired("09:00", at(10, 0), today, 30))
	assert.False(t, Expired("09:00", at(9, 0), today, 30))
	assert.False(t, Expired("09:00", at(12, 0), "2026-03-15", 30))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		tier   Tier
	}{
		{"within with margin", Result{Status: StatusWithinWindow, CanCheck: true, MinutesRemaining: 25}, TierOK},
		{"within closing soon", Result{Status: StatusWithinWindow, CanCheck: true, MinutesRemaining: 10}, TierWarning},
		{"anytime", Result{Status: StatusAnytime, CanCheck: true}, TierOK},
		{"too late", Result{Status: StatusTooLate}, TierExpired},
		{"too early", Result{Status: StatusTooEarly}, TierPending},
		{"wrong date", Result{Status: StatusWrongDate}, TierPending},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tier, Classify(tc.result))
		})
	}
}
