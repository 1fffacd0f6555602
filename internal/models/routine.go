package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Category string

const (
	CategoryMorning   Category = "morning"
	CategoryWork      Category = "work"
	CategoryExercise  Category = "exercise"
	CategoryHousehold Category = "household"
	CategoryEvening   Category = "evening"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryMorning,
	CategoryWork,
	CategoryExercise,
	CategoryHousehold,
	CategoryEvening,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryMorning, CategoryWork, CategoryExercise, CategoryHousehold, CategoryEvening:
		return true
	}
	return false
}

// Routine is a recurring task the user checks off day by day.
// ScheduledTime is "HH:MM" 24-hour, or empty meaning "anytime today".
type Routine struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      Category  `json:"category"`
	ScheduledTime string    `json:"scheduled_time,omitempty"`
	Enabled       bool      `json:"is_enabled"`
	OrderIndex    int       `json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
}

// Validate checks the invariants a routine must hold before it is stored.
func (r Routine) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("routine name must not be empty")
	}
	if !r.Category.Valid() {
		return fmt.Errorf("invalid category: %q", r.Category)
	}
	if r.ScheduledTime != "" {
		if err := ValidateClock(r.ScheduledTime); err != nil {
			return err
		}
	}
	return nil
}

// ValidateClock checks that s is an HH:MM 24-hour clock time.
func ValidateClock(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time format: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in %q", s)
	}
	return nil
}

// RoutineUpdate carries a partial-field update; nil fields are left untouched.
type RoutineUpdate struct {
	Name          *string
	Category      *Category
	ScheduledTime *string
	Enabled       *bool
	OrderIndex    *int
}

// Empty reports whether the update would change nothing.
func (u RoutineUpdate) Empty() bool {
	return u.Name == nil && u.Category == nil && u.ScheduledTime == nil &&
		u.Enabled == nil && u.OrderIndex == nil
}

// Completion records that a routine was done on a date. Presence of the row
// is the completion; there is no boolean flag.
type Completion struct {
	ID           int64     `json:"id"`
	RoutineID    int64     `json:"routine_id"`
	Date         string    `json:"date"` // YYYY-MM-DD
	CompletedAt  time.Time `json:"completed_at"`
	TimeSpentMin int       `json:"time_spent"`
}

// CompletionDetail is a completion joined with its routine's name and
// category for display.
type CompletionDetail struct {
	Completion
	RoutineName string   `json:"name"`
	Category    Category `json:"category"`
}

// DailyEntry holds day-level scalar facts, one row per date.
type DailyEntry struct {
	Date         string `json:"date"`
	ExerciseDone bool   `json:"exercise_done"`
	Notes        string `json:"notes,omitempty"`
	Mood         string `json:"mood,omitempty"`
}

// DailyEntryUpdate is a partial-field update for a daily entry.
type DailyEntryUpdate struct {
	ExerciseDone *bool
	Notes        *string
	Mood         *string
}

// WeightLog is one weight measurement per date. Writing a log for an
// existing date fully replaces the old row.
type WeightLog struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

// DateCount is one date's completion count, as returned by the range
// statistics query. Dates without activity are not returned by the store.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"completed_count"`
}
