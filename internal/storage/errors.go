package storage

import (
	"errors"
	"strings"
)

var (
	// ErrNotInitialized is returned when the store is used before Init or
	// when the database file does not exist yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'lifetrack init' first")

	// ErrRoutineNotFound is returned when a routine id or name does not
	// resolve to a row.
	ErrRoutineNotFound = errors.New("routine not found")

	// ErrInvalidRoutine is returned when routine fields fail validation
	// before any write happens.
	ErrInvalidRoutine = errors.New("invalid routine")
)

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
// The modernc driver surfaces these as plain errors carrying the SQLite
// message, so string matching is the only portable check.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isMissingTable reports whether err is a "no such table" failure, which
// reads on a not-yet-migrated database degrade through.
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
