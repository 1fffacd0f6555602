package storage

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// seedDefaults inserts the default routine catalogue on a fresh install.
// A database with any routine rows at all, including user-modified or
// user-deleted catalogues, is left untouched.
func (s *SQLiteStore) seedDefaults() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM routine_items").Scan(&count); err != nil {
		return fmt.Errorf("failed to count routines: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO routine_items (name, category, scheduled_time, is_enabled, order_index)
		VALUES (?, ?, ?, 1, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range constants.DefaultRoutines {
		if _, err := stmt.Exec(r.Name, string(r.Category), nullableClock(r.ScheduledTime), r.OrderIndex); err != nil {
			return fmt.Errorf("failed to seed routine %q: %w", r.Name, err)
		}
	}

	return tx.Commit()
}
