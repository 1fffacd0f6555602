package storage

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// Init creates the database file, applies all migrations, and seeds the
// default routine catalogue if the routines table is empty. It is safe to
// call repeatedly: an already-open store keeps its handle, and an
// already-populated database is never re-seeded.
func (s *SQLiteStore) Init() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	s.db = db

	if err := s.seedDefaults(); err != nil {
		return fmt.Errorf("failed to seed default routines: %w", err)
	}

	// Mint a stable install identifier on first run
	installID, err := s.GetSetting(constants.SettingInstallID)
	if err != nil {
		return err
	}
	if installID == "" {
		if err := s.SetSetting(constants.SettingInstallID, uuid.New().String()); err != nil {
			return fmt.Errorf("failed to store install id: %w", err)
		}
	}

	return nil
}

// Load opens an already-initialized database and applies any pending
// additive migrations. Unlike Init it refuses to create a new store.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db == nil {
		return ErrNotInitialized
	}
	return nil
}

func (s *SQLiteStore) ListRoutines(enabledOnly bool) ([]models.Routine, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, category, scheduled_time, is_enabled, order_index, created_at
		FROM routine_items`
	if enabledOnly {
		query += " WHERE is_enabled = 1"
	}
	query += " ORDER BY order_index ASC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routines []models.Routine
	for rows.Next() {
		r, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}

	return routines, rows.Err()
}

func (s *SQLiteStore) GetRoutine(id int64) (models.Routine, error) {
	if err := s.ensureOpen(); err != nil {
		return models.Routine{}, err
	}

	row := s.db.QueryRow(`
		SELECT id, name, category, scheduled_time, is_enabled, order_index, created_at
		FROM routine_items WHERE id = ?`, id)

	r, err := scanRoutine(row)
	if err == sql.ErrNoRows {
		return models.Routine{}, fmt.Errorf("%w: id %d", ErrRoutineNotFound, id)
	}
	return r, err
}

// FindRoutineByName resolves a routine by its exact name. Name is the
// durable cross-store identity used by backup import; see internal/export.
func (s *SQLiteStore) FindRoutineByName(name string) (models.Routine, error) {
	if err := s.ensureOpen(); err != nil {
		return models.Routine{}, err
	}

	row := s.db.QueryRow(`
		SELECT id, name, category, scheduled_time, is_enabled, order_index, created_at
		FROM routine_items WHERE name = ?`, name)

	r, err := scanRoutine(row)
	if err == sql.ErrNoRows {
		return models.Routine{}, fmt.Errorf("%w: %q", ErrRoutineNotFound, name)
	}
	return r, err
}

// AddRoutine validates and inserts a routine, returning its assigned id.
// An unset (non-positive) order index defaults to 99 so new routines sort
// after the seeded catalogue.
func (s *SQLiteStore) AddRoutine(r models.Routine) (int64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}

	r.Name = strings.TrimSpace(r.Name)
	if err := r.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRoutine, err)
	}

	if r.OrderIndex <= 0 {
		r.OrderIndex = constants.DefaultOrderIndex
	}

	res, err := s.db.Exec(`
		INSERT INTO routine_items (name, category, scheduled_time, is_enabled, order_index)
		VALUES (?, ?, ?, ?, ?)`,
		r.Name, string(r.Category), nullableClock(r.ScheduledTime), boolToInt(r.Enabled), r.OrderIndex,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// UpdateRoutine applies only the fields set on update. Provided fields are
// validated before any write; an empty update is a no-op.
func (s *SQLiteStore) UpdateRoutine(id int64, update models.RoutineUpdate) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if update.Empty() {
		return nil
	}

	var clauses []string
	var args []any

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return fmt.Errorf("%w: routine name must not be empty", ErrInvalidRoutine)
		}
		clauses = append(clauses, "name = ?")
		args = append(args, name)
	}
	if update.Category != nil {
		if !update.Category.Valid() {
			return fmt.Errorf("%w: invalid category %q", ErrInvalidRoutine, *update.Category)
		}
		clauses = append(clauses, "category = ?")
		args = append(args, string(*update.Category))
	}
	if update.ScheduledTime != nil {
		if *update.ScheduledTime != "" {
			if err := models.ValidateClock(*update.ScheduledTime); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidRoutine, err)
			}
		}
		clauses = append(clauses, "scheduled_time = ?")
		args = append(args, nullableClock(*update.ScheduledTime))
	}
	if update.Enabled != nil {
		clauses = append(clauses, "is_enabled = ?")
		args = append(args, boolToInt(*update.Enabled))
	}
	if update.OrderIndex != nil {
		clauses = append(clauses, "order_index = ?")
		args = append(args, *update.OrderIndex)
	}

	args = append(args, id)
	res, err := s.db.Exec(
		"UPDATE routine_items SET "+strings.Join(clauses, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrRoutineNotFound, id)
	}
	return nil
}

// DeleteRoutine removes the routine row. Completions referencing it are
// left in place; doctor reports them as orphans.
func (s *SQLiteStore) DeleteRoutine(id int64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM routine_items WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrRoutineNotFound, id)
	}
	return nil
}

// ToggleCompletion flips the completion state for (routineID, date) and
// returns the new state: true means the routine is now complete. The
// delete-then-insert order plus the UNIQUE(routine_id, date) constraint
// makes concurrent toggles safe without a prior existence check; a
// constraint failure on insert means another writer got there first and
// the routine is already complete.
func (s *SQLiteStore) ToggleCompletion(routineID int64, date string) (bool, error) {
	if err := s.ensureOpen(); err != nil {
		return false, err
	}

	res, err := s.db.Exec(
		"DELETE FROM routine_completions WHERE routine_id = ? AND date = ?",
		routineID, date,
	)
	if err != nil {
		return false, err
	}
	if affected, err := res.RowsAffected(); err != nil {
		return false, err
	} else if affected > 0 {
		return false, nil
	}

	_, err = s.db.Exec(
		"INSERT INTO routine_completions (routine_id, date) VALUES (?, ?)",
		routineID, date,
	)
	if isUniqueViolation(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertCompletion records a completion if none exists for the pair, and
// reports whether a row was inserted. Used by backup import, where an
// already-present completion is a skip, not an error.
func (s *SQLiteStore) InsertCompletion(routineID int64, date string) (bool, error) {
	if err := s.ensureOpen(); err != nil {
		return false, err
	}

	_, err := s.db.Exec(
		"INSERT INTO routine_completions (routine_id, date) VALUES (?, ?)",
		routineID, date,
	)
	if isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) CompletionsForDate(date string) ([]models.CompletionDetail, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT rc.id, rc.routine_id, rc.date, rc.completed_at, rc.time_spent, ri.name, ri.category
		FROM routine_completions rc
		JOIN routine_items ri ON rc.routine_id = ri.id
		WHERE rc.date = ?`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.CompletionDetail
	for rows.Next() {
		var d models.CompletionDetail
		var completedAt, category string
		err := rows.Scan(
			&d.ID, &d.RoutineID, &d.Date, &completedAt, &d.TimeSpentMin,
			&d.RoutineName, &category,
		)
		if err != nil {
			return nil, err
		}
		d.CompletedAt = parseTimestamp(completedAt)
		d.Category = models.Category(category)
		details = append(details, d)
	}

	return details, rows.Err()
}

func (s *SQLiteStore) IsCompleted(routineID int64, date string) (bool, error) {
	if err := s.ensureOpen(); err != nil {
		return false, err
	}

	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM routine_completions WHERE routine_id = ? AND date = ?",
		routineID, date,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CompletionPercentage returns the whole-percent share of enabled routines
// completed on date, rounded half-up. Zero enabled routines yields 0.
func (s *SQLiteStore) CompletionPercentage(date string) (int, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}

	var total int
	err := s.db.QueryRow("SELECT COUNT(*) FROM routine_items WHERE is_enabled = 1").Scan(&total)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	var completed int
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM routine_completions rc
		JOIN routine_items ri ON rc.routine_id = ri.id
		WHERE rc.date = ? AND ri.is_enabled = 1`, date).Scan(&completed)
	if err != nil {
		return 0, err
	}

	return int(math.Round(float64(completed) / float64(total) * 100)), nil
}

// CompletionStatsForRange returns per-date completion counts for dates
// with at least one completion, oldest first. Dates with no activity are
// absent; callers zero-fill with dateutil.ZeroFill.
func (s *SQLiteStore) CompletionStatsForRange(startDate, endDate string) ([]models.DateCount, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT date, COUNT(*) FROM routine_completions
		WHERE date BETWEEN ? AND ?
		GROUP BY date
		ORDER BY date ASC`, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.DateCount
	for rows.Next() {
		var dc models.DateCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		stats = append(stats, dc)
	}

	return stats, rows.Err()
}

func (s *SQLiteStore) GetDailyEntry(date string) (models.DailyEntry, bool, error) {
	if err := s.ensureOpen(); err != nil {
		return models.DailyEntry{}, false, err
	}

	var entry models.DailyEntry
	var exerciseDone int
	var notes, mood sql.NullString
	err := s.db.QueryRow(
		"SELECT date, exercise_done, notes, mood FROM daily_entries WHERE date = ?", date,
	).Scan(&entry.Date, &exerciseDone, &notes, &mood)
	if err == sql.ErrNoRows {
		return models.DailyEntry{}, false, nil
	}
	if err != nil {
		return models.DailyEntry{}, false, err
	}

	entry.ExerciseDone = exerciseDone == 1
	entry.Notes = notes.String
	entry.Mood = mood.String
	return entry, true, nil
}

// UpsertDailyEntry merges the provided fields into the entry for date,
// creating the row if absent. Unset fields keep their stored values.
func (s *SQLiteStore) UpsertDailyEntry(date string, update models.DailyEntryUpdate) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, found, err := s.GetDailyEntry(date)
	if err != nil {
		return err
	}

	if found {
		var clauses []string
		var args []any
		if update.ExerciseDone != nil {
			clauses = append(clauses, "exercise_done = ?")
			args = append(args, boolToInt(*update.ExerciseDone))
		}
		if update.Notes != nil {
			clauses = append(clauses, "notes = ?")
			args = append(args, *update.Notes)
		}
		if update.Mood != nil {
			clauses = append(clauses, "mood = ?")
			args = append(args, *update.Mood)
		}
		if len(clauses) == 0 {
			return nil
		}
		args = append(args, date)
		_, err = s.db.Exec(
			"UPDATE daily_entries SET "+strings.Join(clauses, ", ")+" WHERE date = ?", args...,
		)
		return err
	}

	exerciseDone := 0
	if update.ExerciseDone != nil {
		exerciseDone = boolToInt(*update.ExerciseDone)
	}
	notes := ""
	if update.Notes != nil {
		notes = *update.Notes
	}
	mood := ""
	if update.Mood != nil {
		mood = *update.Mood
	}
	_, err = s.db.Exec(
		"INSERT INTO daily_entries (date, exercise_done, notes, mood) VALUES (?, ?, ?, ?)",
		date, exerciseDone, notes, mood,
	)
	return err
}

// ToggleExercise flips the exercise flag on the entry for date, creating
// the entry if absent, and returns the new state.
func (s *SQLiteStore) ToggleExercise(date string) (bool, error) {
	entry, found, err := s.GetDailyEntry(date)
	if err != nil {
		return false, err
	}

	newValue := true
	if found {
		newValue = !entry.ExerciseDone
	}

	if err := s.UpsertDailyEntry(date, models.DailyEntryUpdate{ExerciseDone: &newValue}); err != nil {
		return false, err
	}
	return newValue, nil
}

func (s *SQLiteStore) GetWeightLog(date string) (models.WeightLog, bool, error) {
	if err := s.ensureOpen(); err != nil {
		return models.WeightLog{}, false, err
	}

	var log models.WeightLog
	err := s.db.QueryRow(
		"SELECT date, weight, unit FROM weight_logs WHERE date = ?", date,
	).Scan(&log.Date, &log.Weight, &log.Unit)
	if err == sql.ErrNoRows {
		return models.WeightLog{}, false, nil
	}
	if err != nil {
		return models.WeightLog{}, false, err
	}
	return log, true, nil
}

// UpsertWeightLog fully replaces any existing log for the date, unlike
// the daily entry's field-level merge.
func (s *SQLiteStore) UpsertWeightLog(date string, weight float64, unit string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if unit == "" {
		unit = constants.DefaultWeightUnit
	}

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO weight_logs (date, weight, unit) VALUES (?, ?, ?)",
		date, weight, unit,
	)
	return err
}

// GetSetting reads a user setting, returning the empty string when the
// key has no value. A missing user_settings table also reads as "no
// value": first-run code may ask for settings before migrations have run,
// and that race must not surface as a failure.
func (s *SQLiteStore) GetSetting(key string) (string, error) {
	if err := s.ensureOpen(); err != nil {
		return "", err
	}

	var value sql.NullString
	err := s.db.QueryRow("SELECT value FROM user_settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows || isMissingTable(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

func (s *SQLiteStore) SetSetting(key, value string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO user_settings (key, value, updated_at)
		VALUES (?, ?, datetime('now'))`, key, value)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoutine(row rowScanner) (models.Routine, error) {
	var r models.Routine
	var scheduledTime sql.NullString
	var isEnabled int
	var createdAt string

	err := row.Scan(&r.ID, &r.Name, &r.Category, &scheduledTime, &isEnabled, &r.OrderIndex, &createdAt)
	if err != nil {
		return models.Routine{}, err
	}

	r.ScheduledTime = scheduledTime.String
	r.Enabled = isEnabled == 1
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func nullableClock(clock string) any {
	if clock == "" {
		return nil
	}
	return clock
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
