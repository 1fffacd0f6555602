package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// Service builds backup documents from a store and merges documents back
// into it.
type Service struct {
	store storage.Provider

	// logw receives row-level import diagnostics; defaults to stderr.
	logw io.Writer

	// now is swappable for tests.
	now func() time.Time

	days int
}

func NewService(store storage.Provider) *Service {
	return &Service{
		store: store,
		logw:  os.Stderr,
		now:   time.Now,
		days:  constants.ExportDays,
	}
}

// WithExportDays overrides the trailing window of dates Export gathers.
func (s *Service) WithExportDays(n int) *Service {
	if n > 0 {
		s.days = n
	}
	return s
}

// ImportResult reports what an import actually did. Skipped rows are not
// errors: they are already-present completions, completions whose routine
// no longer exists by name, or rows that failed individually.
type ImportResult struct {
	RoutinesImported    int
	RoutinesSkipped     int
	CompletionsImported int
	CompletionsSkipped  int
}

// Export gathers the full logical dataset into a backup document:
// user name, all routines, completions for the trailing window of
// calendar dates (dates with none are omitted), and summary statistics.
func (s *Service) Export() (*BackupDocument, error) {
	userName, err := s.store.GetSetting(constants.SettingUserName)
	if err != nil {
		return nil, fmt.Errorf("failed to read user name: %w", err)
	}
	installID, err := s.store.GetSetting(constants.SettingInstallID)
	if err != nil {
		return nil, fmt.Errorf("failed to read install id: %w", err)
	}

	routines, err := s.store.ListRoutines(false)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}

	dates := dateutil.LastNDays(s.days, s.now())
	completions := make(map[string][]CompletionSnapshot)
	for _, date := range dates {
		details, err := s.store.CompletionsForDate(date)
		if err != nil {
			return nil, fmt.Errorf("failed to read completions for %s: %w", date, err)
		}
		if len(details) == 0 {
			continue
		}
		snaps := make([]CompletionSnapshot, 0, len(details))
		for _, d := range details {
			snaps = append(snaps, CompletionSnapshot{
				ID:        d.ID,
				RoutineID: d.RoutineID,
				Date:      d.Date,
				TimeSpent: d.TimeSpentMin,
				Name:      d.RoutineName,
				Category:  string(d.Category),
			})
		}
		completions[date] = snaps
	}

	snapshots := make([]RoutineSnapshot, 0, len(routines))
	enabled := 0
	for _, r := range routines {
		if r.Enabled {
			enabled++
		}
		snapshots = append(snapshots, routineSnapshot(r))
	}

	doc := &BackupDocument{
		ExportVersion: constants.ExportVersion,
		ExportDate:    s.now(),
		AppVersion:    constants.Version,
		InstallID:     installID,
		User:          BackupUser{Name: userName},
		Routines:      snapshots,
		Completions:   completions,
		Statistics: Statistics{
			TotalRoutines:      len(routines),
			EnabledRoutines:    enabled,
			TotalCompletedDays: len(completions),
		},
	}
	if len(dates) > 0 {
		doc.Statistics.DateRange = &DateRange{From: dates[0], To: dates[len(dates)-1]}
	}

	return doc, nil
}

// Import merges a backup document into the store. Routines are matched by
// exact name: a match updates the mutable fields in place (the local id
// never changes), a miss inserts a new routine. Completions are re-linked
// through the routine name; already-present pairs and unresolvable names
// are skipped. Row-level failures are logged and counted, never fatal —
// the merge continues and reports what it managed.
func (s *Service) Import(doc *BackupDocument) (ImportResult, error) {
	var result ImportResult

	if err := doc.Validate(); err != nil {
		return result, err
	}

	if doc.User.Name != "" {
		if err := s.store.SetSetting(constants.SettingUserName, doc.User.Name); err != nil {
			return result, fmt.Errorf("failed to import user name: %w", err)
		}
	}

	for _, snap := range doc.Routines {
		if err := s.importRoutine(snap); err != nil {
			fmt.Fprintf(s.logw, "Warning: skipping routine %q: %v\n", snap.Name, err)
			result.RoutinesSkipped++
			continue
		}
		result.RoutinesImported++
	}

	// Walk dates in order so diagnostics are deterministic
	dates := make([]string, 0, len(doc.Completions))
	for date := range doc.Completions {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		for _, snap := range doc.Completions[date] {
			inserted, err := s.importCompletion(snap, date)
			if err != nil {
				fmt.Fprintf(s.logw, "Warning: skipping completion %q on %s: %v\n", snap.Name, date, err)
				result.CompletionsSkipped++
				continue
			}
			if inserted {
				result.CompletionsImported++
			} else {
				result.CompletionsSkipped++
			}
		}
	}

	return result, nil
}

func (s *Service) importRoutine(snap RoutineSnapshot) error {
	enabled := snap.IsEnabled == 1

	existing, err := s.store.FindRoutineByName(snap.Name)
	if err == nil {
		category := models.Category(snap.Category)
		return s.store.UpdateRoutine(existing.ID, models.RoutineUpdate{
			Category:      &category,
			ScheduledTime: &snap.ScheduledTime,
			Enabled:       &enabled,
			OrderIndex:    &snap.OrderIndex,
		})
	}
	if !errors.Is(err, storage.ErrRoutineNotFound) {
		return err
	}

	_, err = s.store.AddRoutine(models.Routine{
		Name:          snap.Name,
		Category:      models.Category(snap.Category),
		ScheduledTime: snap.ScheduledTime,
		Enabled:       enabled,
		OrderIndex:    snap.OrderIndex,
	})
	return err
}

// importCompletion reports whether a new row was inserted. A routine that
// no longer exists by name is a silent skip, not an error.
func (s *Service) importCompletion(snap CompletionSnapshot, date string) (bool, error) {
	routine, err := s.store.FindRoutineByName(snap.Name)
	if errors.Is(err, storage.ErrRoutineNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return s.store.InsertCompletion(routine.ID, date)
}

func routineSnapshot(r models.Routine) RoutineSnapshot {
	enabled := 0
	if r.Enabled {
		enabled = 1
	}
	return RoutineSnapshot{
		ID:            r.ID,
		Name:          r.Name,
		Category:      string(r.Category),
		ScheduledTime: r.ScheduledTime,
		IsEnabled:     enabled,
		OrderIndex:    r.OrderIndex,
	}
}
