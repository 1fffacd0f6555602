// Package appstate holds the derived view state for a selected date: the
// enabled routine list, that date's completions, and the completion
// percentage. The cache is read-derived and non-authoritative; it is
// recomputed whole on every date change or refresh, never mutated in
// place.
package appstate

import (
	"math"
	"sync"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// Snapshot is one consistent view of the selected date.
type Snapshot struct {
	SelectedDate         string
	Routines             []models.Routine
	Completions          []models.CompletionDetail
	CompletionPercentage int
}

// State recomputes the snapshot whenever the selected date changes or
// Refresh is called. Rapid date changes may overlap; each load carries a
// sequence number and only the latest load is allowed to publish, so a
// slow stale result never overwrites a fresh one.
type State struct {
	store storage.Provider

	mu       sync.Mutex
	snapshot Snapshot
	loading  int
	loadSeq  uint64
}

func New(store storage.Provider) *State {
	return &State{
		store:    store,
		snapshot: Snapshot{SelectedDate: dateutil.Today()},
	}
}

// SelectedDate returns the date the facade currently reflects.
func (s *State) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.SelectedDate
}

// Snapshot returns the latest published view state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// IsLoading reports whether any recompute is in flight.
func (s *State) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// SetDate switches the selected date and recomputes the view state.
func (s *State) SetDate(date string) error {
	s.mu.Lock()
	s.snapshot.SelectedDate = date
	s.mu.Unlock()
	return s.Refresh()
}

// Refresh recomputes the view state for the selected date. The routine
// list and the completion list are fetched as independent requests and
// joined; if either fails the whole refresh fails and nothing is
// published.
func (s *State) Refresh() error {
	s.mu.Lock()
	date := s.snapshot.SelectedDate
	s.loadSeq++
	seq := s.loadSeq
	s.loading++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}()

	var (
		wg          sync.WaitGroup
		routines    []models.Routine
		completions []models.CompletionDetail
		routineErr  error
		compErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		routines, routineErr = s.store.ListRoutines(true)
	}()
	go func() {
		defer wg.Done()
		completions, compErr = s.store.CompletionsForDate(date)
	}()
	wg.Wait()

	if routineErr != nil {
		return routineErr
	}
	if compErr != nil {
		return compErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		// A newer load superseded this one; drop the stale result
		return nil
	}

	s.snapshot = Snapshot{
		SelectedDate:         date,
		Routines:             routines,
		Completions:          completions,
		CompletionPercentage: percentage(len(completions), len(routines)),
	}
	return nil
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
