package appstate

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// fakeStore implements just the reads the facade performs. Completions
// can be gated per date so tests can hold a load open.
type fakeStore struct {
	storage.Provider

	mu          sync.Mutex
	routines    []models.Routine
	completions map[string][]models.CompletionDetail
	routineErr  error
	compErr     error
	gates       map[string]chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		completions: map[string][]models.CompletionDetail{},
		gates:       map[string]chan struct{}{},
	}
}

func (f *fakeStore) ListRoutines(enabledOnly bool) ([]models.Routine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.routineErr != nil {
		return nil, f.routineErr
	}
	return f.routines, nil
}

func (f *fakeStore) CompletionsForDate(date string) ([]models.CompletionDetail, error) {
	f.mu.Lock()
	gate := f.gates[date]
	err := f.compErr
	comps := f.completions[date]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return comps, nil
}

func routinesN(n int) []models.Routine {
	out := make([]models.Routine, n)
	for i := range out {
		out[i] = models.Routine{ID: int64(i + 1), Name: "r", Category: models.CategoryMorning, Enabled: true}
	}
	return out
}

func completionsN(n int) []models.CompletionDetail {
	out := make([]models.CompletionDetail, n)
	for i := range out {
		out[i] = models.CompletionDetail{Completion: models.Completion{RoutineID: int64(i + 1)}}
	}
	return out
}

func TestNewDefaultsToToday(t *testing.T) {
	state := New(newFakeStore())
	assert.Equal(t, dateutil.Today(), state.SelectedDate())
}

func TestRefreshPublishesJoinedSnapshot(t *testing.T) {
	store := newFakeStore()
	store.routines = routinesN(4)
	state := New(store)
	date := state.SelectedDate()
	store.completions[date] = completionsN(1)

	require.NoError(t, state.Refresh())

	snap := state.Snapshot()
	assert.Len(t, snap.Routines, 4)
	assert.Len(t, snap.Completions, 1)
	assert.Equal(t, 25, snap.CompletionPercentage)
	assert.False(t, state.IsLoading())
}

func TestRefreshPercentageRounding(t *testing.T) {
	store := newFakeStore()
	store.routines = routinesN(3)
	state := New(store)
	store.completions[state.SelectedDate()] = completionsN(2)

	require.NoError(t, state.Refresh())
	// 2/3 rounds half-up to 67
	assert.Equal(t, 67, state.Snapshot().CompletionPercentage)
}

func TestRefreshZeroRoutines(t *testing.T) {
	state := New(newFakeStore())
	require.NoError(t, state.Refresh())
	assert.Equal(t, 0, state.Snapshot().CompletionPercentage)
}

func TestRefreshFailsWhenEitherFetchFails(t *testing.T) {
	store := newFakeStore()
	store.routineErr = errors.New("boom")
	state := New(store)
	assert.Error(t, state.Refresh())

	store = newFakeStore()
	store.compErr = errors.New("boom")
	state = New(store)
	assert.Error(t, state.Refresh())
}

func TestFailedRefreshPublishesNothing(t *testing.T) {
	store := newFakeStore()
	store.routines = routinesN(2)
	state := New(store)
	store.completions[state.SelectedDate()] = completionsN(2)
	require.NoError(t, state.Refresh())

	store.mu.Lock()
	store.compErr = errors.New("boom")
	store.mu.Unlock()

	require.Error(t, state.Refresh())
	// The last good snapshot survives
	assert.Equal(t, 100, state.Snapshot().CompletionPercentage)
}

func TestSetDateSwitchesSnapshot(t *testing.T) {
	store := newFakeStore()
	store.routines = routinesN(2)
	store.completions["2026-03-13"] = completionsN(1)
	state := New(store)

	require.NoError(t, state.SetDate("2026-03-13"))
	snap := state.Snapshot()
	assert.Equal(t, "2026-03-13", snap.SelectedDate)
	assert.Equal(t, 50, snap.CompletionPercentage)
}

func TestStaleLoadNeverOverwritesNewer(t *testing.T) {
	store := newFakeStore()
	store.routines = routinesN(2)
	store.completions["2026-03-12"] = completionsN(2)
	store.completions["2026-03-13"] = completionsN(1)

	// Hold the load for the first date open
	gate := make(chan struct{})
	store.gates["2026-03-12"] = gate

	state := New(store)
	state.mu.Lock()
	state.snapshot.SelectedDate = "2026-03-12"
	state.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = state.Refresh()
	}()

	// The user moves on while the first load hangs
	require.NoError(t, state.SetDate("2026-03-13"))
	assert.Equal(t, "2026-03-13", state.Snapshot().SelectedDate)

	// Releasing the stale load must not change the published snapshot
	close(gate)
	wg.Wait()

	snap := state.Snapshot()
	assert.Equal(t, "2026-03-13", snap.SelectedDate)
	assert.Len(t, snap.Completions, 1)
	assert.Equal(t, 50, snap.CompletionPercentage)
}
