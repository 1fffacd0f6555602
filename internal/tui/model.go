package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/appstate"
	"github.com/julianstephens/lifetrack/internal/config"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/timewindow"
	"github.com/julianstephens/lifetrack/internal/tui/components/checklist"
)

type SessionState int

const (
	StateChecklist SessionState = iota
	StateAddRoutine
	StateConfirmDelete
)

// RoutineFormModel backs the huh add-routine form; huh binds to strings.
type RoutineFormModel struct {
	Name     string
	Category string
	At       string
}

type Model struct {
	store  storage.Provider
	state  *appstate.State
	config config.Config

	session     SessionState
	keys        KeyMap
	help        help.Model
	checklist   checklist.Model
	form        *huh.Form
	routineForm *RoutineFormModel
	toDelete    *models.Routine

	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, cfg config.Config) Model {
	state := appstate.New(store)

	m := Model{
		store:     store,
		state:     state,
		config:    cfg,
		session:   StateChecklist,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		checklist: checklist.New(nil, 0, 0),
	}

	if err := state.Refresh(); err != nil {
		m.errMsg = err.Error()
	} else {
		m.checklist.SetItems(m.buildItems())
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// buildItems joins the snapshot's routines and completions into display
// rows with a fresh window evaluation each.
func (m Model) buildItems() []checklist.Item {
	snap := m.state.Snapshot()
	now := time.Now()

	done := make(map[int64]bool, len(snap.Completions))
	for _, comp := range snap.Completions {
		done[comp.RoutineID] = true
	}

	items := make([]checklist.Item, 0, len(snap.Routines))
	for _, r := range snap.Routines {
		items = append(items, checklist.Item{
			Routine: r,
			Done:    done[r.ID],
			Window:  timewindow.Evaluate(r.ScheduledTime, now, snap.SelectedDate, m.config.WindowMinutes),
		})
	}
	return items
}

func (m *Model) reload() {
	if err := m.state.Refresh(); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.checklist.SetItems(m.buildItems())
}

func (m *Model) setDate(date string) {
	if err := m.state.SetDate(date); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.checklist.SetItems(m.buildItems())
}
