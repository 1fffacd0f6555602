package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tui/components/checklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.checklist.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case checklist.ToggleMsg:
		m.toggleRoutine(msg.Routine)
		return m, nil

	case checklist.AddRoutineMsg:
		return m.openAddForm(), nil

	case checklist.DeleteRoutineMsg:
		routine := msg.Routine
		m.toDelete = &routine
		m.session = StateConfirmDelete
		return m, nil
	}

	switch m.session {
	case StateAddRoutine:
		return m.updateAddForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.PrevDay):
			m.setDate(shiftDate(m.state.SelectedDate(), -1))
			return m, nil
		case key.Matches(keyMsg, m.keys.NextDay):
			m.setDate(shiftDate(m.state.SelectedDate(), 1))
			return m, nil
		case key.Matches(keyMsg, m.keys.Today):
			m.setDate(dateutil.Today())
			return m, nil
		case key.Matches(keyMsg, m.keys.Refresh):
			m.reload()
			return m, nil
		case key.Matches(keyMsg, m.keys.Exercise):
			if _, err := m.store.ToggleExercise(m.state.SelectedDate()); err != nil {
				m.errMsg = err.Error()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.checklist, cmd = m.checklist.Update(msg)
	return m, cmd
}

// toggleRoutine checks or unchecks the routine for the selected date,
// honoring the time window gate. Unchecking is never gated.
func (m *Model) toggleRoutine(routine models.Routine) {
	date := m.state.SelectedDate()

	done, err := m.store.IsCompleted(routine.ID, date)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	if !done {
		for _, item := range m.buildItems() {
			if item.Routine.ID == routine.ID && !item.Window.CanCheck {
				m.errMsg = fmt.Sprintf("%s: %s", routine.Name, item.Window.Message)
				return
			}
		}
	}

	if _, err := m.store.ToggleCompletion(routine.ID, date); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.reload()
}

func (m Model) openAddForm() Model {
	m.routineForm = &RoutineFormModel{Category: string(models.CategoryMorning)}

	options := make([]huh.Option[string], 0, len(models.Categories))
	for _, c := range models.Categories {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&m.routineForm.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&m.routineForm.Category),
			huh.NewInput().
				Title("Time (HH:MM, empty for anytime)").
				Value(&m.routineForm.At).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					return models.ValidateClock(s)
				}),
		),
	)
	m.session = StateAddRoutine
	return m
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.store.AddRoutine(models.Routine{
			Name:          m.routineForm.Name,
			Category:      models.Category(m.routineForm.Category),
			ScheduledTime: m.routineForm.At,
			Enabled:       true,
		})
		if err != nil {
			m.errMsg = err.Error()
		}
		m.session = StateChecklist
		m.reload()
		return m, nil
	case huh.StateAborted:
		m.session = StateChecklist
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if m.toDelete != nil {
			if err := m.store.DeleteRoutine(m.toDelete.ID); err != nil {
				m.errMsg = err.Error()
			}
		}
		m.toDelete = nil
		m.session = StateChecklist
		m.reload()
	case "n", "esc", "q":
		m.toDelete = nil
		m.session = StateChecklist
	}
	return m, nil
}

func shiftDate(date string, days int) string {
	d, err := dateutil.Parse(date)
	if err != nil {
		return dateutil.Today()
	}
	return dateutil.Format(d.AddDate(0, 0, days))
}
