package checklist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/timewindow"
)

type ToggleMsg struct {
	Routine models.Routine
}

type AddRoutineMsg struct{}

type DeleteRoutineMsg struct {
	Routine models.Routine
}

// Item is one routine row together with its completion state and the
// current window evaluation.
type Item struct {
	Routine models.Routine
	Done    bool
	Window  timewindow.Result
}

func (i Item) Title() string {
	mark := "[ ]"
	if i.Done {
		mark = "[✓]"
	}
	title := fmt.Sprintf("%s %s", mark, i.Routine.Name)
	if i.Routine.ScheduledTime != "" {
		title += " @ " + dateutil.ClockDisplay(i.Routine.ScheduledTime)
	}
	return title
}

func (i Item) Description() string {
	desc := constants.CategoryMeta[i.Routine.Category].Name
	if !i.Done && i.Window.Message != "" {
		desc += " | " + tierStyles[timewindow.Classify(i.Window)].Render(i.Window.Message)
	}
	return desc
}

var tierStyles = map[timewindow.Tier]lipgloss.Style{
	timewindow.TierOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	timewindow.TierWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	timewindow.TierExpired: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	timewindow.TierPending: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func (i Item) FilterValue() string { return i.Routine.Name }

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is rendered globally by the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleMsg{Routine: i.Routine} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddRoutineMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteRoutineMsg{Routine: i.Routine} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No routines yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
