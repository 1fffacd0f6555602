package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/dateutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.session {
	case StateAddRoutine:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = m.checklist.View()
	}

	sections := []string{m.viewHeader(), content}
	if m.errMsg != "" {
		sections = append(sections, errStyle.Render("⚠ "+m.errMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	snap := m.state.Snapshot()
	now := time.Now()

	greeting := dateutil.Greeting(now)
	if name, err := m.store.GetSetting(constants.SettingUserName); err == nil && name != "" {
		greeting += ", " + name
	}

	progress := fmt.Sprintf("%d/%d done (%d%%)",
		len(snap.Completions), len(snap.Routines), snap.CompletionPercentage)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(greeting),
		dateStyle.Render(dateutil.DisplayName(snap.SelectedDate, now)),
		progressStyle.Render(progress),
	)
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.toDelete != nil {
		name = m.toDelete.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and its completion history?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
