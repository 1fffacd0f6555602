package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/timewindow"
)

func TestItemTitle(t *testing.T) {
	item := Item{
		Routine: models.Routine{Name: "Coffee", Category: models.CategoryMorning, ScheduledTime: "07:30"},
	}
	assert.Equal(t, "[ ] Coffee @ 7:30 AM", item.Title())

	item.Done = true
	assert.Equal(t, "[✓] Coffee @ 7:30 AM", item.Title())

	anytime := Item{Routine: models.Routine{Name: "Laundry", Category: models.CategoryHousehold}}
	assert.Equal(t, "[ ] Laundry", anytime.Title())
}

func TestItemDescription(t *testing.T) {
	item := Item{
		Routine: models.Routine{Name: "Coffee", Category: models.CategoryMorning},
		Window:  timewindow.Result{Status: timewindow.StatusTooLate, Message: "Window expired"},
	}
	assert.Contains(t, item.Description(), "Morning")
	assert.Contains(t, item.Description(), "Window expired")

	// Completed rows drop the window message
	item.Done = true
	assert.Equal(t, "Morning", item.Description())
}

func TestItemFilterValue(t *testing.T) {
	item := Item{Routine: models.Routine{Name: "Coffee"}}
	assert.Equal(t, "Coffee", item.FilterValue())
}
