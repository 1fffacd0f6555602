package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/timewindow"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (today, yesterday, or YYYY-MM-DD)." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	routines, err := ctx.Store.ListRoutines(true)
	if err != nil {
		return err
	}

	completions, err := ctx.Store.CompletionsForDate(date)
	if err != nil {
		return err
	}
	done := make(map[int64]bool, len(completions))
	for _, comp := range completions {
		done[comp.RoutineID] = true
	}

	now := time.Now()
	fmt.Printf("%s — %s\n\n", dateutil.DisplayName(date, now), date)

	var lastCategory models.Category
	for _, r := range routines {
		if r.Category != lastCategory {
			fmt.Printf("%s\n", constants.CategoryMeta[r.Category].Name)
			lastCategory = r.Category
		}

		line := fmt.Sprintf("  [%s] %s", checkmark(done[r.ID]), r.Name)
		if r.ScheduledTime != "" {
			line += fmt.Sprintf(" @ %s", dateutil.ClockDisplay(r.ScheduledTime))
		}
		if !done[r.ID] {
			result := timewindow.Evaluate(r.ScheduledTime, now, date, ctx.Config.WindowMinutes)
			if result.Message != "" {
				line += fmt.Sprintf(" (%s)", result.Message)
			}
		}
		fmt.Println(line)
	}

	pct, err := ctx.Store.CompletionPercentage(date)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d/%d complete (%d%%)\n", len(completions), len(routines), pct)

	if entry, found, err := ctx.Store.GetDailyEntry(date); err == nil && found {
		if entry.Mood != "" {
			fmt.Printf("Mood: %s\n", entry.Mood)
		}
		if entry.ExerciseDone {
			fmt.Println("Exercise: done")
		}
		if entry.Notes != "" {
			fmt.Printf("Notes: %s\n", entry.Notes)
		}
	}

	return nil
}
