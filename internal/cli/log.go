package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
)

type LogCmd struct {
	Date  string  `help:"Date to log against (today, yesterday, or YYYY-MM-DD)." default:"today"`
	Mood  *string `help:"Mood for the day."`
	Notes *string `help:"Free-form notes for the day."`
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if c.Mood == nil && c.Notes == nil {
		entry, found, err := ctx.Store.GetDailyEntry(date)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("No entry for %s\n", date)
			return nil
		}
		fmt.Printf("Entry for %s\n", date)
		if entry.Mood != "" {
			fmt.Printf("  Mood: %s\n", entry.Mood)
		}
		fmt.Printf("  Exercise: %s\n", checkmark(entry.ExerciseDone))
		if entry.Notes != "" {
			fmt.Printf("  Notes: %s\n", entry.Notes)
		}
		return nil
	}

	update := models.DailyEntryUpdate{Mood: c.Mood, Notes: c.Notes}
	if err := ctx.Store.UpsertDailyEntry(date, update); err != nil {
		return err
	}

	fmt.Printf("Logged entry for %s\n", date)
	return nil
}
