package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/timewindow"
)

type CheckCmd struct {
	Routine string `arg:"" help:"Routine id or name."`
	Date    string `help:"Date to check (today, yesterday, or YYYY-MM-DD)." default:"today"`
	Force   bool   `help:"Bypass the time window gate."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	routine, err := resolveRoutine(ctx, c.Routine)
	if err != nil {
		return err
	}

	if !c.Force {
		result := timewindow.Evaluate(routine.ScheduledTime, time.Now(), date, ctx.Config.WindowMinutes)
		if !result.CanCheck {
			return fmt.Errorf("cannot check %q: %s (use --force to override)", routine.Name, result.Message)
		}
	}

	completed, err := ctx.Store.ToggleCompletion(routine.ID, date)
	if err != nil {
		return err
	}

	if completed {
		fmt.Printf("✓ %s completed for %s\n", routine.Name, date)
	} else {
		fmt.Printf("✗ %s unchecked for %s\n", routine.Name, date)
	}

	pct, err := ctx.Store.CompletionPercentage(date)
	if err != nil {
		return err
	}
	fmt.Printf("Day progress: %d%%\n", pct)
	return nil
}
