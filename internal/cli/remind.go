package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/notifier"
	"github.com/julianstephens/lifetrack/internal/timewindow"
)

type RemindCmd struct {
	DryRun bool `help:"List due routines without sending notifications."`
}

// Run scans today's unchecked routines and notifies for every one whose
// window is currently open. Intended to be invoked from a cron entry or
// systemd timer every few minutes.
func (c *RemindCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()
	today := dateutil.Today()

	routines, err := ctx.Store.ListRoutines(true)
	if err != nil {
		return err
	}

	completions, err := ctx.Store.CompletionsForDate(today)
	if err != nil {
		return err
	}
	done := make(map[int64]bool, len(completions))
	for _, comp := range completions {
		done[comp.RoutineID] = true
	}

	n := notifier.New(ctx.Config.TrayAppID)
	due := 0
	for _, r := range routines {
		if done[r.ID] || r.ScheduledTime == "" {
			continue
		}
		result := timewindow.Evaluate(r.ScheduledTime, now, today, ctx.Config.WindowMinutes)
		if result.Status != timewindow.StatusWithinWindow {
			continue
		}
		due++

		text := fmt.Sprintf("%s is due (%s)", r.Name, result.Message)
		if c.DryRun {
			fmt.Println(text)
			continue
		}
		if err := n.Notify(text); err != nil {
			// One failed delivery should not stop the scan
			fmt.Printf("Warning: could not notify for %q: %v\n", r.Name, err)
		}
	}

	if due == 0 {
		fmt.Println("Nothing due right now")
	}
	return nil
}
