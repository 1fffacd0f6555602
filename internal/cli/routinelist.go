package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/dateutil"
)

type RoutineListCmd struct {
	All bool `help:"Include disabled routines."`
}

func (c *RoutineListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	routines, err := ctx.Store.ListRoutines(!c.All)
	if err != nil {
		return err
	}

	if len(routines) == 0 {
		fmt.Println("No routines. Add one with: lifetrack routine add <name>")
		return nil
	}

	fmt.Printf("%-4s %-22s %-10s %-9s %s\n", "ID", "NAME", "CATEGORY", "TIME", "STATE")
	for _, r := range routines {
		at := "anytime"
		if r.ScheduledTime != "" {
			at = dateutil.ClockDisplay(r.ScheduledTime)
		}
		state := "enabled"
		if !r.Enabled {
			state = "disabled"
		}
		fmt.Printf("%-4d %-22s %-10s %-9s %s\n", r.ID, r.Name, constants.CategoryMeta[r.Category].Name, at, state)
	}
	return nil
}
