package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
)

type RoutineAddCmd struct {
	Name     string `arg:"" help:"Routine name."`
	Category string `help:"Category (morning|work|exercise|household|evening)." default:"morning"`
	At       string `help:"Scheduled time (HH:MM, 24-hour). Omit for an anytime routine."`
	Order    int    `help:"Sort position within the day." default:"0"`
}

func (c *RoutineAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	category, err := parseCategory(c.Category)
	if err != nil {
		return err
	}

	id, err := ctx.Store.AddRoutine(models.Routine{
		Name:          c.Name,
		Category:      category,
		ScheduledTime: c.At,
		Enabled:       true,
		OrderIndex:    c.Order,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added routine %q (id %d)\n", c.Name, id)
	return nil
}
