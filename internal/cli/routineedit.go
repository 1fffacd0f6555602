package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
)

type RoutineEditCmd struct {
	Routine  string  `arg:"" help:"Routine id or name."`
	Name     *string `help:"New name."`
	Category *string `help:"New category."`
	At       *string `help:"New scheduled time (HH:MM), or empty string to make it anytime."`
	Order    *int    `help:"New sort position."`
	Enable   *bool   `help:"Enable or disable the routine."`
}

func (c *RoutineEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	routine, err := resolveRoutine(ctx, c.Routine)
	if err != nil {
		return err
	}

	update := models.RoutineUpdate{
		Name:          c.Name,
		ScheduledTime: c.At,
		OrderIndex:    c.Order,
		Enabled:       c.Enable,
	}
	if c.Category != nil {
		category, err := parseCategory(*c.Category)
		if err != nil {
			return err
		}
		update.Category = &category
	}

	if update.Empty() {
		return fmt.Errorf("nothing to update, pass at least one of --name/--category/--at/--order/--enable")
	}

	if err := ctx.Store.UpdateRoutine(routine.ID, update); err != nil {
		return err
	}

	fmt.Printf("Updated routine %q\n", routine.Name)
	return nil
}
