package cli

import "fmt"

type RoutineDeleteCmd struct {
	Routine string `arg:"" help:"Routine id or name."`
}

func (c *RoutineDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	routine, err := resolveRoutine(ctx, c.Routine)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteRoutine(routine.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted routine %q and its completion history\n", routine.Name)
	return nil
}
