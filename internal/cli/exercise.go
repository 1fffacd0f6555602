package cli

import "fmt"

type ExerciseCmd struct {
	Date string `arg:"" optional:"" help:"Date to toggle (today, yesterday, or YYYY-MM-DD)." default:"today"`
}

func (c *ExerciseCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	done, err := ctx.Store.ToggleExercise(date)
	if err != nil {
		return err
	}

	if done {
		fmt.Printf("✓ Exercise marked done for %s\n", date)
	} else {
		fmt.Printf("✗ Exercise unmarked for %s\n", date)
	}
	return nil
}
