package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/constants"
)

type WeightCmd struct {
	Weight float64 `arg:"" optional:"" help:"Weight to record. Omit to show the entry for the date."`
	Unit   string  `help:"Unit of measurement." default:"kg"`
	Date   string  `help:"Date to record against (today, yesterday, or YYYY-MM-DD)." default:"today"`
}

func (c *WeightCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if c.Weight == 0 {
		log, found, err := ctx.Store.GetWeightLog(date)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("No weight logged for %s\n", date)
			return nil
		}
		fmt.Printf("%s: %.1f %s\n", log.Date, log.Weight, log.Unit)
		return nil
	}

	if c.Weight < 0 {
		return fmt.Errorf("weight must be positive, got %.1f", c.Weight)
	}
	unit := c.Unit
	if unit == "" {
		unit = constants.DefaultWeightUnit
	}

	if err := ctx.Store.UpsertWeightLog(date, c.Weight, unit); err != nil {
		return err
	}

	fmt.Printf("Logged %.1f %s for %s\n", c.Weight, unit, date)
	return nil
}
