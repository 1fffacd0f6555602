package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/dateutil"
)

type StatsCmd struct {
	Days int `help:"Number of trailing days to show." default:"7"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", c.Days)
	}

	dates := dateutil.LastNDays(c.Days, time.Now())
	start, end := dates[0], dates[len(dates)-1]

	sparse, err := ctx.Store.CompletionStatsForRange(start, end)
	if err != nil {
		return err
	}
	series := dateutil.ZeroFill(start, end, sparse)

	routines, err := ctx.Store.ListRoutines(true)
	if err != nil {
		return err
	}
	total := len(routines)

	fmt.Printf("Completions, %s to %s\n\n", start, end)
	for _, dc := range series {
		bar := strings.Repeat("█", dc.Count)
		if total > 0 {
			fmt.Printf("%s  %2d/%d %s\n", dc.Date, dc.Count, total, bar)
		} else {
			fmt.Printf("%s  %2d %s\n", dc.Date, dc.Count, bar)
		}
	}

	return nil
}
