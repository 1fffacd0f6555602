package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/lifetrack/internal/export"
)

type ExportCmd struct {
	Output string `short:"o" help:"File to write. Defaults to life-tracker-backup-<date>.json in the current directory." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	svc := export.NewService(ctx.Store).WithExportDays(ctx.Config.ExportDays)
	doc, err := svc.Export()
	if err != nil {
		return err
	}

	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	path := c.Output
	if path == "" {
		path = export.FileName(time.Now())
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	fmt.Printf("Exported %d routines and %d days of completions to %s\n",
		doc.Statistics.TotalRoutines, doc.Statistics.TotalCompletedDays, path)
	return nil
}
