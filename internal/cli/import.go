package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/lifetrack/internal/export"
)

type ImportCmd struct {
	File string `arg:"" help:"Backup file to merge." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	doc, err := export.ParseDocument(data)
	if err != nil {
		return err
	}

	svc := export.NewService(ctx.Store)
	result, err := svc.Import(doc)
	if err != nil {
		return err
	}

	fmt.Printf("Import complete: %d routines imported, %d skipped; %d completions imported, %d skipped\n",
		result.RoutinesImported, result.RoutinesSkipped,
		result.CompletionsImported, result.CompletionsSkipped)
	return nil
}
