package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/lifetrack/internal/config"
	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config config.Config
}

// resolveDate turns a CLI date argument ("today", "yesterday" or
// YYYY-MM-DD) into a database date.
func resolveDate(arg string) (string, error) {
	switch arg {
	case "", "today":
		return dateutil.Today(), nil
	case "yesterday":
		return dateutil.Format(time.Now().AddDate(0, 0, -1)), nil
	}
	if _, err := dateutil.Parse(arg); err != nil {
		return "", err
	}
	return arg, nil
}

// resolveRoutine looks a routine up by numeric id first, then by exact
// name, so commands accept either.
func resolveRoutine(ctx *Context, arg string) (models.Routine, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		if r, err := ctx.Store.GetRoutine(id); err == nil {
			return r, nil
		}
	}
	return ctx.Store.FindRoutineByName(arg)
}

func parseCategory(s string) (models.Category, error) {
	c := models.Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q (valid: morning|work|exercise|household|evening)", s)
	}
	return c, nil
}

func checkmark(done bool) string {
	if done {
		return "✓"
	}
	return " "
}
