package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/storage"
)

type DoctorCmd struct{}

// Run checks the health of the local database: reachability, schema
// version, and referential integrity of the completion history.
func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Printf("Database: %s\n", ctx.Store.GetConfigPath())

	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	fmt.Println("  ✓ database reachable")

	sqlStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		fmt.Println("  - schema checks skipped (not a sqlite store)")
		return nil
	}
	db := sqlStore.GetDB()

	version, err := storage.SchemaVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	fmt.Printf("  ✓ schema version %d\n", version)

	var orphans int
	err = db.QueryRow(`SELECT COUNT(*) FROM routine_completions rc
		LEFT JOIN routine_items ri ON ri.id = rc.routine_id
		WHERE ri.id IS NULL`).Scan(&orphans)
	if err != nil {
		return fmt.Errorf("failed to check completion integrity: %w", err)
	}
	if orphans > 0 {
		fmt.Printf("  ✗ %d completions reference deleted routines\n", orphans)
	} else {
		fmt.Println("  ✓ no orphaned completions")
	}

	var future int
	err = db.QueryRow(`SELECT COUNT(*) FROM routine_completions WHERE date > date('now', 'localtime')`).Scan(&future)
	if err != nil {
		return fmt.Errorf("failed to check completion dates: %w", err)
	}
	if future > 0 {
		fmt.Printf("  ✗ %d completions dated in the future (clock skew?)\n", future)
	} else {
		fmt.Println("  ✓ no future-dated completions")
	}

	return nil
}
