package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives the built lifetrack binary through a full
// day: init, check a routine, log mood and weight, export, and re-import
// into a fresh database. Requires a pre-built binary; set
// LIFETRACK_BIN_DIR or build into ../../bin first.
func TestEndToEndWorkflow(t *testing.T) {
	cliPath := findBinary(t)

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "lifetrack.db")
	configDir := filepath.Join(tempDir, "config")

	run := func(wantOK bool, args ...string) string {
		t.Helper()
		args = append([]string{"--db", dbPath, "--config-dir", configDir}, args...)
		cmd := exec.Command(cliPath, args...)
		cmd.Env = append(os.Environ(), "HOME="+tempDir)
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out
		err := cmd.Run()
		if wantOK && err != nil {
			t.Fatalf("lifetrack %s failed: %v\n%s", strings.Join(args, " "), err, out.String())
		}
		if !wantOK && err == nil {
			t.Fatalf("lifetrack %s unexpectedly succeeded:\n%s", strings.Join(args, " "), out.String())
		}
		return out.String()
	}

	// Commands refuse to run before init
	run(false, "routine", "list")

	out := run(true, "init")
	if !strings.Contains(out, "Initialized") {
		t.Fatalf("unexpected init output: %s", out)
	}

	// The default catalogue is seeded
	out = run(true, "routine", "list")
	for _, name := range []string{"Coffee", "Lunch", "Bedtime"} {
		if !strings.Contains(out, name) {
			t.Fatalf("routine list missing %q:\n%s", name, out)
		}
	}

	// Add and check a custom routine; --force skips the window gate so
	// the test is independent of wall-clock time
	run(true, "routine", "add", "Stretching", "--category", "exercise", "--at", "06:45")
	out = run(true, "check", "Stretching", "--force")
	if !strings.Contains(out, "completed") {
		t.Fatalf("expected completion confirmation:\n%s", out)
	}

	// Toggling again unchecks
	out = run(true, "check", "Stretching", "--force")
	if !strings.Contains(out, "unchecked") {
		t.Fatalf("expected uncheck confirmation:\n%s", out)
	}
	run(true, "check", "Stretching", "--force")

	// Day-level logs
	run(true, "log", "--mood", "good", "--notes", "e2e run")
	run(true, "exercise")
	run(true, "weight", "72.5")
	run(true, "user", "name", "Julian")

	out = run(true, "day")
	if !strings.Contains(out, "Stretching") {
		t.Fatalf("day view missing checked routine:\n%s", out)
	}

	// Export, then verify the document parses and carries our data
	backupPath := filepath.Join(tempDir, "backup.json")
	run(true, "export", "-o", backupPath)

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	var doc struct {
		ExportVersion string `json:"exportVersion"`
		User          struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("backup is not valid JSON: %v", err)
	}
	if doc.ExportVersion != "1.0" {
		t.Fatalf("unexpected export version %q", doc.ExportVersion)
	}
	if doc.User.Name != "Julian" {
		t.Fatalf("unexpected user name %q", doc.User.Name)
	}

	// Import into a fresh database and verify the merge
	dbPath = filepath.Join(tempDir, "restored.db")
	run(true, "init")
	out = run(true, "import", backupPath)
	if !strings.Contains(out, "Import complete") {
		t.Fatalf("unexpected import output:\n%s", out)
	}

	out = run(true, "routine", "list")
	if !strings.Contains(out, "Stretching") {
		t.Fatalf("imported routine missing:\n%s", out)
	}

	out = run(true, "doctor")
	if !strings.Contains(out, "database reachable") {
		t.Fatalf("unexpected doctor output:\n%s", out)
	}

	run(true, "stats", "--days", "3")
}

func findBinary(t *testing.T) string {
	t.Helper()

	binDir := os.Getenv("LIFETRACK_BIN_DIR")
	if binDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get cwd: %v", err)
		}
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}

	cliPath, err := filepath.Abs(filepath.Join(binDir, "lifetrack"))
	if err != nil {
		t.Fatalf("failed to resolve bin dir: %v", err)
	}
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("lifetrack binary not found at %s; build it first", cliPath)
	}
	return cliPath
}
