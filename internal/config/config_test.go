package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifetrack/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "lifetrack.db"), cfg.DBPath)
	assert.Equal(t, constants.DefaultWindowMinutes, cfg.WindowMinutes)
	assert.Equal(t, constants.ExportDays, cfg.ExportDays)
	assert.Equal(t, constants.TrayAppIdentifier, cfg.TrayAppID)

	// First run writes a default config.yaml for the user to edit
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "db_path: /tmp/custom.db\nwindow_minutes: 45\nexport_days: 30\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 45, cfg.WindowMinutes)
	assert.Equal(t, 30, cfg.ExportDays)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LIFETRACK_WINDOW_MINUTES", "15")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.WindowMinutes)
}

func TestLoadRejectsNonPositiveValues(t *testing.T) {
	dir := t.TempDir()
	yaml := "window_minutes: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))

	_, err := Load(dir)
	assert.Error(t, err)

	yaml = "export_days: -1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0600))
	_, err = Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{{not yaml"), 0600))

	_, err := Load(dir)
	assert.Error(t, err)
}
