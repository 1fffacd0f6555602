// Package config loads the application configuration from config.yaml in
// the user config directory, with environment overrides under the
// LIFETRACK prefix. A missing config file is not an error; defaults
// apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/julianstephens/lifetrack/internal/constants"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	keyDBPath        = "db_path"
	keyWindowMinutes = "window_minutes"
	keyExportDays    = "export_days"
	keyTrayAppID     = "tray_app_id"
)

// Config is read-only after Load returns.
type Config struct {
	DBPath        string
	WindowMinutes int
	ExportDays    int
	TrayAppID     string
}

// Dir returns the lifetrack config directory, honoring XDG conventions.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(base, constants.AppName), nil
}

// Load reads config.yaml from configDir. Pass an empty configDir to use
// the default location.
func Load(configDir string) (Config, error) {
	if configDir == "" {
		dir, err := Dir()
		if err != nil {
			return Config{}, err
		}
		configDir = dir
	}

	v := viper.New()
	v.SetDefault(keyDBPath, filepath.Join(configDir, constants.AppName+".db"))
	v.SetDefault(keyWindowMinutes, constants.DefaultWindowMinutes)
	v.SetDefault(keyExportDays, constants.ExportDays)
	v.SetDefault(keyTrayAppID, constants.TrayAppIdentifier)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		}
		// Missing config.yaml is fine; write one with the defaults so the
		// user has something to edit. Best effort only.
		if mkErr := os.MkdirAll(configDir, 0700); mkErr == nil {
			_ = v.SafeWriteConfigAs(filepath.Join(configDir, configFileName+"."+configFileType))
		}
	}

	cfg := Config{
		DBPath:        v.GetString(keyDBPath),
		WindowMinutes: v.GetInt(keyWindowMinutes),
		ExportDays:    v.GetInt(keyExportDays),
		TrayAppID:     v.GetString(keyTrayAppID),
	}

	if cfg.WindowMinutes <= 0 {
		return Config{}, fmt.Errorf("window_minutes must be positive, got %d", cfg.WindowMinutes)
	}
	if cfg.ExportDays <= 0 {
		return Config{}, fmt.Errorf("export_days must be positive, got %d", cfg.ExportDays)
	}

	return cfg, nil
}
