package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// BaseSettingsDir returns the directory holding the settings file. The
// config.path key takes precedence (used by tests).
func BaseSettingsDir() string {
	if configPath := viper.GetString("config.path"); configPath != "" {
		return configPath
	}

	if used := viper.ConfigFileUsed(); used != "" {
		return filepath.Dir(used)
	}
	if Global != nil && Global.ConfigFile != "" {
		return filepath.Dir(Global.ConfigFile)
	}
	return "."
}

// BuildSettingsPath resolves target relative to the settings directory.
func BuildSettingsPath(target string) string {
	return filepath.Join(BaseSettingsDir(), target)
}
