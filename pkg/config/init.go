package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings holds all configuration values
type Settings struct {
	// Logging configuration
	Logging struct {
		LogFile string
		Persist bool
		Level   string
	}

	// Prompt configuration
	Prompt struct {
		DefaultModel string
	}

	// ConfigFile stores the path to the config file used
	ConfigFile string
}

// Global settings instance
var Global *Settings

// Init initializes the configuration system
func Init(cfgFile string) error {
	Global = &Settings{}

	// Set config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		Global.ConfigFile = cfgFile
	} else {
		viper.AddConfigPath("./.beekit")
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
		Global.ConfigFile = ".beekit/settings.yaml"
	}

	setDefaults()

	viper.SetEnvPrefix("BEEKIT")
	viper.AutomaticEnv()

	// BEEKIT_LOG_LEVEL maps to logging.level
	viper.BindEnv("logging.level", "BEEKIT_LOG_LEVEL")
	viper.BindEnv("prompt.default_model", "BEEKIT_DEFAULT_MODEL")

	// A missing file is fine; a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Load()
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	// SetConfigFile bypasses the search path, so a missing explicit file
	// surfaces as a plain fs error
	return os.IsNotExist(err)
}

// setDefaults sets all default configuration values
func setDefaults() {
	// Logging defaults
	viper.SetDefault("logging.log_file", "system.log")
	viper.SetDefault("logging.persist", false)
	viper.SetDefault("logging.level", "info")

	// Prompt defaults
	viper.SetDefault("prompt.default_model", "llama3.1")
}

// Load loads configuration from viper into the Settings struct
func Load() error {
	if Global == nil {
		Global = &Settings{}
	}

	// Logging settings
	Global.Logging.LogFile = viper.GetString("logging.log_file")
	Global.Logging.Persist = viper.GetBool("logging.persist")
	Global.Logging.Level = viper.GetString("logging.level")

	// Prompt settings
	Global.Prompt.DefaultModel = viper.GetString("prompt.default_model")

	return nil
}

// WriteDefaultConfig writes the current configuration to disk, preserving existing settings
func WriteDefaultConfig() error {
	if Global == nil || Global.ConfigFile == "" {
		return fmt.Errorf("config file path not set")
	}

	configDir := filepath.Dir(Global.ConfigFile)
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := viper.WriteConfigAs(Global.ConfigFile); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}

	return nil
}

// Get returns the global settings instance
func Get() *Settings {
	if Global == nil {
		panic("config not initialized - call Init() first")
	}
	return Global
}
