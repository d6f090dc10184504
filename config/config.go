package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".classfetch"))
		}

		// Check /etc
		v.AddConfigPath("/etc/classfetch/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Transparent Classroom defaults
	v.SetDefault("transparent_classroom.host", "https://www.transparentclassroom.com")

	// Output defaults
	v.SetDefault("output.show_details", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TC.Host == "" {
		return fmt.Errorf("transparent_classroom.host is required")
	}

	if cfg.TC.Email == "" {
		return fmt.Errorf("transparent_classroom.email is required")
	}

	if cfg.TC.Password == "" || cfg.TC.Password == "your-password-here" {
		return fmt.Errorf("transparent_classroom.password must be set")
	}

	if cfg.TC.Timezone != "" {
		if _, err := time.LoadLocation(cfg.TC.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", cfg.TC.Timezone, err)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// Location resolves the configured timezone, falling back to the system
// local zone when unset.
func (c *Config) Location() *time.Location {
	if c.TC.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TC.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
