package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	return &Config{
		TC: TCConfig{
			Host:     "https://www.transparentclassroom.com",
			Email:    "teacher@example.com",
			Password: "hunter2",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid configuration",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing email",
			mutate:  func(c *Config) { c.TC.Email = "" },
			wantErr: true,
		},
		{
			name:    "missing password",
			mutate:  func(c *Config) { c.TC.Password = "" },
			wantErr: true,
		},
		{
			name:    "placeholder password",
			mutate:  func(c *Config) { c.TC.Password = "your-password-here" },
			wantErr: true,
		},
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.TC.Host = "" },
			wantErr: true,
		},
		{
			name:    "valid timezone",
			mutate:  func(c *Config) { c.TC.Timezone = "America/New_York" },
			wantErr: false,
		},
		{
			name:    "invalid timezone",
			mutate:  func(c *Config) { c.TC.Timezone = "Mars/Olympus_Mons" },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `transparent_classroom:
  email: teacher@example.com
  password: hunter2
  school_id: 42
filter:
  current: "withdrawn == false"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TC.Host != "https://www.transparentclassroom.com" {
		t.Errorf("host default not applied, got %q", cfg.TC.Host)
	}
	if cfg.TC.SchoolID != 42 {
		t.Errorf("school_id = %d, want 42", cfg.TC.SchoolID)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level default not applied, got %q", cfg.Logging.Level)
	}
	if got := cfg.Filter["current"]; got != "withdrawn == false" {
		t.Errorf("filter preset = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
