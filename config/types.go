package config

// Config represents the complete configuration structure
type Config struct {
	TC      TCConfig      `mapstructure:"transparent_classroom"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TCConfig holds Transparent Classroom connection details and the acting
// identity
type TCConfig struct {
	Host         string `mapstructure:"host"`
	Email        string `mapstructure:"email"`
	Password     string `mapstructure:"password"`
	SchoolID     int64  `mapstructure:"school_id"`
	MasqueradeID int64  `mapstructure:"masquerade_id"`
	Timezone     string `mapstructure:"timezone"`
	Strict       bool   `mapstructure:"strict"`
}

// FilterConfig contains named filter preset expressions
type FilterConfig map[string]string

// OutputConfig contains display settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
