package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Filters FilterConfig  `mapstructure:"filters"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Koios connection details
type APIConfig struct {
	// Network selects a public instance: mainnet, preprod, preview or guild.
	Network string `mapstructure:"network"`
	// BaseURL overrides Network when set.
	BaseURL   string            `mapstructure:"base_url"`
	Token     string            `mapstructure:"token"`
	Timeout   time.Duration     `mapstructure:"timeout"`
	UserAgent string            `mapstructure:"user_agent"`
	Headers   map[string]string `mapstructure:"headers"`
}

// FilterConfig maps names to saved row filter expressions
type FilterConfig map[string]string

// MetricsConfig controls request metrics
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Textfile receives the collected metrics when a command finishes.
	Textfile string `mapstructure:"textfile"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
