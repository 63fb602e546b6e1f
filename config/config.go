package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/s0up4200/koios/koios"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. KOIOS_API_TOKEN.
const EnvPrefix = "KOIOS"

// Load loads the configuration from file and environment. A missing file is
// only an error when configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
			v.AddConfigPath(filepath.Join(home, ".koios"))
		}

		// Check /etc
		v.AddConfigPath("/etc/koios/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath == "" && errors.As(err, &notFound):
			// defaults and environment only
		case configPath != "" && os.IsNotExist(err):
			return nil, fmt.Errorf("config file not found: %w", err)
		default:
			return nil, fmt.Errorf("error reading config: %w", err)
		}
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
	// API defaults
	v.SetDefault("api.network", "mainnet")
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.token", "")
	v.SetDefault("api.timeout", koios.DefaultTimeout)
	v.SetDefault("api.user_agent", koios.DefaultUserAgent)

	// Metrics defaults
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// ResolveBaseURL returns api.base_url when set, otherwise the URL of api.network.
func (c *APIConfig) ResolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/"), nil
	}
	u, ok := koios.NetworkURL(c.Network)
	if !ok {
		return "", fmt.Errorf("unknown api.network: %s (must be one of %s)", c.Network, strings.Join(koios.Networks(), ", "))
	}
	return u, nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL != "" {
		u, err := url.Parse(cfg.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api.base_url must be an absolute URL: %s", cfg.API.BaseURL)
		}
	} else if _, err := cfg.API.ResolveBaseURL(); err != nil {
		return err
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", cfg.API.Timeout)
	}

	if cfg.Metrics.Textfile != "" && !cfg.Metrics.Enabled {
		return fmt.Errorf("metrics.textfile requires metrics.enabled")
	}

	for name, expr := range cfg.Filters {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filters.%s is empty", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
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
