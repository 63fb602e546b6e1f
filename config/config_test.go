package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/s0up4200/koios/koios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mainnet", cfg.API.Network)
	assert.Equal(t, koios.DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, koios.DefaultUserAgent, cfg.API.UserAgent)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)

	baseURL, err := cfg.API.ResolveBaseURL()
	require.NoError(t, err)
	assert.Equal(t, koios.MainnetURL, baseURL)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
api:
  network: preprod
  token: secret
  timeout: 5s
  headers:
    X-Client: test
filters:
  busy: "tx_count > 10"
metrics:
  enabled: true
  textfile: /tmp/koios.prom
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "preprod", cfg.API.Network)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "test", cfg.API.Headers["x-client"])
	assert.Equal(t, "tx_count > 10", cfg.Filters["busy"])
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/koios.prom", cfg.Metrics.Textfile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Color)

	baseURL, err := cfg.API.ResolveBaseURL()
	require.NoError(t, err)
	assert.Equal(t, koios.PreprodURL, baseURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "api:\n  network: preview\n")
	t.Setenv("KOIOS_API_BASE_URL", "http://localhost:8053/api/v1/")
	t.Setenv("KOIOS_API_TIMEOUT", "2s")
	t.Setenv("KOIOS_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)

	baseURL, err := cfg.API.ResolveBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8053/api/v1", baseURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API: APIConfig{
				Network: "mainnet",
				Timeout: time.Second,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown network",
			mutate:  func(c *Config) { c.API.Network = "testnet" },
			wantErr: "unknown api.network: testnet",
		},
		{
			name: "base url overrides network",
			mutate: func(c *Config) {
				c.API.Network = "testnet"
				c.API.BaseURL = "https://koios.example.com/api/v1"
			},
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.API.BaseURL = "koios.example.com" },
			wantErr: "api.base_url must be an absolute URL",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: "api.timeout must be positive",
		},
		{
			name:    "textfile without metrics",
			mutate:  func(c *Config) { c.Metrics.Textfile = "/tmp/koios.prom" },
			wantErr: "metrics.textfile requires metrics.enabled",
		},
		{
			name:    "empty filter",
			mutate:  func(c *Config) { c.Filters = FilterConfig{"blank": "  "} },
			wantErr: "filters.blank is empty",
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level: verbose",
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
