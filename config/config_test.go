package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-api-key-1234"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", testKey)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://www.alphavantage.co/query", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "selene", cfg.Postgres.DBName)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "prod", cfg.Logging.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", testKey)

	path := writeConfigFile(t, `
api:
  base_url: https://example.test/query
  timeout_seconds: 5
postgres:
  host: db.internal
  database: markets
logging:
  level: dev
symbols:
  - AAPL
  - MSFT
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/query", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "markets", cfg.Postgres.DBName)
	assert.Equal(t, "dev", cfg.Logging.Level)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Symbols)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", testKey)
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("SYMBOLS", "TSLA,NVDA")

	path := writeConfigFile(t, `
postgres:
  host: file-host
symbols:
  - AAPL
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Postgres.Host)
	assert.Equal(t, []string{"TSLA", "NVDA"}, cfg.Symbols)
}

func TestLoadSecretsComeOnlyFromEnvironment(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", testKey)
	t.Setenv("DB_PASSWORD", "env-secret")

	// Keys placed in the file must be ignored.
	path := writeConfigFile(t, `
api:
  apikey: file-key-should-be-ignored
postgres:
  password: file-password-should-be-ignored
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, testKey, cfg.API.APIKey)
	assert.Equal(t, "env-secret", cfg.Postgres.Password)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", testKey)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrConfiguration)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", testKey)

	path := writeConfigFile(t, "api: [not: valid")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		yaml   string
		errSub string
	}{
		{
			name:   "missing api key",
			env:    map[string]string{"ALPHA_VANTAGE_API_KEY": ""},
			errSub: "ALPHA_VANTAGE_API_KEY is required",
		},
		{
			name:   "short api key",
			env:    map[string]string{"ALPHA_VANTAGE_API_KEY": "short"},
			errSub: "too short",
		},
		{
			name:   "bad base url",
			env:    map[string]string{"ALPHA_VANTAGE_API_KEY": testKey},
			yaml:   "api:\n  base_url: ftp://example.test\n",
			errSub: "http(s) URL",
		},
		{
			name:   "missing database name",
			env:    map[string]string{"ALPHA_VANTAGE_API_KEY": testKey},
			yaml:   "postgres:\n  database: \"\"\n",
			errSub: "database name is required",
		},
		{
			name:   "non-positive timeout",
			env:    map[string]string{"ALPHA_VANTAGE_API_KEY": testKey},
			yaml:   "api:\n  timeout_seconds: 0\n",
			errSub: "timeout_seconds must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.yaml != "" {
				path = writeConfigFile(t, tt.yaml)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}
