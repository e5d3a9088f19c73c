package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name          string
		envVars       map[string]string
		expectedPort  string
		expectedStale int
	}{
		{
			name:          "defaults when nothing set",
			envVars:       map[string]string{},
			expectedPort:  "8000",
			expectedStale: 0,
		},
		{
			name:          "uses PORT env var when set",
			envVars:       map[string]string{"PORT": "3000"},
			expectedPort:  "3000",
			expectedStale: 0,
		},
		{
			name:          "uses QUERY_STALE_SECONDS env var when set",
			envVars:       map[string]string{"QUERY_STALE_SECONDS": "30"},
			expectedPort:  "8000",
			expectedStale: 30,
		},
		{
			name:          "ignores non-numeric integers",
			envVars:       map[string]string{"QUERY_STALE_SECONDS": "soon"},
			expectedPort:  "8000",
			expectedStale: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedPort, cfg.Server.Port)
			assert.Equal(t, tt.expectedStale, cfg.Query.StaleSeconds)
		})
	}
}

func TestLoadFromEnv_AllKeys(t *testing.T) {
	os.Clearenv()
	env := map[string]string{
		"PUBLIC_ORIGIN":            "https://portal.example.org",
		"BACKEND_URL":              "https://api.example.org",
		"SNAPSHOT_BASE_URL":        "https://cdn.example.org/data",
		"NEWS_SNAPSHOT_PATH":       "/n.json",
		"OPEN_CALLS_SNAPSHOT_PATH": "/b.json",
		"OAUTH_PORTAL_URL":         "https://auth.example.org",
		"APP_ID":                   "app-1",
		"REQUEST_TIMEOUT_SECONDS":  "3",
		"CACHE_TYPE":               "sqlite",
		"SQLITE_PATH":              "/tmp/q.db",
		"RATE_LIMIT_RPS":           "2.5",
		"RATE_LIMIT_BURST":         "5",
		"RATE_LIMIT_TRUST_PROXY":   "true",
		"SNAPSHOT_MAX_ATTEMPTS":    "3",
		"LOG_BACKEND":              "zap",
		"LOG_LEVEL":                "debug",
		"CORS_ORIGINS":             "https://a.org, https://b.org,",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://portal.example.org", cfg.Server.PublicOrigin)
	assert.Equal(t, "https://api.example.org", cfg.Backend.URL)
	assert.Equal(t, "https://cdn.example.org/data", cfg.Backend.SnapshotBaseURL)
	assert.Equal(t, "/n.json", cfg.Backend.NewsSnapshotPath)
	assert.Equal(t, "/b.json", cfg.Backend.OpenCallsSnapshotPath)
	assert.Equal(t, "https://auth.example.org", cfg.Auth.PortalURL)
	assert.Equal(t, "app-1", cfg.Auth.AppID)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "sqlite", cfg.Cache.Type)
	assert.Equal(t, "/tmp/q.db", cfg.Cache.SQLite.Path)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.TrustProxy)
	assert.Equal(t, 3, cfg.Backend.SnapshotMaxAttempts)
	assert.Equal(t, "zap", cfg.Log.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.org", "https://b.org"}, cfg.Server.CORSOrigins)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	os.Clearenv()
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
backend:
  url: https://yaml.example.org
auth:
  app_id: from-yaml
query:
  stale_seconds: 15
`), 0o600))

	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_ID", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "https://yaml.example.org", cfg.Backend.URL)
	assert.Equal(t, "from-env", cfg.Auth.AppID, "environment overrides YAML")
	assert.Equal(t, 15*time.Second, cfg.StaleTime())
	assert.Equal(t, "/news.json", cfg.Backend.NewsSnapshotPath, "defaults survive a partial YAML file")
	assert.Equal(t, 2, cfg.Backend.SnapshotMaxAttempts)
	assert.False(t, cfg.RateLimit.TrustProxy)
}

func TestLoad_EnvFile(t *testing.T) {
	os.Clearenv()
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("BACKEND_URL=https://dotenv.example.org\nPORT=7000\n"), 0o600))

	t.Setenv("ENV_FILE", envPath)
	t.Setenv("PORT", "7100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://dotenv.example.org", cfg.Backend.URL)
	assert.Equal(t, "7100", cfg.Server.Port, "existing environment wins over the env file")
	os.Unsetenv("BACKEND_URL")
}

func TestLoad_BadYAML(t *testing.T) {
	os.Clearenv()
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"zero timeout", func(c *Config) { c.Server.RequestTimeoutSeconds = 0 }, true},
		{"negative stale time", func(c *Config) { c.Query.StaleSeconds = -1 }, true},
		{"relative backend URL", func(c *Config) { c.Backend.URL = "api.example.org" }, true},
		{"relative portal URL", func(c *Config) { c.Auth.PortalURL = "/auth" }, true},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "memcached" }, true},
		{"redis without address", func(c *Config) { c.Cache.Type = "redis"; c.Cache.Redis.Address = "" }, true},
		{"sqlite without path", func(c *Config) { c.Cache.Type = "sqlite"; c.Cache.SQLite.Path = "" }, true},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"zero snapshot attempts", func(c *Config) { c.Backend.SnapshotMaxAttempts = 0 }, true},
		{"portal configured", func(c *Config) { c.Auth.PortalURL = "https://auth.example.org" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
