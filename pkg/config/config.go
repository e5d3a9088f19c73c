// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defaults, then an optional YAML file, then environment variables (highest priority)

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Backend   BackendConfig   `yaml:"backend"`
	Auth      AuthConfig      `yaml:"auth"`
	Query     QueryConfig     `yaml:"query"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	// PublicOrigin is the browsing origin used when a request carries no host
	PublicOrigin string `yaml:"public_origin"`

	// RequestTimeoutSeconds bounds each outbound remote call and snapshot fetch
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`

	// CORSOrigins lists allowed browser origins; empty allows any
	CORSOrigins []string `yaml:"cors_origins"`
}

// BackendConfig locates the remote procedure backend and the static snapshots
type BackendConfig struct {
	// URL is the remote procedure backend base URL
	URL string `yaml:"url"`

	// SnapshotBaseURL is where the static fallback files are hosted
	SnapshotBaseURL string `yaml:"snapshot_base_url"`

	NewsSnapshotPath      string `yaml:"news_snapshot_path"`
	OpenCallsSnapshotPath string `yaml:"open_calls_snapshot_path"`

	// SnapshotMaxAttempts retries snapshot fetches on 5xx and network errors.
	// Remote procedure calls are never retried.
	SnapshotMaxAttempts int `yaml:"snapshot_max_attempts"`
}

// AuthConfig holds the login portal settings
type AuthConfig struct {
	// PortalURL is the OAuth portal base URL; empty disables login redirects
	PortalURL string `yaml:"portal_url"`

	// AppID identifies this application to the portal
	AppID string `yaml:"app_id"`
}

// QueryConfig tunes the query-result cache
type QueryConfig struct {
	// StaleSeconds is how long a stored result is reused; 0 always refetches
	StaleSeconds int `yaml:"stale_seconds"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `yaml:"type"`

	Redis  RedisConfig  `yaml:"redis"`
	Memory MemoryConfig `yaml:"memory"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupSeconds is how often expired entries are purged
	CleanupSeconds int `yaml:"cleanup_seconds"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// RateLimitConfig holds per-client rate limiting settings
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`

	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP. Enable only
	// behind a proxy that overwrites those headers.
	TrustProxy bool `yaml:"trust_proxy"`
}

// LogConfig selects the logging backend
type LogConfig struct {
	Backend    string `yaml:"backend"`
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                  "8000",
			RequestTimeoutSeconds: 10,
		},
		Backend: BackendConfig{
			NewsSnapshotPath:      "/news.json",
			OpenCallsSnapshotPath: "/bandi.json",
			SnapshotMaxAttempts:   2,
		},
		Cache: CacheConfig{
			Type: "memory",
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
			Memory: MemoryConfig{
				CleanupSeconds: 600,
			},
			SQLite: SQLiteConfig{
				Path: "cache.db",
			},
		},
		RateLimit: RateLimitConfig{
			RPS:   10,
			Burst: 20,
		},
		Log: LogConfig{
			Backend:    "logrus",
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads .env files, the optional CONFIG_FILE YAML and the environment
func Load() (*Config, error) {
	if err := LoadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables only
func LoadFromEnv() (*Config, error) {
	cfg := Defaults()
	cfg.applyEnv()
	return cfg, nil
}

// LoadEnvFiles loads ENV_FILE if set, otherwise .env.local then .env.
// Variables already present in the environment are never overwritten; missing files are ignored.
func LoadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.PublicOrigin = getEnvOrDefault("PUBLIC_ORIGIN", c.Server.PublicOrigin)
	c.Server.RequestTimeoutSeconds = getEnvAsIntOrDefault("REQUEST_TIMEOUT_SECONDS", c.Server.RequestTimeoutSeconds)
	c.Server.CORSOrigins = getEnvAsListOrDefault("CORS_ORIGINS", c.Server.CORSOrigins)

	c.Backend.URL = getEnvOrDefault("BACKEND_URL", c.Backend.URL)
	c.Backend.SnapshotBaseURL = getEnvOrDefault("SNAPSHOT_BASE_URL", c.Backend.SnapshotBaseURL)
	c.Backend.NewsSnapshotPath = getEnvOrDefault("NEWS_SNAPSHOT_PATH", c.Backend.NewsSnapshotPath)
	c.Backend.OpenCallsSnapshotPath = getEnvOrDefault("OPEN_CALLS_SNAPSHOT_PATH", c.Backend.OpenCallsSnapshotPath)
	c.Backend.SnapshotMaxAttempts = getEnvAsIntOrDefault("SNAPSHOT_MAX_ATTEMPTS", c.Backend.SnapshotMaxAttempts)

	c.Auth.PortalURL = getEnvOrDefault("OAUTH_PORTAL_URL", c.Auth.PortalURL)
	c.Auth.AppID = getEnvOrDefault("APP_ID", c.Auth.AppID)

	c.Query.StaleSeconds = getEnvAsIntOrDefault("QUERY_STALE_SECONDS", c.Query.StaleSeconds)

	c.Cache.Type = getEnvOrDefault("CACHE_TYPE", c.Cache.Type)
	c.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Cache.Redis.Address)
	c.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Cache.Redis.Password)
	c.Cache.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", c.Cache.Redis.DB)
	c.Cache.Memory.CleanupSeconds = getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", c.Cache.Memory.CleanupSeconds)
	c.Cache.SQLite.Path = getEnvOrDefault("SQLITE_PATH", c.Cache.SQLite.Path)

	c.RateLimit.RPS = getEnvAsFloatOrDefault("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = getEnvAsIntOrDefault("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustProxy = getEnvAsBoolOrDefault("RATE_LIMIT_TRUST_PROXY", c.RateLimit.TrustProxy)

	c.Log.Backend = getEnvOrDefault("LOG_BACKEND", c.Log.Backend)
	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)
	c.Log.MaxSizeMB = getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", c.Log.MaxSizeMB)
	c.Log.MaxBackups = getEnvAsIntOrDefault("LOG_MAX_BACKUPS", c.Log.MaxBackups)
	c.Log.MaxAgeDays = getEnvAsIntOrDefault("LOG_MAX_AGE_DAYS", c.Log.MaxAgeDays)
}

// RequestTimeout returns the outbound call timeout
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}

// StaleTime returns the query cache freshness window
func (c *Config) StaleTime() time.Duration {
	return time.Duration(c.Query.StaleSeconds) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RequestTimeoutSeconds < 1 {
		return errors.New("request timeout must be at least 1 second")
	}

	if c.Query.StaleSeconds < 0 {
		return errors.New("query stale time cannot be negative")
	}

	if c.Backend.SnapshotMaxAttempts < 1 {
		return errors.New("snapshot max attempts must be at least 1")
	}

	for name, raw := range map[string]string{
		"backend URL":       c.Backend.URL,
		"snapshot base URL": c.Backend.SnapshotBaseURL,
		"OAuth portal URL":  c.Auth.PortalURL,
		"public origin":     c.Server.PublicOrigin,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1 {
		return errors.New("rate limit must allow at least one request")
	}

	return nil
}
