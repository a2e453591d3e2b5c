// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Remote document store (PostgreSQL). The two credential values
	// below select the remote backing when jointly present.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// DisableRemote forces the in-memory/seed backing even when the
	// remote credentials are present.
	DisableRemote bool

	// Valkey (Redis-compatible cache + session store). Optional — the
	// app runs without it, losing the export cache and staged drafts.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible object storage for uploaded thumbnails. Optional.
	S3Endpoint     string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3PublicURL    string
	S3UsePathStyle bool
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. The remote-store credentials have no
// defaults: a bare start runs entirely on the seeded in-memory backing.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "uikitlab"),
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		DBName:     os.Getenv("POSTGRES_DB"),

		DisableRemote: isTruthy(os.Getenv("PLAYGROUND_DISABLE_REMOTE")),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3Region:       envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		S3Bucket:       envOrDefault("S3_BUCKET", "uikitlab-public"),
		S3PublicURL:    os.Getenv("S3_PUBLIC_URL"),
		S3UsePathStyle: isTruthy(os.Getenv("S3_USE_PATH_STYLE")),
	}

	if cfg.Env == "production" && cfg.UseRemote() && cfg.DBPassword == "changeme" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD must not be the placeholder in production")
	}

	return cfg, nil
}

// UseRemote reports whether the remote document-store backing is selected:
// the disable flag must be unset and both credential values present.
// Resolved once at startup and never switched at runtime.
func (c *Config) UseRemote() bool {
	return !c.DisableRemote && c.DBPassword != "" && c.DBName != ""
}

// UseValkey reports whether a Valkey host is configured.
func (c *Config) UseValkey() bool {
	return c.ValkeyHost != ""
}

// UseStorage reports whether the S3 thumbnail storage is configured.
func (c *Config) UseStorage() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// isTruthy interprets common boolean-ish env values.
func isTruthy(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	}
	return false
}
