// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Security SecurityConfig `koanf:"security"`
	API      APIConfig      `koanf:"api"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" (default), "staging", "production"
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Database drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// DatabaseConfig selects and tunes the report store.
type DatabaseConfig struct {
	Driver       string `koanf:"driver"`         // duckdb (default) or postgres
	Path         string `koanf:"path"`           // DuckDB file path; ":memory:" for an ephemeral store
	DSN          string `koanf:"dsn"`            // PostgreSQL connection string
	MaxMemory    string `koanf:"max_memory"`     // DuckDB memory_limit
	Threads      int    `koanf:"threads"`        // DuckDB threads (0 = DuckDB default)
	MaxOpenConns int    `koanf:"max_open_conns"` // 0 = driver default
	SkipIndexes  bool   `koanf:"skip_indexes"`   // Skip filter-column indexes (fast test setup)
}

// SecurityConfig holds authentication and request-protection settings.
type SecurityConfig struct {
	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`
	BcryptCost     int           `koanf:"bcrypt_cost"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// Applied to POST /api/auth/login in addition to the global limit.
	LoginRateLimitReqs   int           `koanf:"login_rate_limit_reqs"`
	LoginRateLimitWindow time.Duration `koanf:"login_rate_limit_window"`

	CORSOrigins []string `koanf:"cors_origins"`

	// TrustedProxies lists proxy addresses (IPs or CIDRs) whose
	// X-Forwarded-For / X-Real-IP headers are honored before rate
	// limiting. Empty means forwarded headers are ignored.
	TrustedProxies []string `koanf:"trusted_proxies"`

	// Bootstrap admin account, created at startup when the email is not
	// yet registered. All three must be set together.
	AdminUsername string `koanf:"admin_username"`
	AdminEmail    string `koanf:"admin_email"`
	AdminPassword string `koanf:"admin_password"`
}

// HasAdminBootstrap reports whether an admin account is configured.
func (s SecurityConfig) HasAdminBootstrap() bool {
	return s.AdminEmail != "" || s.AdminPassword != "" || s.AdminUsername != ""
}

// APIConfig holds response sizing for GET /api/data.
type APIConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// Load reads configuration in order of increasing precedence:
//
//  1. Built-in defaults
//  2. Config file (CONFIG_PATH, or config.yaml in the working directory)
//  3. Environment variables
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
