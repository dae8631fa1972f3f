// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package config loads and validates application configuration.

# Configuration Sources

Values are layered with koanf, later sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. YAML file: CONFIG_PATH, or config.yaml / /etc/insightboard/config.yaml
 3. Environment variables (see envMappings)

# Sections

  - ServerConfig: listen address, timeouts, environment
  - DatabaseConfig: duckdb (default) or postgres store
  - SecurityConfig: JWT secret and lifetime, bcrypt cost, rate limits,
    CORS origins, proxy trust, admin bootstrap account
  - APIConfig: default and maximum record limit for GET /api/data
  - LoggingConfig: level, format, caller

# Environment Variables

Server:
  - PORT / HTTP_PORT: listen port (default: 5000)
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - ENVIRONMENT: development, staging or production

Database:
  - DATABASE_DRIVER: duckdb or postgres (default: duckdb)
  - DUCKDB_PATH: DuckDB file (default: /data/insightboard.duckdb)
  - DATABASE_URL: PostgreSQL DSN (required for postgres)

Security:
  - JWT_SECRET: HMAC signing secret, at least 32 characters (required)
  - SESSION_TIMEOUT / JWT_EXPIRES_IN: token lifetime (default: 24h)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: per-IP limit (default: 100 per 15m)
  - LOGIN_RATE_LIMIT_REQUESTS / LOGIN_RATE_LIMIT_WINDOW: login limit (default: 10 per 5m)
  - CORS_ORIGINS: comma-separated allowed origins
  - TRUSTED_PROXIES: comma-separated proxy IPs or CIDRs whose forwarded
    headers identify the client (default: none)
  - ADMIN_USERNAME / ADMIN_EMAIL / ADMIN_PASSWORD: bootstrap admin account

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
