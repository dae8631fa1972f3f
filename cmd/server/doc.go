// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Insightboard serves the survey insight analytics API.

Startup order:
 1. Configuration: defaults, YAML file (--config or CONFIG_PATH), environment (koanf v2)
 2. Logging: zerolog, level and format from the logging section
 3. Report store: DuckDB file or PostgreSQL, schema created if missing
 4. Admin bootstrap: ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_USERNAME, created once
 5. HTTP server and store monitor under a suture supervisor tree

SIGINT and SIGTERM cancel the tree; in-flight requests drain for up to
server.shutdown_timeout before the store is closed.

Usage:

	export JWT_SECRET=$(openssl rand -hex 32)
	export ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=change-me-now
	./insightboard --config /etc/insightboard/config.yaml
*/
package main
