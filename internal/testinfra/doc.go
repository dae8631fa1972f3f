// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package testinfra provides container fixtures for integration tests.
//
// It uses testcontainers-go to run a real PostgreSQL server so the
// postgres store driver can be exercised end to end:
//
//	func TestStore(t *testing.T) {
//	    pg := testinfra.StartPostgres(t)
//	    db, err := database.New(&config.DatabaseConfig{
//	        Driver: config.DriverPostgres,
//	        DSN:    pg.DSN,
//	    })
//	    // ...
//	}
//
// Files carry the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// Tests are skipped when Docker is unavailable.
package testinfra
