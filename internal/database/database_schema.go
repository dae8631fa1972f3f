// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
database_schema.go - Database Schema Management

Tables:
  - reports: survey insight records, read-only through the API
  - users: login accounts

Text columns are NOT NULL DEFAULT '' because the empty string is the
"absent" value for every attribute. Scores default to 0. A sequence column
(seq) records insertion order so unfiltered listings are stable across
drivers.

Index Strategy:
One index per filterable column (end_year, topic, sector, region, pestle,
source, swot, country, city). Indexes are skipped when
DatabaseConfig.SkipIndexes is set, which keeps in-memory test databases fast.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/filter"
)

// dialect holds the type names that differ between drivers. Both drivers
// accept $n placeholders, strpos, lower and CREATE ... IF NOT EXISTS.
type dialect struct {
	name      string
	double    string
	timestamp string
}

var (
	duckDBDialect = dialect{
		name:      config.DriverDuckDB,
		double:    "DOUBLE",
		timestamp: "TIMESTAMP",
	}
	postgresDialect = dialect{
		name:      config.DriverPostgres,
		double:    "DOUBLE PRECISION",
		timestamp: "TIMESTAMPTZ",
	}
)

func dialectFor(driver string) dialect {
	if driver == config.DriverPostgres {
		return postgresDialect
	}
	return duckDBDialect
}

// createTables creates the core database tables
func (db *DB) createTables(ctx context.Context) error {
	for _, query := range db.tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// tableCreationQueries returns the table creation SQL statements
func (db *DB) tableCreationQueries() []string {
	d := db.dialect
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS reports_seq`,

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			seq BIGINT NOT NULL DEFAULT nextval('reports_seq'),
			end_year TEXT NOT NULL DEFAULT '',
			intensity %[1]s NOT NULL DEFAULT 0,
			sector TEXT NOT NULL DEFAULT '',
			topic TEXT NOT NULL DEFAULT '',
			insight TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			region TEXT NOT NULL DEFAULT '',
			start_year TEXT NOT NULL DEFAULT '',
			impact TEXT NOT NULL DEFAULT '',
			added %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP,
			published %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP,
			country TEXT NOT NULL DEFAULT '',
			relevance %[1]s NOT NULL DEFAULT 0,
			pestle TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			likelihood %[1]s NOT NULL DEFAULT 0,
			city TEXT NOT NULL DEFAULT '',
			swot TEXT NOT NULL DEFAULT '',
			created_at %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at %[2]s NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, d.double, d.timestamp),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'admin',
			created_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, d.timestamp),
	}
}

// createIndexes creates one index per filterable column.
func (db *DB) createIndexes(ctx context.Context) error {
	for _, query := range indexQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}

func indexQueries() []string {
	queries := make([]string, 0, len(filter.Fields)+1)
	for _, f := range filter.Fields {
		col := f.Column()
		queries = append(queries, fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_reports_%s ON reports(%s)", col, col))
	}
	queries = append(queries, "CREATE INDEX IF NOT EXISTS idx_reports_seq ON reports(seq)")
	return queries
}
