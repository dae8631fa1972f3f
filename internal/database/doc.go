// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package database provides the report store and credential store.
//
// The store runs on DuckDB (default, embedded) or PostgreSQL through the
// pgx stdlib driver. Both share one set of SQL statements: placeholders are
// numbered ($1, $2, ...) and only column type names differ per dialect.
//
// # Architecture
//
//   - database.go: connection setup, pool tuning, Close/Ping
//   - database_schema.go: reports and users tables, filter-column indexes
//   - crud_reports.go: InsertReports, ListReports, CountReports
//   - analytics_reports.go: aggregation views
//   - crud_filter_options.go: distinct values per filter field
//   - crud_users.go: CreateUser, GetUserByEmail
//
// # Usage Example
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	spec := filter.Build(map[string]string{"sector": "energy"})
//	reports, err := db.ListReports(ctx, spec, 1000)
//
// # Filtering
//
// ListReports renders the filter.Spec with the query subpackage. end_year
// matches exactly; every other field is a case-insensitive literal
// substring match. Aggregation views are computed over the whole
// collection and ignore filters.
//
// # Errors
//
//   - ErrNotFound: GetUserByEmail found no account
//   - ErrDuplicate: CreateUser hit the unique email constraint
//
// Other failures are wrapped with context and should be reported to
// clients as a generic server error.
//
// # Thread Safety
//
// A DB is safe for concurrent use. Every operation is a single query
// (InsertReports uses one transaction) against the shared *sql.DB pool.
//
// # See Also
//
//   - internal/database/query: SQL predicate rendering
//   - internal/filter: filter specification
package database
