// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/insightboard/internal/metrics"
)

// scanFunc scans one row into T.
type scanFunc[T any] func(rows *sql.Rows) (T, error)

// queryAndScan runs query and scans every row. The result is never nil so
// empty results serialize as [].
func queryAndScan[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	results := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// timedQuery runs queryAndScan and records the query metrics under
// operation.
func timedQuery[T any](ctx context.Context, db *DB, operation, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	start := time.Now()
	results, err := queryAndScan(ctx, db.conn, query, args, scan)
	metrics.RecordDBQuery(operation, "reports", time.Since(start), err)
	return results, err
}
