// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/insightboard/internal/database/query"
	"github.com/tomtom215/insightboard/internal/filter"
	"github.com/tomtom215/insightboard/internal/metrics"
	"github.com/tomtom215/insightboard/internal/models"
)

const reportColumns = `id, end_year, intensity, sector, topic, insight, url, region,
	start_year, impact, added, published, country, relevance, pestle, source,
	title, likelihood, city, swot, created_at, updated_at`

const insertReportSQL = `INSERT INTO reports (` + reportColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

// InsertReports stores reports in a single transaction. Missing IDs are
// generated and zero timestamps default to the current time. The input
// slice is updated in place with the stored values.
func (db *DB) InsertReports(ctx context.Context, reports []models.Report) (err error) {
	if len(reports) == 0 {
		return nil
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "reports", time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertReportSQL)
	if err != nil {
		rollbackQuietly(tx)
		return fmt.Errorf("failed to prepare report insert: %w", err)
	}
	defer closeQuietly(stmt)

	now := time.Now().UTC()
	for i := range reports {
		r := &reports[i]
		applyReportDefaults(r, now)

		if _, err = stmt.ExecContext(ctx,
			r.ID, r.EndYear, r.Intensity, r.Sector, r.Topic, r.Insight, r.URL, r.Region,
			r.StartYear, r.Impact, r.Added, r.Published, r.Country, r.Relevance, r.PESTLE, r.Source,
			r.Title, r.Likelihood, r.City, r.SWOT, r.CreatedAt, r.UpdatedAt,
		); err != nil {
			rollbackQuietly(tx)
			return fmt.Errorf("failed to insert report %s: %w", r.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reports: %w", err)
	}
	return nil
}

func applyReportDefaults(r *models.Report, now time.Time) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Added.IsZero() {
		r.Added = now
	}
	if r.Published.IsZero() {
		r.Published = now
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
}

// ListReports returns at most limit reports matching spec, in insertion
// order. A non-positive limit returns an empty result.
func (db *DB) ListReports(ctx context.Context, spec filter.Spec, limit int) ([]models.Report, error) {
	if limit <= 0 {
		return []models.Report{}, nil
	}

	wb := query.FromSpec(spec)
	limitParam := wb.Arg(limit)
	whereClause, args := wb.Build()

	sqlQuery := fmt.Sprintf(`SELECT %s FROM reports WHERE %s ORDER BY seq LIMIT %s`,
		reportColumns, whereClause, limitParam)

	reports, err := timedQuery(ctx, db, "list", sqlQuery, args, scanReport)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	return reports, nil
}

// CountReports returns the number of stored reports.
func (db *DB) CountReports(ctx context.Context) (count int64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("count", "reports", time.Since(start), err) }()

	if err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

func scanReport(rows *sql.Rows) (models.Report, error) {
	var r models.Report
	err := rows.Scan(
		&r.ID, &r.EndYear, &r.Intensity, &r.Sector, &r.Topic, &r.Insight, &r.URL, &r.Region,
		&r.StartYear, &r.Impact, &r.Added, &r.Published, &r.Country, &r.Relevance, &r.PESTLE, &r.Source,
		&r.Title, &r.Likelihood, &r.City, &r.SWOT, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}
