// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
analytics_reports.go - Report Aggregation Views

Each view groups the whole collection by one attribute. Views are not
filtered. Grouping is by exact string value, so "Energy" and "energy" are
separate groups. Averages are plain AVG over every row in the group; a
score of 0 is a value, not a missing one.

Sorting:
  - IntensityBySector: avg_intensity DESC
  - LikelihoodByRegion: avg_likelihood DESC
  - RelevanceByCountry: avg_relevance DESC, top 20
  - MetricsByYear: end_year ASC (lexical), empty end_year excluded
  - TopicDistribution: count DESC, top 20, empty topic excluded

Ties are broken by the group key ascending.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/insightboard/internal/database/query"
	"github.com/tomtom215/insightboard/internal/models"
)

// TopN is the truncation applied to the country and topic views.
const TopN = 20

// IntensityBySector returns average and maximum intensity per sector.
func (db *DB) IntensityBySector(ctx context.Context) ([]models.SectorIntensity, error) {
	q := `
	SELECT
		sector,
		AVG(intensity) AS avg_intensity,
		MAX(intensity) AS max_intensity,
		COUNT(*) AS report_count
	FROM reports
	GROUP BY sector
	ORDER BY avg_intensity DESC, sector ASC`

	scan := func(rows *sql.Rows) (models.SectorIntensity, error) {
		var s models.SectorIntensity
		err := rows.Scan(&s.Sector, &s.AvgIntensity, &s.MaxIntensity, &s.Count)
		return s, err
	}

	results, err := timedQuery(ctx, db, "intensity_by_sector", q, nil, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to query intensity by sector: %w", err)
	}
	return results, nil
}

// LikelihoodByRegion returns average likelihood per region.
func (db *DB) LikelihoodByRegion(ctx context.Context) ([]models.RegionLikelihood, error) {
	q := `
	SELECT
		region,
		AVG(likelihood) AS avg_likelihood,
		COUNT(*) AS report_count
	FROM reports
	GROUP BY region
	ORDER BY avg_likelihood DESC, region ASC`

	scan := func(rows *sql.Rows) (models.RegionLikelihood, error) {
		var r models.RegionLikelihood
		err := rows.Scan(&r.Region, &r.AvgLikelihood, &r.Count)
		return r, err
	}

	results, err := timedQuery(ctx, db, "likelihood_by_region", q, nil, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to query likelihood by region: %w", err)
	}
	return results, nil
}

// RelevanceByCountry returns average relevance for the TopN countries.
func (db *DB) RelevanceByCountry(ctx context.Context) ([]models.CountryRelevance, error) {
	q := fmt.Sprintf(`
	SELECT
		country,
		AVG(relevance) AS avg_relevance,
		COUNT(*) AS report_count
	FROM reports
	GROUP BY country
	ORDER BY avg_relevance DESC, country ASC
	LIMIT %d`, TopN)

	scan := func(rows *sql.Rows) (models.CountryRelevance, error) {
		var c models.CountryRelevance
		err := rows.Scan(&c.Country, &c.AvgRelevance, &c.Count)
		return c, err
	}

	results, err := timedQuery(ctx, db, "relevance_by_country", q, nil, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to query relevance by country: %w", err)
	}
	return results, nil
}

// MetricsByYear returns per-end-year counts and score averages.
// Reports without an end year are excluded.
func (db *DB) MetricsByYear(ctx context.Context) ([]models.YearMetrics, error) {
	where, args := query.NewWhereBuilder().AddNonEmpty("end_year").Build()
	q := fmt.Sprintf(`
	SELECT
		end_year,
		COUNT(*) AS report_count,
		AVG(intensity) AS avg_intensity,
		AVG(likelihood) AS avg_likelihood,
		AVG(relevance) AS avg_relevance
	FROM reports
	WHERE %s
	GROUP BY end_year
	ORDER BY end_year ASC`, where)

	scan := func(rows *sql.Rows) (models.YearMetrics, error) {
		var y models.YearMetrics
		err := rows.Scan(&y.EndYear, &y.Count, &y.AvgIntensity, &y.AvgLikelihood, &y.AvgRelevance)
		return y, err
	}

	results, err := timedQuery(ctx, db, "metrics_by_year", q, args, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics by year: %w", err)
	}
	return results, nil
}

// TopicDistribution returns the TopN most frequent topics.
// Reports without a topic are excluded.
func (db *DB) TopicDistribution(ctx context.Context) ([]models.TopicStats, error) {
	where, args := query.NewWhereBuilder().AddNonEmpty("topic").Build()
	q := fmt.Sprintf(`
	SELECT
		topic,
		COUNT(*) AS report_count,
		AVG(intensity) AS avg_intensity
	FROM reports
	WHERE %s
	GROUP BY topic
	ORDER BY report_count DESC, topic ASC
	LIMIT %d`, where, TopN)

	scan := func(rows *sql.Rows) (models.TopicStats, error) {
		var s models.TopicStats
		err := rows.Scan(&s.Topic, &s.Count, &s.AvgIntensity)
		return s, err
	}

	results, err := timedQuery(ctx, db, "topic_distribution", q, args, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to query topic distribution: %w", err)
	}
	return results, nil
}
