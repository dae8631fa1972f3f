// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tomtom215/insightboard/internal/filter"
	"github.com/tomtom215/insightboard/internal/models"
)

type fieldValue struct {
	field string
	value string
}

// filterOptionsQuery selects the distinct non-empty values of every
// filterable column in one round trip.
func filterOptionsQuery() string {
	parts := make([]string, len(filter.Fields))
	for i, f := range filter.Fields {
		col := f.Column()
		parts[i] = fmt.Sprintf(
			"SELECT '%s' AS field, %s AS value FROM reports WHERE %s <> '' GROUP BY %s",
			col, col, col, col,
		)
	}
	return strings.Join(parts, "\n\tUNION ALL\n\t") + "\n\tORDER BY field, value"
}

// FilterOptions returns the distinct non-empty values of the nine
// filterable fields, each sorted ascending.
func (db *DB) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	scan := func(rows *sql.Rows) (fieldValue, error) {
		var fv fieldValue
		err := rows.Scan(&fv.field, &fv.value)
		return fv, err
	}

	values, err := timedQuery(ctx, db, "filter_options", filterOptionsQuery(), nil, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to query filter options: %w", err)
	}

	opts := models.NewFilterOptions()
	for _, fv := range values {
		if target := optionSlice(opts, fv.field); target != nil {
			*target = append(*target, fv.value)
		}
	}
	return opts, nil
}

func optionSlice(opts *models.FilterOptions, field string) *[]string {
	f, ok := filter.ParseField(field)
	if !ok {
		return nil
	}
	switch f {
	case filter.EndYear:
		return &opts.Years
	case filter.Topic:
		return &opts.Topics
	case filter.Sector:
		return &opts.Sectors
	case filter.Region:
		return &opts.Regions
	case filter.PESTLE:
		return &opts.PESTLEs
	case filter.Source:
		return &opts.Sources
	case filter.SWOT:
		return &opts.SWOTs
	case filter.Country:
		return &opts.Countries
	case filter.City:
		return &opts.Cities
	}
	return nil
}
