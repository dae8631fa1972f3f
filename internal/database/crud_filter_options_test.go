// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/insightboard/internal/models"
)

func TestFilterOptions(t *testing.T) {
	db := setupTestDB(t)

	seedReports(t, db,
		models.Report{Sector: "Retail", Region: "Europe", Country: "France", Topic: "gas", PESTLE: "Economic", Source: "EIA", SWOT: "Strength", City: "Paris", EndYear: "2030"},
		models.Report{Sector: "Energy", Region: "Asia", Country: "India", Topic: "oil", PESTLE: "Industries", Source: "OPEC", EndYear: "2020"},
		models.Report{Sector: "Energy", Region: "Asia", Country: "", Topic: "oil"},
		models.Report{},
	)

	opts, err := db.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Energy", "Retail"}, opts.Sectors)
	assert.Equal(t, []string{"Asia", "Europe"}, opts.Regions)
	assert.Equal(t, []string{"France", "India"}, opts.Countries)
	assert.Equal(t, []string{"gas", "oil"}, opts.Topics)
	assert.Equal(t, []string{"Economic", "Industries"}, opts.PESTLEs)
	assert.Equal(t, []string{"EIA", "OPEC"}, opts.Sources)
	assert.Equal(t, []string{"Strength"}, opts.SWOTs)
	assert.Equal(t, []string{"Paris"}, opts.Cities)
	assert.Equal(t, []string{"2020", "2030"}, opts.Years)
}

func TestFilterOptions_EmptyStore(t *testing.T) {
	db := setupTestDB(t)

	opts, err := db.FilterOptions(context.Background())
	require.NoError(t, err)

	for name, values := range map[string][]string{
		"sectors": opts.Sectors, "regions": opts.Regions, "countries": opts.Countries,
		"topics": opts.Topics, "pestles": opts.PESTLEs, "sources": opts.Sources,
		"swots": opts.SWOTs, "cities": opts.Cities, "years": opts.Years,
	} {
		assert.NotNil(t, values, name)
		assert.Empty(t, values, name)
	}
}

func TestFilterOptionsQuery_SingleStatement(t *testing.T) {
	q := filterOptionsQuery()

	assert.Equal(t, 8, strings.Count(q, "UNION ALL"))
	assert.True(t, strings.HasSuffix(q, "ORDER BY field, value"))
	assert.Contains(t, q, "SELECT 'end_year' AS field, end_year AS value FROM reports WHERE end_year <> ''")
}

func TestOptionSlice_UnknownField(t *testing.T) {
	opts := models.NewFilterOptions()
	assert.Nil(t, optionSlice(opts, "title"))
	assert.NotNil(t, optionSlice(opts, "swot"))
}
