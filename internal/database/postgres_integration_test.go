// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

//go:build integration

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/filter"
	"github.com/tomtom215/insightboard/internal/models"
	"github.com/tomtom215/insightboard/internal/testinfra"
)

func setupPostgresDB(t *testing.T) *DB {
	t.Helper()
	pg := testinfra.StartPostgres(t)

	db, err := New(&config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		DSN:          pg.DSN,
		MaxOpenConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestPostgresIntegration_StoreOperations(t *testing.T) {
	db := setupPostgresDB(t)
	ctx := context.Background()

	seedReports(t, db,
		models.Report{ID: "a", Sector: "Energy", EndYear: "2020", Topic: "oil", Intensity: 3, Country: "India"},
		models.Report{ID: "b", Sector: "Energy", EndYear: "22020", Topic: "oil", Intensity: 5, Country: "Indonesia"},
		models.Report{ID: "c", Sector: "100% Retail", EndYear: "2030", Topic: "gas", Intensity: 1},
	)

	t.Run("insertion order", func(t *testing.T) {
		got, err := db.ListReports(ctx, filter.Spec{}, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "c", got[2].ID)
	})

	t.Run("filters", func(t *testing.T) {
		got, err := db.ListReports(ctx, filter.Build(map[string]string{"end_year": "2020"}), 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)

		got, err = db.ListReports(ctx, filter.Build(map[string]string{"sector": "%"}), 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].ID)
	})

	t.Run("aggregations", func(t *testing.T) {
		sectors, err := db.IntensityBySector(ctx)
		require.NoError(t, err)
		require.Len(t, sectors, 2)
		assert.Equal(t, "Energy", sectors[0].Sector)
		assert.Equal(t, 4.0, sectors[0].AvgIntensity)

		topics, err := db.TopicDistribution(ctx)
		require.NoError(t, err)
		require.Len(t, topics, 2)
		assert.Equal(t, "oil", topics[0].Topic)

		years, err := db.MetricsByYear(ctx)
		require.NoError(t, err)
		require.Len(t, years, 3)
		assert.Equal(t, "2020", years[0].EndYear)
	})

	t.Run("filter options", func(t *testing.T) {
		opts, err := db.FilterOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"100% Retail", "Energy"}, opts.Sectors)
		assert.Equal(t, []string{"India", "Indonesia"}, opts.Countries)
	})
}

func TestPostgresIntegration_Users(t *testing.T) {
	db := setupPostgresDB(t)
	ctx := context.Background()

	user := &models.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash"}
	require.NoError(t, db.CreateUser(ctx, user))

	got, err := db.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.RoleAdmin, got.Role)

	err = db.CreateUser(ctx, &models.User{Username: "other", Email: "admin@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = db.GetUserByEmail(ctx, "Admin@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
