// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package models defines the data structures shared by the store, the
authenticator and the HTTP API.

Key Components:

  - Report: one survey/insight record (read-only through the API)
  - User / PublicUser: stored account and its client-facing projection
  - SectorIntensity, RegionLikelihood, CountryRelevance, YearMetrics,
    TopicStats: aggregation view rows
  - FilterOptions: distinct values for every filterable attribute
  - LoginRequest / LoginResponse / MessageResponse / HealthResponse:
    HTTP payloads

JSON field names follow the dashboard client contract: report attributes
use snake_case ("end_year", "start_year"), timestamps and statistics use
camelCase ("createdAt", "avgIntensity"), and aggregation group keys are
serialized as "_id".
*/
package models
