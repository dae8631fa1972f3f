// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/insightboard/internal/filter"
)

// Reports handles GET /api/data.
//
// Query parameters: any of end_year, topic, sector, region, pestle, source,
// swot, country, city, plus limit. Unknown parameters are ignored.
func (h *Handler) Reports(w http.ResponseWriter, r *http.Request) {
	spec := filter.FromQuery(r.URL.Query())
	def, max := h.limits()
	limit := parseLimit(r, def, max)

	reports, err := h.store.ListReports(r.Context(), spec, limit)
	if err != nil {
		respondServerError(w, r, "list_reports", err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

// IntensityBySector handles GET /api/data/intensity.
func (h *Handler) IntensityBySector(w http.ResponseWriter, r *http.Request) {
	serveAggregate(w, r, "intensity_by_sector", h.store.IntensityBySector)
}

// LikelihoodByRegion handles GET /api/data/likelihood.
func (h *Handler) LikelihoodByRegion(w http.ResponseWriter, r *http.Request) {
	serveAggregate(w, r, "likelihood_by_region", h.store.LikelihoodByRegion)
}

// RelevanceByCountry handles GET /api/data/relevance.
func (h *Handler) RelevanceByCountry(w http.ResponseWriter, r *http.Request) {
	serveAggregate(w, r, "relevance_by_country", h.store.RelevanceByCountry)
}

// MetricsByYear handles GET /api/data/by-year.
func (h *Handler) MetricsByYear(w http.ResponseWriter, r *http.Request) {
	serveAggregate(w, r, "metrics_by_year", h.store.MetricsByYear)
}

// TopicDistribution handles GET /api/data/topics.
func (h *Handler) TopicDistribution(w http.ResponseWriter, r *http.Request) {
	serveAggregate(w, r, "topic_distribution", h.store.TopicDistribution)
}

// FilterOptions handles GET /api/filters.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	serveAggregate(w, r, "filter_options", h.store.FilterOptions)
}

// serveAggregate runs one store query and writes its result as JSON.
func serveAggregate[T any](w http.ResponseWriter, r *http.Request, operation string, query func(context.Context) (T, error)) {
	result, err := query(r.Context())
	if err != nil {
		respondServerError(w, r, operation, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
