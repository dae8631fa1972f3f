// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/models"
)

// Health handles GET /health. It reports process liveness only.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}

// HealthReady handles GET /health/ready. It answers 503 when the store
// does not respond to a ping within two seconds.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:  "UNAVAILABLE",
			Message: "Database is not reachable",
		})
		return
	}

	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "OK",
		Message: "Server is ready",
	})
}
