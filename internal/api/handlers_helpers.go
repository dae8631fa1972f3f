// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/models"
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"` + MessageServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends {"message": message} with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.MessageResponse{Message: message})
}

// respondServerError logs err with request context and answers with the
// generic 500 body. Error details never reach the client.
func respondServerError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	logging.Ctx(r.Context()).Error().
		Str("operation", operation).
		Str("error", logging.SanitizeError(err.Error())).
		Msg("Request failed")
	respondError(w, http.StatusInternalServerError, MessageServerError)
}

// parseLimit reads the limit query parameter. Missing, malformed and
// non-positive values fall back to def; larger values are clamped to max.
func parseLimit(r *http.Request, def, max int) int {
	limit := def
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}

// clientIP returns the request's remote address for security logging.
func clientIP(r *http.Request) string {
	return logging.SanitizeLogValue(r.RemoteAddr)
}
