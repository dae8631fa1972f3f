// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/auth"
	"github.com/tomtom215/insightboard/internal/models"
	"github.com/tomtom215/insightboard/internal/validation"
)

const maxLoginBodyBytes = 1 << 16

// MessageInvalidCredentials is returned for every failed login.
const MessageInvalidCredentials = "Invalid credentials"

// Login handles POST /api/auth/login.
//
// Request body: {"email": "...", "password": "..."}
//
// Responses:
//   - 200 {"token": "...", "user": {...}}
//   - 400 {"message": "..."} for a malformed body or missing fields
//   - 401 {"message": "Invalid credentials"} for an unknown email or wrong password
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.security.LogLoginFailure(r.Context(), req.Email, clientIP(r), "invalid_credentials")
			respondError(w, http.StatusUnauthorized, MessageInvalidCredentials)
			return
		}
		respondServerError(w, r, "login", err)
		return
	}

	h.security.LogLoginSuccess(r.Context(), result.User.ID, result.User.Email, clientIP(r))
	respondJSON(w, http.StatusOK, models.LoginResponse{
		Token: result.Token,
		User:  result.User,
	})
}
