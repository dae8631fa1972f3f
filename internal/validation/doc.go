// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. Messages name fields
// by their json tag and never include the rejected value:
//
//	var req models.LoginRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondError(w, http.StatusBadRequest, verr.Error())
//	    return
//	}
package validation
