// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenMissing is returned when no token was presented.
	ErrTokenMissing = errors.New("token missing")

	// ErrTokenInvalid is returned for malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenExpired is returned when the check time is at or past exp.
	ErrTokenExpired = errors.New("token expired")
)
