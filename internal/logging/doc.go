// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package logging provides the process-wide structured logger.

The logger is zerolog with a global instance configured once from main:

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logging.Info().Int("port", cfg.Server.Port).Msg("HTTP server listening")

# Request Context

The request-id middleware stores a request id and correlation id in the
request context. Ctx(ctx) returns a logger that includes both:

	logging.Ctx(r.Context()).Warn().Err(err).Msg("query failed")

# slog Bridge

NewSlogLogger returns a *slog.Logger backed by zerolog for libraries
that only accept slog (the suture supervisor event hook).

# Security Events

SecurityLogger records login and token-gate outcomes with email
addresses masked. Failure reasons are logged for operators and never
returned to clients.
*/
package logging
