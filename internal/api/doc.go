// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package api provides the HTTP surface of Insightboard.

Routes:

	GET  /health              liveness, {"status":"OK","message":"Server is running"}
	GET  /health/ready        store ping, 200 or 503
	GET  /metrics             Prometheus exposition
	POST /api/auth/login      credential login, returns a bearer token
	GET  /api/data            filtered report listing (limit, default 1000)
	GET  /api/data/intensity  intensity by sector
	GET  /api/data/likelihood likelihood by region
	GET  /api/data/relevance  relevance by country (top 20)
	GET  /api/data/by-year    metrics by end year
	GET  /api/data/topics     topic distribution (top 20)
	GET  /api/filters         distinct filter values

Every route except login and the health checks requires an
Authorization: Bearer header, /metrics included. Errors are returned as {"message": "..."}; internal failures never
expose their cause.

Middleware order: request id, client address from trusted proxies, panic
recovery, CORS, security headers, the process-wide rate limiter and HTTP
metrics. Login has its own stricter limiter.
*/
package api
