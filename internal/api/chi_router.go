// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/insightboard/internal/auth"
	"github.com/tomtom215/insightboard/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
	proxies       []string
}

// NewRouter creates a new router. Forwarded client addresses are honored
// only from the peers listed in trustedProxies.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, chiMw *ChiMiddleware, trustedProxies []string) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		middleware:    authMiddleware,
		chiMiddleware: chiMw,
		proxies:       trustedProxies,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order. The process-wide limiter covers
	// health checks too.
	r.Use(middleware.RequestID)
	r.Use(TrustedRealIP(router.proxies))
	r.Use(RecoverJSON)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(APISecurityHeaders())
	r.Use(router.chiMiddleware.RateLimit())
	r.Use(middleware.PrometheusMetrics)

	// ========================
	// Health
	// ========================
	r.Get("/health", router.handler.Health)
	r.Get("/health/ready", router.handler.HealthReady)

	// ========================
	// Authentication
	// ========================
	r.With(router.chiMiddleware.RateLimitLogin()).Post("/api/auth/login", router.handler.Login)

	// ========================
	// Dashboard data and metrics (bearer token required)
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.middleware.Authenticate)

		r.Get("/api/data", router.handler.Reports)
		r.Get("/api/data/intensity", router.handler.IntensityBySector)
		r.Get("/api/data/likelihood", router.handler.LikelihoodByRegion)
		r.Get("/api/data/relevance", router.handler.RelevanceByCountry)
		r.Get("/api/data/by-year", router.handler.MetricsByYear)
		r.Get("/api/data/topics", router.handler.TopicDistribution)
		r.Get("/api/filters", router.handler.FilterOptions)
		r.Handle("/metrics", promhttp.Handler())
	})

	// Unknown paths and unsupported methods share one body.
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, MessageNotFound)
}
