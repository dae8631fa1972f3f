// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"context"
	"time"

	"github.com/tomtom215/insightboard/internal/auth"
	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/filter"
	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/models"
)

// Store is the read side of the report store used by the handlers.
type Store interface {
	ListReports(ctx context.Context, spec filter.Spec, limit int) ([]models.Report, error)
	IntensityBySector(ctx context.Context) ([]models.SectorIntensity, error)
	LikelihoodByRegion(ctx context.Context) ([]models.RegionLikelihood, error)
	RelevanceByCountry(ctx context.Context) ([]models.CountryRelevance, error)
	MetricsByYear(ctx context.Context) ([]models.YearMetrics, error)
	TopicDistribution(ctx context.Context) ([]models.TopicStats, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	Ping(ctx context.Context) error
}

// Authenticator performs credential login.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
}

// Handler serves the HTTP API.
type Handler struct {
	store     Store
	auth      Authenticator
	config    *config.Config
	security  *logging.SecurityLogger
	startTime time.Time
}

// NewHandler creates a Handler over the given store and authenticator.
func NewHandler(store Store, authenticator Authenticator, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		auth:      authenticator,
		config:    cfg,
		security:  logging.NewSecurityLogger(),
		startTime: time.Now(),
	}
}

func (h *Handler) limits() (def, max int) {
	def, max = 1000, 10000
	if h.config != nil {
		if h.config.API.DefaultLimit > 0 {
			def = h.config.API.DefaultLimit
		}
		if h.config.API.MaxLimit > 0 {
			max = h.config.API.MaxLimit
		}
	}
	return def, max
}
