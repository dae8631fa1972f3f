// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package services

import (
	"context"
	"time"

	"github.com/tomtom215/insightboard/internal/logging"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService pings the report store on a fixed interval and logs
// when it becomes unreachable and when it recovers. It never fails the
// supervisor: an unreachable store is reported, not restarted.
type StoreMonitorService struct {
	store       Pinger
	interval    time.Duration
	pingTimeout time.Duration
	name        string

	healthy bool
	onCheck func(healthy bool)
}

// NewStoreMonitorService creates a monitor. A non-positive interval
// defaults to 30s.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StoreMonitorService{
		store:       store,
		interval:    interval,
		pingTimeout: 5 * time.Second,
		name:        "store-monitor",
		healthy:     true,
	}
}

// Serve implements suture.Service.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	err := s.store.Ping(pingCtx)
	cancel()

	healthy := err == nil
	switch {
	case !healthy && s.healthy:
		logging.Error().Err(err).Msg("Report store unreachable")
	case healthy && !s.healthy:
		logging.Info().Msg("Report store reachable again")
	}
	s.healthy = healthy

	if s.onCheck != nil {
		s.onCheck(healthy)
	}
}

// String implements fmt.Stringer.
func (s *StoreMonitorService) String() string {
	return s.name
}
