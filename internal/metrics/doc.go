// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

// Package metrics defines the Prometheus collectors exposed on /metrics.
//
// Collectors are registered with the default registry through promauto.
// Callers use the Record* helpers rather than touching collectors:
//
//	start := time.Now()
//	rows, err := db.QueryContext(ctx, q, args...)
//	metrics.RecordDBQuery("list", "reports", time.Since(start), err)
package metrics
