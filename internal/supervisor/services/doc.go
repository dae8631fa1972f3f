// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package services provides suture.Service wrappers for Insightboard components.

Each wrapper implements suture's Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, which suture uses to name the service in its events.

HTTPServerService translates http.Server's blocking ListenAndServe into a
context-aware Serve with graceful Shutdown. StoreMonitorService pings the
report store periodically and logs availability transitions.
*/
package services
