// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package supervisor provides process supervision for Insightboard using suture v4.

The tree separates the long-running services into two layers:

	RootSupervisor ("insightboard")
	├── DataSupervisor ("data-layer")
	│   └── StoreMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff; each layer counts
its failures independently. Canceling the context passed to Serve stops
every service, waiting up to TreeConfig.ShutdownTimeout.

Supervisor events are logged through sutureslog, bridged to zerolog with
logging.NewSlogLogger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewStoreMonitorService(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
