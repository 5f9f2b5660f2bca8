// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package supervisor runs the long-lived IIMS components under a suture v4
supervisor tree.

# Tree Layout

	iims
	├── collector-layer
	│   └── monitoring-sampler (only with live collectors)
	├── messaging-layer
	│   ├── websocket-hub
	│   └── audit-event-bus (when events are enabled)
	└── api-layer
	    └── http-server

Each layer is its own supervisor, so restarts in one layer do not cascade
into the others. A service that returns before its context is canceled is
restarted with backoff according to TreeConfig.

# Logging

Supervisor events (service panics, restarts, backoff) are written through
sutureslog into the zerolog pipeline via logging.NewSlogLogger:

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)

Component adapters live in the services subpackage.
*/
package supervisor
