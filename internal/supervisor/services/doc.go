// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package services adapts IIMS components to the suture.Service interface.

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe and translates context cancellation into Shutdown
  - Drains in-flight requests for a configurable timeout

Runners (RunnerService):
  - Wraps anything with RunWithContext under a stable service name
  - NewWebSocketHubService for the dashboard hub
  - NewMonitoringSamplerService for the live collector loop

Audit Event Bus (EventBusService):
  - Runs the watermill router that forwards audit entries to the hub
  - Never restarted after an early exit, since the router is single-use

Every wrapper implements fmt.Stringer so supervisor log lines carry the
service name.
*/
package services
