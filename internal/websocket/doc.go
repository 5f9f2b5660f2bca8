// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package websocket pushes audit log entries to connected dashboard clients.

The Hub owns the client set and runs as a supervised service
(RunWithContext). Each Client has a read pump, which answers application
level pings and detects disconnects, and a write pump, which sends queued
messages and keepalive pings.

Message format:

	{"type": "audit", "data": {"timestamp": "...", "userRole": "Admin", "action": "CREATE", "details": "..."}}

Clients that cannot keep up with broadcasts are disconnected rather than
blocking the hub.
*/
package websocket
