// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package events is the in-process event bus built on Watermill's gochannel
// pub/sub. The audit logger publishes every entry on TopicAudit and a router
// handler forwards it to the websocket hub.
//
// Delivery is best effort: messages published while no handler is
// subscribed, or after the bus is closed, are lost. The audit log itself is
// the source of truth.
package events
