// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"
)

// EventRouter is the run loop of the audit event bus.
//
// Satisfied by *events.Bus.
type EventRouter interface {
	Run(ctx context.Context) error
}

// EventBusService supervises the audit event bus router.
//
// A watermill router cannot be started twice, so an early exit is reported
// with suture.ErrDoNotRestart. Audit entries are still stored when the bus
// is gone; only live forwarding stops.
type EventBusService struct {
	router EventRouter
}

// NewEventBusService wraps router.
func NewEventBusService(router EventRouter) *EventBusService {
	return &EventBusService{router: router}
}

// Serve implements suture.Service.
func (s *EventBusService) Serve(ctx context.Context) error {
	err := s.router.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("event router stopped: %v: %w", err, suture.ErrDoNotRestart)
	}
	return fmt.Errorf("event router stopped unexpectedly: %w", suture.ErrDoNotRestart)
}

// String names the service in supervisor logs.
func (s *EventBusService) String() string {
	return "audit-event-bus"
}
