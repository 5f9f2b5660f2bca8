// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package services

import (
	"context"
)

// ContextRunner is a component with a blocking, context-aware run loop.
//
// Satisfied by *websocket.Hub and *monitoring.Service.
type ContextRunner interface {
	RunWithContext(ctx context.Context) error
}

// RunnerService supervises a ContextRunner under a fixed name.
type RunnerService struct {
	runner ContextRunner
	name   string
}

// NewRunnerService wraps runner.
func NewRunnerService(name string, runner ContextRunner) *RunnerService {
	return &RunnerService{runner: runner, name: name}
}

// NewWebSocketHubService supervises the dashboard websocket hub.
func NewWebSocketHubService(hub ContextRunner) *RunnerService {
	return NewRunnerService("websocket-hub", hub)
}

// NewMonitoringSamplerService supervises the live collector sampling loop.
func NewMonitoringSamplerService(sampler ContextRunner) *RunnerService {
	return NewRunnerService("monitoring-sampler", sampler)
}

// Serve implements suture.Service.
func (s *RunnerService) Serve(ctx context.Context) error {
	return s.runner.RunWithContext(ctx)
}

// String names the service in supervisor logs.
func (s *RunnerService) String() string {
	return s.name
}
