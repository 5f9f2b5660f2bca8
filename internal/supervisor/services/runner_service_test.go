// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// fakeRunner fails the first failures runs, then blocks until canceled.
type fakeRunner struct {
	runs     atomic.Int32
	failures int32
}

func (f *fakeRunner) RunWithContext(ctx context.Context) error {
	if f.runs.Add(1) <= f.failures {
		return errors.New("loop crashed")
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestRunnerService_Names(t *testing.T) {
	var _ suture.Service = (*RunnerService)(nil)

	tests := []struct {
		svc  *RunnerService
		want string
	}{
		{NewWebSocketHubService(&fakeRunner{}), "websocket-hub"},
		{NewMonitoringSamplerService(&fakeRunner{}), "monitoring-sampler"},
		{NewRunnerService("custom", &fakeRunner{}), "custom"},
	}
	for _, tt := range tests {
		if got := tt.svc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRunnerService_Serve(t *testing.T) {
	runner := &fakeRunner{}
	svc := NewWebSocketHubService(runner)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
	if runner.runs.Load() != 1 {
		t.Errorf("runs = %d, want 1", runner.runs.Load())
	}
}

func TestRunnerService_RestartedAfterFailure(t *testing.T) {
	runner := &fakeRunner{failures: 2}

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewMonitoringSamplerService(runner))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for runner.runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("runs = %d, want at least 3", runner.runs.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	<-errCh
}
