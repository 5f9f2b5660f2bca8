// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package monitoring

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/store"
)

type stubHealthCollector struct {
	name    string
	calls   atomic.Int32
	samples []models.HealthSample
	err     error
}

func (s *stubHealthCollector) Name() string { return s.name }

func (s *stubHealthCollector) Collect(context.Context) ([]models.HealthSample, error) {
	s.calls.Add(1)
	return s.samples, s.err
}

type stubNetworkCollector struct {
	samples []models.NetworkSample
}

func (s *stubNetworkCollector) Name() string { return "stub-network" }

func (s *stubNetworkCollector) Collect(context.Context) ([]models.NetworkSample, error) {
	return s.samples, nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.Seed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestService_StaticData(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := NewService(st)
	ctx := context.Background()

	assert.False(t, svc.HasCollectors())
	assert.Equal(t, st.HealthSamples(), svc.Hardware(ctx))
	assert.Equal(t, st.NetworkSamples(), svc.Network(ctx))
	assert.Equal(t, st.BackupJobs(), svc.Backups(ctx))
	assert.Len(t, svc.Hardware(ctx), 6)
}

func TestService_HealthCollectorUpserts(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	collector := &stubHealthCollector{
		name: "stub-upsert",
		samples: []models.HealthSample{
			{DeviceID: "DEV-002", CPULoad: 97, MemoryUtil: 70, LastCheck: "2025-03-01 12:00:00"},
			{DeviceID: "SRV-LOCAL", CPULoad: 10, MemoryUtil: 20, LastCheck: "2025-03-01 12:00:00"},
		},
	}
	svc := NewService(st, WithSampleInterval(time.Hour), WithHealthCollector(collector))

	samples := svc.Hardware(context.Background())
	require.Len(t, samples, 7)
	assert.Equal(t, "DEV-002", samples[1].DeviceID)
	assert.InDelta(t, 97, samples[1].CPULoad, 0.001)
	assert.Equal(t, "SRV-LOCAL", samples[6].DeviceID)
	assert.True(t, svc.HasCollectors())
}

func TestService_CollectorThrottled(t *testing.T) {
	t.Parallel()

	collector := &stubHealthCollector{
		name:    "stub-throttle",
		samples: []models.HealthSample{{DeviceID: "DEV-001", CPULoad: 12}},
	}
	svc := NewService(newTestStore(t), WithSampleInterval(time.Hour), WithHealthCollector(collector))

	svc.Hardware(context.Background())
	svc.Hardware(context.Background())
	svc.Refresh(context.Background())

	assert.Equal(t, int32(1), collector.calls.Load())
}

func TestService_CollectorFailureKeepsStoredSamples(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	before := st.HealthSamples()
	collector := &stubHealthCollector{name: "stub-failure", err: errors.New("sensor offline")}
	svc := NewService(st, WithHealthCollector(collector))

	assert.Equal(t, before, svc.Hardware(context.Background()))
	assert.Equal(t, int32(1), collector.calls.Load())
}

func TestService_NetworkCollector(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	collector := &stubNetworkCollector{samples: []models.NetworkSample{
		{DeviceID: "NET-003", BandwidthMB: 40},
	}}
	svc := NewService(st, WithNetworkCollector(collector))

	samples := svc.Network(context.Background())
	require.Len(t, samples, 6)
	assert.Equal(t, models.NetworkSample{DeviceID: "NET-003", BandwidthMB: 40}, samples[2])
}

func TestService_RunWithContext(t *testing.T) {
	t.Parallel()

	collector := &stubHealthCollector{
		name:    "stub-run",
		samples: []models.HealthSample{{DeviceID: "DEV-001", CPULoad: 33}},
	}
	svc := NewService(newTestStore(t), WithSampleInterval(10*time.Millisecond), WithHealthCollector(collector))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.RunWithContext(ctx) }()

	assert.Eventually(t, func() bool { return collector.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("RunWithContext did not return after cancel")
	}
}

func TestService_RunWithContextWithoutCollectors(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestStore(t))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, svc.RunWithContext(ctx), context.DeadlineExceeded)
}

func TestGuard_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	g := newGuard[int]("test-guard", time.Nanosecond)
	fail := func(context.Context) (int, error) { return 0, errors.New("down") }

	for i := 0; i < 5; i++ {
		// Let the limiter refill between polls.
		time.Sleep(time.Millisecond)
		_, err := g.run(context.Background(), fail)
		require.Error(t, err)
	}

	time.Sleep(time.Millisecond)
	called := false
	_, err := g.run(context.Background(), func(context.Context) (int, error) {
		called = true
		return 1, nil
	})
	require.Error(t, err)
	assert.False(t, called, "open breaker must not call the collector")
}
