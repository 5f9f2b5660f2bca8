// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package monitoring

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/store"
)

// Provider serves the monitoring collections to the HTTP layer.
type Provider interface {
	Hardware(ctx context.Context) []models.HealthSample
	Network(ctx context.Context) []models.NetworkSample
	Backups(ctx context.Context) []models.BackupJob
}

// HealthCollector produces live hardware health samples.
type HealthCollector interface {
	Name() string
	Collect(ctx context.Context) ([]models.HealthSample, error)
}

// NetworkCollector produces live network samples.
type NetworkCollector interface {
	Name() string
	Collect(ctx context.Context) ([]models.NetworkSample, error)
}

type healthSource struct {
	collector HealthCollector
	guard     *guard[[]models.HealthSample]
}

type networkSource struct {
	collector NetworkCollector
	guard     *guard[[]models.NetworkSample]
}

// Service serves the stored samples. Registered collectors refresh the store
// on read, at most once per sample interval each, so dashboard metrics see
// the same data as the monitoring endpoints.
type Service struct {
	store    *store.Store
	interval time.Duration
	health   []healthSource
	network  []networkSource
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSampleInterval sets the minimum time between polls of one collector.
func WithSampleInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithHealthCollector registers a live hardware health collector.
func WithHealthCollector(c HealthCollector) Option {
	return func(s *Service) {
		s.health = append(s.health, healthSource{collector: c})
	}
}

// WithNetworkCollector registers a live network collector.
func WithNetworkCollector(c NetworkCollector) Option {
	return func(s *Service) {
		s.network = append(s.network, networkSource{collector: c})
	}
}

// NewService creates a monitoring service over st.
func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:    st,
		interval: 5 * time.Second,
		logger:   logging.WithComponent("monitoring"),
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.health {
		s.health[i].guard = newGuard[[]models.HealthSample]("collector-"+s.health[i].collector.Name(), s.interval)
	}
	for i := range s.network {
		s.network[i].guard = newGuard[[]models.NetworkSample]("collector-"+s.network[i].collector.Name(), s.interval)
	}
	return s
}

// Hardware returns all health samples after refreshing live collectors.
func (s *Service) Hardware(ctx context.Context) []models.HealthSample {
	s.RefreshHealth(ctx)
	return s.store.HealthSamples()
}

// Network returns all network samples after refreshing live collectors.
func (s *Service) Network(ctx context.Context) []models.NetworkSample {
	s.RefreshNetwork(ctx)
	return s.store.NetworkSamples()
}

// Backups returns all backup jobs. Backup state only changes through verification.
func (s *Service) Backups(_ context.Context) []models.BackupJob {
	return s.store.BackupJobs()
}

// RefreshHealth polls each health collector the guard lets through and
// upserts the results by device id.
func (s *Service) RefreshHealth(ctx context.Context) {
	for _, src := range s.health {
		samples, err := src.guard.run(ctx, src.collector.Collect)
		if err != nil {
			s.logPollError(src.collector.Name(), err)
			continue
		}
		for _, sample := range samples {
			s.store.UpsertHealthSample(sample)
		}
	}
}

// RefreshNetwork polls each network collector the guard lets through and
// upserts the results by device id.
func (s *Service) RefreshNetwork(ctx context.Context) {
	for _, src := range s.network {
		samples, err := src.guard.run(ctx, src.collector.Collect)
		if err != nil {
			s.logPollError(src.collector.Name(), err)
			continue
		}
		for _, sample := range samples {
			s.store.UpsertNetworkSample(sample)
		}
	}
}

// Refresh polls every collector. It lets callers warm the store outside a request.
func (s *Service) Refresh(ctx context.Context) {
	s.RefreshHealth(ctx)
	s.RefreshNetwork(ctx)
}

// RunWithContext refreshes every collector once per sample interval until
// ctx is canceled. Without collectors it only waits for ctx.
func (s *Service) RunWithContext(ctx context.Context) error {
	if !s.HasCollectors() {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// HasCollectors reports whether any live collector is registered.
func (s *Service) HasCollectors() bool {
	return len(s.health) > 0 || len(s.network) > 0
}

func (s *Service) logPollError(name string, err error) {
	if errors.Is(err, errThrottled) {
		return
	}
	s.logger.Warn().Err(err).Str("collector", name).Msg("Live collector poll failed; serving stored samples")
}
