// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package store holds the in-memory record collections.
//
// A single Store guards all five collections with one RWMutex, so a scan
// followed by a mutation is atomic with respect to other requests. Writes are
// copy-on-write: Update hands the callback a clone of the collections and
// only publishes it when the callback returns nil, so a failed operation
// never leaves a partial change behind.
package store

import (
	"sync"

	"github.com/tomtom215/iims/internal/models"
)

// Collections is the full record set. Slice order is display order.
type Collections struct {
	Assets   []models.Asset
	Licenses []models.License
	Health   []models.HealthSample
	Backups  []models.BackupJob
	Network  []models.NetworkSample
}

func (c *Collections) clone() Collections {
	return Collections{
		Assets:   snapshot(c.Assets),
		Licenses: snapshot(c.Licenses),
		Health:   snapshot(c.Health),
		Backups:  snapshot(c.Backups),
		Network:  snapshot(c.Network),
	}
}

// Store is the process-wide record store.
type Store struct {
	mu sync.RWMutex
	c  Collections
}

// New creates a Store holding a copy of initial.
func New(initial Collections) *Store {
	return &Store{c: initial.clone()}
}

// View runs fn under the read lock. fn must not retain or modify the slices.
func (s *Store) View(fn func(c *Collections)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.c)
}

// Update runs fn under the write lock against a working copy of the
// collections. The copy replaces the stored state only if fn returns nil.
func (s *Store) Update(fn func(c *Collections) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.c.clone()
	if err := fn(&work); err != nil {
		return err
	}
	s.c = work
	return nil
}

// Assets returns a snapshot of the asset collection.
func (s *Store) Assets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Assets)
}

// Licenses returns a snapshot of the license collection.
func (s *Store) Licenses() []models.License {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Licenses)
}

// HealthSamples returns a snapshot of the hardware health samples.
func (s *Store) HealthSamples() []models.HealthSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Health)
}

// BackupJobs returns a snapshot of the backup jobs.
func (s *Store) BackupJobs() []models.BackupJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Backups)
}

// NetworkSamples returns a snapshot of the network samples.
func (s *Store) NetworkSamples() []models.NetworkSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.c.Network)
}

// UpsertHealthSample replaces the sample with the same device id, or appends it.
func (s *Store) UpsertHealthSample(h models.HealthSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.c.Health {
		if s.c.Health[i].DeviceID == h.DeviceID {
			s.c.Health[i] = h
			return
		}
	}
	s.c.Health = append(s.c.Health, h)
}

// UpsertNetworkSample replaces the sample with the same device id, or appends it.
func (s *Store) UpsertNetworkSample(n models.NetworkSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.c.Network {
		if s.c.Network[i].DeviceID == n.DeviceID {
			s.c.Network[i] = n
			return
		}
	}
	s.c.Network = append(s.c.Network, n)
}

// IndexOfAsset returns the index of the first asset with id, or -1.
func IndexOfAsset(assets []models.Asset, id string) int {
	for i := range assets {
		if assets[i].AssetID == id {
			return i
		}
	}
	return -1
}

// IndexOfLicense returns the index of the first license with id, or -1.
func IndexOfLicense(licenses []models.License, id string) int {
	for i := range licenses {
		if licenses[i].LicenseID == id {
			return i
		}
	}
	return -1
}

// snapshot copies a collection. The copy is never nil, so empty
// collections encode as [] rather than null.
func snapshot[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
