// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package analytics computes the dashboard counters and the asset
// breakdown by department. Every call scans the current store state;
// nothing is cached.
package analytics

import (
	"time"

	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/store"
)

// ExpiryWindowDays is how far ahead a license expiry counts as "soon".
// The boundary day is included.
const ExpiryWindowDays = 90

// DashboardMetrics are the dashboard counters.
type DashboardMetrics struct {
	TotalAssets          int `json:"totalAssets"`
	LicensesExpiringSoon int `json:"licensesExpiringSoon"`
	HardwareHealthAlerts int `json:"hardwareHealthAlerts"`
	BackupFailures       int `json:"backupFailures"`
	NetworkEvents        int `json:"networkEvents"`
}

// Service is the read-only aggregation service.
type Service struct {
	store *store.Store
	now   func() time.Time
}

// NewService creates the analytics service. A nil clock uses time.Now.
func NewService(st *store.Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, now: now}
}

// DashboardMetrics counts, in one consistent snapshot:
//   - all assets
//   - licenses expiring on or before today + 90 days (already expired included)
//   - health samples with cpuLoad > 85 or overheating
//   - backup jobs in Failure or Missed
//   - network samples with downtime or abnormal traffic
//
// Licenses with a null or unparseable expiry date are not counted.
func (s *Service) DashboardMetrics() DashboardMetrics {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	threshold := today.AddDate(0, 0, ExpiryWindowDays)

	var m DashboardMetrics
	s.store.View(func(c *store.Collections) {
		m.TotalAssets = len(c.Assets)
		for _, l := range c.Licenses {
			if expiresBy(l.ExpiryDate, threshold) {
				m.LicensesExpiringSoon++
			}
		}
		for _, h := range c.Health {
			if h.IsAlert() {
				m.HardwareHealthAlerts++
			}
		}
		for _, b := range c.Backups {
			if b.NeedsVerification() {
				m.BackupFailures++
			}
		}
		for _, n := range c.Network {
			if n.IsEvent() {
				m.NetworkEvents++
			}
		}
	})
	return m
}

func expiresBy(expiry *string, threshold time.Time) bool {
	if expiry == nil {
		return false
	}
	d, err := time.ParseInLocation(models.DateLayout, *expiry, threshold.Location())
	if err != nil {
		return false
	}
	return !d.After(threshold)
}

// AssetsByDepartment counts assets per department, keys in first-seen
// order. Assets without a department count as "Unknown".
func (s *Service) AssetsByDepartment() *models.DepartmentCounts {
	counts := models.NewOrderedMap[int]()
	s.store.View(func(c *store.Collections) {
		for _, a := range c.Assets {
			dept := models.UnknownDepartment
			if a.Department != nil {
				dept = *a.Department
			}
			models.Increment(counts, dept)
		}
	})
	return counts
}
