// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package integrations reports the status of the external integrations
// (license vendor, SNMP agent, backup tool, monitoring service).
package integrations

import (
	"time"

	"github.com/tomtom215/iims/internal/models"
)

// Integration keys, in display order.
const (
	KeyLicenseVendorAPI  = "licenseVendorAPI"
	KeyNetworkSNMPAgent  = "networkSNMPAgent"
	KeyBackupToolX       = "backupToolX"
	KeyMonitoringService = "monitoringService"
)

// Provider returns the current integration status map.
type Provider interface {
	Status() *models.IntegrationStatusMap
}

// StaticProvider serves a fixed status map captured at construction.
type StaticProvider struct {
	entries []entry
}

type entry struct {
	key    string
	status models.IntegrationStatus
}

// NewStaticProvider returns the demo integration statuses with lastCheck
// timestamps relative to now.
func NewStaticProvider(now time.Time) *StaticProvider {
	ts := func(d time.Duration) string { return now.Add(-d).Format(models.TimestampLayout) }
	return &StaticProvider{entries: []entry{
		{KeyLicenseVendorAPI, models.IntegrationStatus{Name: "License Vendor API", Status: models.IntegrationActive, LastCheck: ts(0)}},
		{KeyNetworkSNMPAgent, models.IntegrationStatus{Name: "Network SNMP Agent", Status: models.IntegrationActive, LastCheck: ts(0)}},
		{KeyBackupToolX, models.IntegrationStatus{Name: "Backup Tool X", Status: models.IntegrationInactive, LastCheck: ts(2 * time.Hour)}},
		{KeyMonitoringService, models.IntegrationStatus{Name: "Monitoring Service", Status: models.IntegrationActive, LastCheck: ts(0)}},
	}}
}

// Status returns a fresh copy of the map in registration order.
func (p *StaticProvider) Status() *models.IntegrationStatusMap {
	m := models.NewOrderedMap[models.IntegrationStatus]()
	for _, e := range p.entries {
		m.Set(e.key, e.status)
	}
	return m
}
