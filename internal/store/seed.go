// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package store

import (
	"time"

	"github.com/tomtom215/iims/internal/models"
)

// Seed returns the demo data set. Relative dates (license expiries, sample
// and backup timestamps) are computed from now.
func Seed(now time.Time) Collections {
	s := models.StringPtr
	n := models.IntPtr
	ts := func(d time.Duration) string { return now.Add(-d).Format(models.TimestampLayout) }
	date := func(days int) *string { return s(now.AddDate(0, 0, days).Format(models.DateLayout)) }

	asset := func(id, typ, user, bought, warranty, status, dept string) models.Asset {
		return models.Asset{
			AssetID:            id,
			AssetType:          s(typ),
			AssignedUser:       s(user),
			PurchaseDate:       s(bought),
			WarrantyExpiryDate: s(warranty),
			Status:             s(status),
			Department:         s(dept),
		}
	}
	license := func(id, name, key string, total, used int, expiry *string, compliance string) models.License {
		return models.License{
			LicenseID:        id,
			SoftwareName:     s(name),
			LicenseKey:       s(key),
			TotalSeats:       n(total),
			UsedSeats:        n(used),
			ExpiryDate:       expiry,
			ComplianceStatus: s(compliance),
		}
	}

	return Collections{
		Assets: []models.Asset{
			asset("AST-001", "Laptop", "Alice Johnson", "2023-01-15", "2026-01-15", models.AssetStatusActive, "Engineering"),
			asset("AST-002", "Desktop", "Bob Smith", "2022-06-20", "2025-06-20", models.AssetStatusActive, "Sales"),
			asset("AST-003", "Monitor", "Alice Johnson", "2023-03-10", "2026-03-10", models.AssetStatusActive, "Engineering"),
			asset("AST-004", "Laptop", "Charlie Brown", "2024-01-05", "2027-01-05", models.AssetStatusActive, "Marketing"),
			asset("AST-005", "Server", "IT Department", "2021-11-12", "2024-11-12", models.AssetStatusMaintenance, "IT"),
			asset("AST-006", "Laptop", "David Wilson", "2023-08-20", "2026-08-20", models.AssetStatusActive, "HR"),
			asset("AST-007", "Desktop", "Eva Martinez", "2022-12-05", "2025-12-05", models.AssetStatusActive, "Finance"),
		},
		Licenses: []models.License{
			license("LIC-001", "Microsoft Office 365", "XXXXX-XXXXX-XXXXX-001", 50, 45, s("2024-12-31"), models.ComplianceCompliant),
			license("LIC-002", "Adobe Creative Suite", "XXXXX-XXXXX-XXXXX-002", 20, 18, date(45), models.ComplianceCompliant),
			license("LIC-003", "Windows Server License", "XXXXX-XXXXX-XXXXX-003", 10, 8, date(75), models.ComplianceCompliant),
			license("LIC-004", "VMware vSphere", "XXXXX-XXXXX-XXXXX-004", 5, 5, date(30), models.ComplianceUnauthorized),
			license("LIC-005", "Autodesk AutoCAD", "XXXXX-XXXXX-XXXXX-005", 15, 12, s("2025-06-30"), models.ComplianceCompliant),
		},
		Health: []models.HealthSample{
			{DeviceID: "DEV-001", CPULoad: 92, MemoryUtil: 78, IsOverheating: true, LastCheck: ts(5 * time.Minute)},
			{DeviceID: "DEV-002", CPULoad: 45, MemoryUtil: 60, LastCheck: ts(3 * time.Minute)},
			{DeviceID: "DEV-003", CPULoad: 35, MemoryUtil: 50, LastCheck: ts(2 * time.Minute)},
			{DeviceID: "DEV-004", CPULoad: 88, MemoryUtil: 85, LastCheck: ts(time.Minute)},
			{DeviceID: "DEV-005", CPULoad: 25, MemoryUtil: 40, LastCheck: ts(0)},
			{DeviceID: "DEV-006", CPULoad: 91, MemoryUtil: 82, IsOverheating: true, LastCheck: ts(4 * time.Minute)},
		},
		Backups: []models.BackupJob{
			{JobID: "BK-001", AssetID: "AST-001", LastRunDate: ts(24 * time.Hour), Status: models.BackupSuccess},
			{JobID: "BK-002", AssetID: "AST-002", LastRunDate: ts(48 * time.Hour), Status: models.BackupFailure, AlertReason: s("Disk space insufficient")},
			{JobID: "BK-003", AssetID: "AST-003", LastRunDate: ts(72 * time.Hour), Status: models.BackupSuccess},
			{JobID: "BK-004", AssetID: "AST-004", LastRunDate: ts(120 * time.Hour), Status: models.BackupMissed, AlertReason: s("Scheduled time conflict")},
			{JobID: "BK-005", AssetID: "AST-005", LastRunDate: ts(12 * time.Hour), Status: models.BackupSuccess},
			{JobID: "BK-006", AssetID: "AST-006", LastRunDate: ts(96 * time.Hour), Status: models.BackupFailure, AlertReason: s("Network timeout")},
		},
		Network: []models.NetworkSample{
			{DeviceID: "NET-001", BandwidthMB: 450, AbnormalTraffic: true},
			{DeviceID: "NET-002", BandwidthMB: 120},
			{DeviceID: "NET-003", BandwidthMB: 0, IsDowntime: true},
			{DeviceID: "NET-004", BandwidthMB: 280},
			{DeviceID: "NET-005", BandwidthMB: 350},
			{DeviceID: "NET-006", BandwidthMB: 520, AbnormalTraffic: true},
		},
	}
}
