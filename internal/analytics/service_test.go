// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package analytics

import (
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/store"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestDashboardMetrics_Seed(t *testing.T) {
	t.Parallel()

	svc := NewService(store.New(store.Seed(fixedNow)), clock)
	m := svc.DashboardMetrics()

	want := DashboardMetrics{
		TotalAssets: 7,
		// LIC-001 already expired, LIC-002/003/004 within 90 days, LIC-005 is 121 days out.
		LicensesExpiringSoon: 4,
		HardwareHealthAlerts: 3,
		BackupFailures:       3,
		NetworkEvents:        3,
	}
	if m != want {
		t.Errorf("DashboardMetrics() = %+v, want %+v", m, want)
	}

	if again := svc.DashboardMetrics(); again != m {
		t.Errorf("metrics are not idempotent: %+v then %+v", m, again)
	}
}

func TestDashboardMetrics_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	boundary := fixedNow.AddDate(0, 0, ExpiryWindowDays).Format(models.DateLayout)
	after := fixedNow.AddDate(0, 0, ExpiryWindowDays+1).Format(models.DateLayout)

	tests := []struct {
		name   string
		expiry *string
		want   int
	}{
		{"on boundary", models.StringPtr(boundary), 1},
		{"day after boundary", models.StringPtr(after), 0},
		{"null expiry", nil, 0},
		{"unparseable expiry", models.StringPtr("next year"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := store.New(store.Collections{Licenses: []models.License{{LicenseID: "LIC-X", ExpiryDate: tt.expiry}}})
			if got := NewService(st, clock).DashboardMetrics().LicensesExpiringSoon; got != tt.want {
				t.Errorf("LicensesExpiringSoon = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDashboardMetrics_Thresholds(t *testing.T) {
	t.Parallel()

	st := store.New(store.Collections{
		Health: []models.HealthSample{
			{DeviceID: "a", CPULoad: 85},
			{DeviceID: "b", CPULoad: 85.5},
			{DeviceID: "c", CPULoad: 10, IsOverheating: true},
		},
		Backups: []models.BackupJob{
			{JobID: "1", Status: models.BackupUnderInvestigation},
			{JobID: "2", Status: models.BackupMissed},
		},
		Network: []models.NetworkSample{
			{DeviceID: "n1", BandwidthMB: 0},
			{DeviceID: "n2", IsDowntime: true, AbnormalTraffic: true},
		},
	})

	m := NewService(st, clock).DashboardMetrics()
	if m.HardwareHealthAlerts != 2 {
		t.Errorf("HardwareHealthAlerts = %d, want 2 (85 is not > 85)", m.HardwareHealthAlerts)
	}
	if m.BackupFailures != 1 {
		t.Errorf("BackupFailures = %d, want 1", m.BackupFailures)
	}
	if m.NetworkEvents != 1 {
		t.Errorf("NetworkEvents = %d, want 1", m.NetworkEvents)
	}
}

func TestAssetsByDepartment(t *testing.T) {
	t.Parallel()

	c := store.Seed(fixedNow)
	c.Assets = append(c.Assets, models.Asset{AssetID: "AST-100"}, models.Asset{AssetID: "AST-101", Department: models.StringPtr("Sales")})

	counts := NewService(store.New(c), clock).AssetsByDepartment()

	data, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"Engineering":2,"Sales":2,"Marketing":1,"IT":1,"HR":1,"Finance":1,"Unknown":1}`
	if string(data) != want {
		t.Errorf("AssetsByDepartment() = %s, want %s", data, want)
	}
}

func TestAssetsByDepartment_Empty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewService(store.New(store.Collections{}), nil).AssetsByDepartment())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("empty store should give {}, got %s", data)
	}
}
