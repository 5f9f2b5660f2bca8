// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
records.go - Inventory and Monitoring Records

Key Structures:
  - Asset: tracked hardware with ownership and status metadata
  - License: software entitlement with seat capacity and compliance state
  - HealthSample: CPU, memory and temperature reading for one device
  - BackupJob: last outcome of a scheduled backup for one asset
  - NetworkSample: bandwidth and fault flags for one network device

Timestamps are wall-clock strings in TimestampLayout; calendar dates use DateLayout.
*/

package models

// Wire layouts for dates and timestamps.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Asset status values. Status is an open string; these are the ones the
// server itself assigns or seeds.
const (
	AssetStatusActive      = "Active"
	AssetStatusMaintenance = "Maintenance"

	// DefaultDepartment is assigned to assets created without a department.
	DefaultDepartment = "IT"

	// UnknownDepartment groups assets with no department in analytics.
	UnknownDepartment = "Unknown"
)

// License compliance values.
const (
	ComplianceCompliant    = "Compliant"
	ComplianceUnauthorized = "Unauthorized"
)

// Backup job states. Verification moves Failure and Missed to
// BackupUnderInvestigation; nothing moves a job out of that state.
const (
	BackupSuccess            = "Success"
	BackupFailure            = "Failure"
	BackupMissed             = "Missed"
	BackupUnderInvestigation = "Under Investigation"
)

// Asset is a tracked piece of IT hardware.
type Asset struct {
	AssetID            string  `json:"assetId"`
	AssetType          *string `json:"assetType"`
	AssignedUser       *string `json:"assignedUser"`
	PurchaseDate       *string `json:"purchaseDate"`
	WarrantyExpiryDate *string `json:"warrantyExpiryDate"`
	Status             *string `json:"status"`
	Department         *string `json:"department"`
}

// License is a software license entitlement.
// UsedSeats should not exceed TotalSeats; inventory enforces this when configured.
type License struct {
	LicenseID        string  `json:"licenseId"`
	SoftwareName     *string `json:"softwareName"`
	LicenseKey       *string `json:"licenseKey"`
	TotalSeats       *int    `json:"totalSeats"`
	UsedSeats        *int    `json:"usedSeats"`
	ExpiryDate       *string `json:"expiryDate"`
	ComplianceStatus *string `json:"complianceStatus"`
}

// SeatsExceeded reports whether both seat counts are known and used exceeds total.
func (l License) SeatsExceeded() bool {
	return l.TotalSeats != nil && l.UsedSeats != nil && *l.UsedSeats > *l.TotalSeats
}

// HealthSample is a hardware health reading. CPULoad and MemoryUtil are percentages.
type HealthSample struct {
	DeviceID      string  `json:"deviceId"`
	CPULoad       float64 `json:"cpuLoad"`
	MemoryUtil    float64 `json:"memoryUtil"`
	IsOverheating bool    `json:"isOverheating"`
	LastCheck     string  `json:"lastCheck"`
}

// HealthAlertCPUThreshold is the CPU load above which a sample raises an alert.
const HealthAlertCPUThreshold = 85

// IsAlert reports whether the sample breaches the health thresholds.
func (h HealthSample) IsAlert() bool {
	return h.CPULoad > HealthAlertCPUThreshold || h.IsOverheating
}

// BackupJob is the latest known state of a backup job. AssetID is a soft
// reference and is not checked against the asset collection.
type BackupJob struct {
	JobID       string  `json:"jobId"`
	AssetID     string  `json:"assetId"`
	LastRunDate string  `json:"lastRunDate"`
	Status      string  `json:"status"`
	AlertReason *string `json:"alertReason"`
}

// NeedsVerification reports whether the job is in a failed or missed state.
func (b BackupJob) NeedsVerification() bool {
	return b.Status == BackupFailure || b.Status == BackupMissed
}

// NetworkSample is a bandwidth reading for a network device.
type NetworkSample struct {
	DeviceID        string `json:"deviceId"`
	BandwidthMB     int    `json:"bandwidthMB"`
	IsDowntime      bool   `json:"isDowntime"`
	AbnormalTraffic bool   `json:"abnormalTraffic"`
}

// IsEvent reports whether the sample counts as a network event.
func (n NetworkSample) IsEvent() bool {
	return n.IsDowntime || n.AbnormalTraffic
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
