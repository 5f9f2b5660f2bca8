// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"net/http"

	"github.com/tomtom215/iims/internal/metrics"
)

// HardwareHealth returns the hardware health samples
//
// @Summary Hardware health
// @Description Returns every health sample. Enabled live collectors refresh the samples first, at most once per sample interval.
// @Tags Monitoring
// @Produce json
// @Success 200 {array} models.HealthSample
// @Router /monitoring/hardware [get]
func (h *Handler) HardwareHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Monitoring.Hardware(r.Context()))
}

// NetworkUsage returns the network samples
//
// @Summary Network usage
// @Tags Monitoring
// @Produce json
// @Success 200 {array} models.NetworkSample
// @Router /monitoring/network [get]
func (h *Handler) NetworkUsage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Monitoring.Network(r.Context()))
}

// BackupStatus returns the backup jobs
//
// @Summary Backup status
// @Tags Monitoring
// @Produce json
// @Success 200 {array} models.BackupJob
// @Router /monitoring/backup [get]
func (h *Handler) BackupStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Monitoring.Backups(r.Context()))
}

// VerifyBackups moves failed and missed jobs to Under Investigation
//
// @Summary Verify backups
// @Description Requires an authenticated Admin or IT Staff session. Idempotent: a second run verifies zero jobs.
// @Tags Monitoring
// @Produce json
// @Success 200 {object} backup.Result
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Router /monitoring/backup/verify [post]
func (h *Handler) VerifyBackups(w http.ResponseWriter, r *http.Request) {
	session := h.session()
	result, err := h.deps.Backup.Verify(r.Context(), session)
	if err != nil {
		status, message := statusFor(err, "")
		if status == http.StatusForbidden {
			h.forbidden(w, r, session, "backup_verify")
			return
		}
		writeError(w, status, message)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AuditLog returns every audit entry in insertion order
//
// @Summary Audit log
// @Description Requires the Admin or IT Staff role.
// @Tags Audit
// @Produce json
// @Success 200 {array} models.AuditEntry
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Router /audit-log [get]
func (h *Handler) AuditLog(w http.ResponseWriter, r *http.Request) {
	session := h.session()
	if !h.deps.Authz.CanReadAudit(session.Role) {
		metrics.RecordAuthzDenial("audit_read")
		h.forbidden(w, r, session, "audit_read")
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Audit.Entries())
}

// DashboardMetrics returns the dashboard counters
//
// @Summary Dashboard metrics
// @Description Counts derived from the current store state.
// @Tags Analytics
// @Produce json
// @Success 200 {object} analytics.DashboardMetrics
// @Router /dashboard/metrics [get]
func (h *Handler) DashboardMetrics(w http.ResponseWriter, r *http.Request) {
	h.deps.Monitoring.Refresh(r.Context())
	writeJSON(w, http.StatusOK, h.deps.Analytics.DashboardMetrics())
}

// AssetsByDepartment returns asset counts per department
//
// @Summary Assets by department
// @Description Department names in first-seen order mapped to asset counts.
// @Tags Analytics
// @Produce json
// @Success 200 {object} map[string]int
// @Router /analytics/assets-by-department [get]
func (h *Handler) AssetsByDepartment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Analytics.AssetsByDepartment())
}

// IntegrationStatus returns the external integration status map
//
// @Summary Integration status
// @Tags Integrations
// @Produce json
// @Success 200 {object} map[string]models.IntegrationStatus
// @Router /integrations/status [get]
func (h *Handler) IntegrationStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Integrations.Status())
}
