// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/iims/internal/audit"
	"github.com/tomtom215/iims/internal/authz"
	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/store"
)

// ErrForbidden is returned when the session is not authenticated as Admin or IT Staff.
var ErrForbidden = errors.New("insufficient permissions")

// RecommendedAction is the advisory text attached to every verified job.
const RecommendedAction = "Review backup configuration and retry backup job"

// JobResult describes one job moved to Under Investigation.
type JobResult struct {
	JobID              string  `json:"jobId"`
	AssetID            string  `json:"assetId"`
	PreviousStatus     string  `json:"previousStatus"`
	NewStatus          string  `json:"newStatus"`
	AlertReason        *string `json:"alertReason"`
	VerificationStatus string  `json:"verificationStatus"`
	RecommendedAction  string  `json:"recommendedAction"`
}

// Result is the outcome of one verification run.
type Result struct {
	VerifiedJobs int         `json:"verifiedJobs"`
	Results      []JobResult `json:"results"`
	Timestamp    string      `json:"timestamp"`
}

// Verifier moves failed and missed backup jobs to Under Investigation.
type Verifier struct {
	store *store.Store
	audit audit.Recorder
	authz *authz.Authorizer
	now   func() time.Time
}

// NewVerifier creates a Verifier. A nil clock uses time.Now.
func NewVerifier(st *store.Store, recorder audit.Recorder, az *authz.Authorizer, now func() time.Time) *Verifier {
	if now == nil {
		now = time.Now
	}
	return &Verifier{store: st, audit: recorder, authz: az, now: now}
}

// Verify selects every job in Failure or Missed, sets it to
// Under Investigation and appends one VERIFY entry with the count.
// A second run finds nothing to select and returns an empty result.
func (v *Verifier) Verify(ctx context.Context, session models.Session) (Result, error) {
	if !session.Authenticated || !v.authz.CanVerifyBackups(session.Role) {
		metrics.RecordAuthzDenial("backup_verify")
		return Result{}, ErrForbidden
	}

	results := make([]JobResult, 0)
	//nolint:errcheck // the callback never fails
	_ = v.store.Update(func(c *store.Collections) error {
		for i := range c.Backups {
			job := &c.Backups[i]
			if !job.NeedsVerification() {
				continue
			}
			results = append(results, JobResult{
				JobID:              job.JobID,
				AssetID:            job.AssetID,
				PreviousStatus:     job.Status,
				NewStatus:          models.BackupUnderInvestigation,
				AlertReason:        job.AlertReason,
				VerificationStatus: models.BackupUnderInvestigation,
				RecommendedAction:  RecommendedAction,
			})
			job.Status = models.BackupUnderInvestigation
		}
		return nil
	})

	details := fmt.Sprintf("Backup verification run - %d jobs set to '%s'", len(results), models.BackupUnderInvestigation)
	v.audit.Log(ctx, audit.ActionVerify, details, session.Role)
	metrics.RecordBackupVerification(len(results))

	logging.CtxInfo(ctx).Int("verified_jobs", len(results)).Msg("Backup verification completed")

	return Result{
		VerifiedJobs: len(results),
		Results:      results,
		Timestamp:    v.now().Format(models.TimestampLayout),
	}, nil
}
