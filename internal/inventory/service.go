// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/iims/internal/audit"
	"github.com/tomtom215/iims/internal/authz"
	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/store"
	"github.com/tomtom215/iims/internal/validation"
)

// Id prefixes for synthesized record ids.
const (
	AssetIDPrefix   = "AST-"
	LicenseIDPrefix = "LIC-"
)

const (
	collectionAssets   = "assets"
	collectionLicenses = "licenses"
)

// Config controls the optional strictness of the CRUD operations.
type Config struct {
	// AllowDuplicateIDs accepts creates that reuse an existing id.
	// Lookups then resolve to the first record in storage order.
	AllowDuplicateIDs bool

	// EnforceSeatLimit rejects licenses whose usedSeats exceed totalSeats.
	EnforceSeatLimit bool

	// RequireFields validates create payloads instead of filling defaults only.
	RequireFields bool

	// EmployeeIdentity is the assignedUser an Employee's asset listing is filtered by.
	EmployeeIdentity string

	// PublicURL is the base of the asset detail links encoded in QR payloads.
	PublicURL string
}

// Service implements role-gated CRUD over assets and licenses.
type Service struct {
	store *store.Store
	audit audit.Recorder
	authz *authz.Authorizer
	cfg   Config
	newID func() string
}

// NewService creates the inventory service and reports the current record
// counts.
func NewService(st *store.Store, recorder audit.Recorder, az *authz.Authorizer, cfg Config) *Service {
	st.View(func(c *store.Collections) {
		metrics.SetInventoryRecords(collectionAssets, len(c.Assets))
		metrics.SetInventoryRecords(collectionLicenses, len(c.Licenses))
	})
	return &Service{
		store: st,
		audit: recorder,
		authz: az,
		cfg:   cfg,
		newID: func() string { return uuid.NewString()[:8] },
	}
}

// ListAssets returns all assets in storage order. An Employee session only
// sees assets assigned to the employee identity.
func (s *Service) ListAssets(session models.Session) []models.Asset {
	assets := s.store.Assets()
	if !session.HasRole(models.RoleEmployee) {
		return assets
	}

	filtered := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if a.AssignedUser != nil && *a.AssignedUser == s.cfg.EmployeeIdentity {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// ListLicenses returns all licenses in storage order.
func (s *Service) ListLicenses(_ models.Session) []models.License {
	return s.store.Licenses()
}

// CreateAsset appends a new asset. Absent fields take their defaults:
// status "Active" and department "IT". An absent, null or empty id is
// replaced by a synthesized "AST-xxxxxxxx" id.
func (s *Service) CreateAsset(ctx context.Context, session models.Session, in AssetInput) (models.Asset, error) {
	if err := s.authorize(session, authz.ObjectAssets, collectionAssets, "create"); err != nil {
		return models.Asset{}, err
	}

	p := in.Patch
	asset := models.Asset{
		AssetID:            s.idOrNew(in.ID, AssetIDPrefix),
		AssetType:          p.AssetType.Merge(nil),
		AssignedUser:       p.AssignedUser.Merge(nil),
		PurchaseDate:       p.PurchaseDate.Merge(nil),
		WarrantyExpiryDate: p.WarrantyExpiryDate.Merge(nil),
		Status:             p.Status.Or(models.AssetStatusActive),
		Department:         p.Department.Or(models.DefaultDepartment),
	}

	if s.cfg.RequireFields {
		rules := assetRules{
			AssetType:          asset.AssetType,
			AssignedUser:       asset.AssignedUser,
			PurchaseDate:       asset.PurchaseDate,
			WarrantyExpiryDate: asset.WarrantyExpiryDate,
		}
		if verr := validation.ValidateStruct(&rules); verr != nil {
			metrics.RecordInventoryOperation(collectionAssets, "create", "invalid")
			return models.Asset{}, fmt.Errorf("%w: %s", ErrInvalidPayload, verr.Error())
		}
	}

	err := s.store.Update(func(c *store.Collections) error {
		if !s.cfg.AllowDuplicateIDs && store.IndexOfAsset(c.Assets, asset.AssetID) >= 0 {
			return ErrDuplicateID
		}
		c.Assets = append(c.Assets, asset)
		metrics.SetInventoryRecords(collectionAssets, len(c.Assets))
		return nil
	})
	if err != nil {
		metrics.RecordInventoryOperation(collectionAssets, "create", resultLabel(err))
		return models.Asset{}, err
	}

	s.audit.Log(ctx, audit.ActionCreate, fmt.Sprintf("Created asset %s", asset.AssetID), session.Role)
	metrics.RecordInventoryOperation(collectionAssets, "create", "success")
	logging.CtxInfo(ctx).Str("asset_id", asset.AssetID).Msg("Asset created")
	return asset, nil
}

// UpdateAsset merges the patch into the first asset with the given id.
// Absent keys keep their value and explicit nulls clear the field.
func (s *Service) UpdateAsset(ctx context.Context, session models.Session, in AssetInput) (models.Asset, error) {
	if err := s.authorize(session, authz.ObjectAssets, collectionAssets, "update"); err != nil {
		return models.Asset{}, err
	}

	id, ok := lookupID(in.ID)
	var updated models.Asset
	err := s.store.Update(func(c *store.Collections) error {
		i := -1
		if ok {
			i = store.IndexOfAsset(c.Assets, id)
		}
		if i < 0 {
			return ErrNotFound
		}
		c.Assets[i] = in.Patch.Apply(c.Assets[i])
		updated = c.Assets[i]
		return nil
	})
	if err != nil {
		metrics.RecordInventoryOperation(collectionAssets, "update", resultLabel(err))
		return models.Asset{}, err
	}

	s.audit.Log(ctx, audit.ActionUpdate, fmt.Sprintf("Updated asset %s", id), session.Role)
	metrics.RecordInventoryOperation(collectionAssets, "update", "success")
	return updated, nil
}

// DeleteAsset removes the first asset with the given id and returns it.
func (s *Service) DeleteAsset(ctx context.Context, session models.Session, in AssetInput) (models.Asset, error) {
	if err := s.authorize(session, authz.ObjectAssets, collectionAssets, "delete"); err != nil {
		return models.Asset{}, err
	}

	id, ok := lookupID(in.ID)
	var deleted models.Asset
	err := s.store.Update(func(c *store.Collections) error {
		i := -1
		if ok {
			i = store.IndexOfAsset(c.Assets, id)
		}
		if i < 0 {
			return ErrNotFound
		}
		deleted = c.Assets[i]
		c.Assets = append(c.Assets[:i], c.Assets[i+1:]...)
		metrics.SetInventoryRecords(collectionAssets, len(c.Assets))
		return nil
	})
	if err != nil {
		metrics.RecordInventoryOperation(collectionAssets, "delete", resultLabel(err))
		return models.Asset{}, err
	}

	s.audit.Log(ctx, audit.ActionDelete, fmt.Sprintf("Deleted asset %s", id), session.Role)
	metrics.RecordInventoryOperation(collectionAssets, "delete", "success")
	logging.CtxInfo(ctx).Str("asset_id", id).Msg("Asset deleted")
	return deleted, nil
}

// FindAsset returns the first asset with the given id.
func (s *Service) FindAsset(id string) (models.Asset, error) {
	var (
		asset models.Asset
		found bool
	)
	s.store.View(func(c *store.Collections) {
		if i := store.IndexOfAsset(c.Assets, id); i >= 0 {
			asset, found = c.Assets[i], true
		}
	})
	if !found {
		return models.Asset{}, ErrNotFound
	}
	return asset, nil
}

// CreateLicense appends a new license. Absent fields take their defaults:
// usedSeats 0 and complianceStatus "Compliant".
func (s *Service) CreateLicense(ctx context.Context, session models.Session, in LicenseInput) (models.License, error) {
	if err := s.authorize(session, authz.ObjectLicenses, collectionLicenses, "create"); err != nil {
		return models.License{}, err
	}

	p := in.Patch
	license := models.License{
		LicenseID:        s.idOrNew(in.ID, LicenseIDPrefix),
		SoftwareName:     p.SoftwareName.Merge(nil),
		LicenseKey:       p.LicenseKey.Merge(nil),
		TotalSeats:       p.TotalSeats.Merge(nil),
		UsedSeats:        p.UsedSeats.Or(0),
		ExpiryDate:       p.ExpiryDate.Merge(nil),
		ComplianceStatus: p.ComplianceStatus.Or(models.ComplianceCompliant),
	}

	if s.cfg.RequireFields {
		rules := licenseRules{
			SoftwareName: license.SoftwareName,
			LicenseKey:   license.LicenseKey,
			TotalSeats:   license.TotalSeats,
			UsedSeats:    license.UsedSeats,
			ExpiryDate:   license.ExpiryDate,
		}
		if verr := validation.ValidateStruct(&rules); verr != nil {
			metrics.RecordInventoryOperation(collectionLicenses, "create", "invalid")
			return models.License{}, fmt.Errorf("%w: %s", ErrInvalidPayload, verr.Error())
		}
	}
	if s.cfg.EnforceSeatLimit && license.SeatsExceeded() {
		metrics.RecordInventoryOperation(collectionLicenses, "create", "invalid")
		return models.License{}, ErrSeatLimit
	}

	err := s.store.Update(func(c *store.Collections) error {
		if !s.cfg.AllowDuplicateIDs && store.IndexOfLicense(c.Licenses, license.LicenseID) >= 0 {
			return ErrDuplicateID
		}
		c.Licenses = append(c.Licenses, license)
		metrics.SetInventoryRecords(collectionLicenses, len(c.Licenses))
		return nil
	})
	if err != nil {
		metrics.RecordInventoryOperation(collectionLicenses, "create", resultLabel(err))
		return models.License{}, err
	}

	s.audit.Log(ctx, audit.ActionCreate, fmt.Sprintf("Created license %s", license.LicenseID), session.Role)
	metrics.RecordInventoryOperation(collectionLicenses, "create", "success")
	logging.CtxInfo(ctx).Str("license_id", license.LicenseID).Msg("License created")
	return license, nil
}

// UpdateLicense merges the patch into the first license with the given id.
// The seat limit is checked against the merged record.
func (s *Service) UpdateLicense(ctx context.Context, session models.Session, in LicenseInput) (models.License, error) {
	if err := s.authorize(session, authz.ObjectLicenses, collectionLicenses, "update"); err != nil {
		return models.License{}, err
	}

	id, ok := lookupID(in.ID)
	var updated models.License
	err := s.store.Update(func(c *store.Collections) error {
		i := -1
		if ok {
			i = store.IndexOfLicense(c.Licenses, id)
		}
		if i < 0 {
			return ErrNotFound
		}
		merged := in.Patch.Apply(c.Licenses[i])
		if s.cfg.EnforceSeatLimit && merged.SeatsExceeded() {
			return ErrSeatLimit
		}
		c.Licenses[i] = merged
		updated = merged
		return nil
	})
	if err != nil {
		metrics.RecordInventoryOperation(collectionLicenses, "update", resultLabel(err))
		return models.License{}, err
	}

	s.audit.Log(ctx, audit.ActionUpdate, fmt.Sprintf("Updated license %s", id), session.Role)
	metrics.RecordInventoryOperation(collectionLicenses, "update", "success")
	return updated, nil
}

// DeleteLicense removes the first license with the given id and returns it.
func (s *Service) DeleteLicense(ctx context.Context, session models.Session, in LicenseInput) (models.License, error) {
	if err := s.authorize(session, authz.ObjectLicenses, collectionLicenses, "delete"); err != nil {
		return models.License{}, err
	}

	id, ok := lookupID(in.ID)
	var deleted models.License
	err := s.store.Update(func(c *store.Collections) error {
		i := -1
		if ok {
			i = store.IndexOfLicense(c.Licenses, id)
		}
		if i < 0 {
			return ErrNotFound
		}
		deleted = c.Licenses[i]
		c.Licenses = append(c.Licenses[:i], c.Licenses[i+1:]...)
		metrics.SetInventoryRecords(collectionLicenses, len(c.Licenses))
		return nil
	})
	if err != nil {
		metrics.RecordInventoryOperation(collectionLicenses, "delete", resultLabel(err))
		return models.License{}, err
	}

	s.audit.Log(ctx, audit.ActionDelete, fmt.Sprintf("Deleted license %s", id), session.Role)
	metrics.RecordInventoryOperation(collectionLicenses, "delete", "success")
	logging.CtxInfo(ctx).Str("license_id", id).Msg("License deleted")
	return deleted, nil
}

func (s *Service) authorize(session models.Session, object, collection, operation string) error {
	if s.authz.CanMutate(session.Role, object) {
		return nil
	}
	metrics.RecordInventoryOperation(collection, operation, "forbidden")
	metrics.RecordAuthzDenial(collection + "_" + operation)
	return ErrForbidden
}

func (s *Service) idOrNew(id models.Optional[string], prefix string) string {
	if v, ok := lookupID(id); ok && v != "" {
		return v
	}
	return prefix + s.newID()
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicateID):
		return "duplicate"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	default:
		return "invalid"
	}
}
