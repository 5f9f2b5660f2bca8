// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package inventory

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/iims/internal/models"
)

// AssetInput is a decoded asset create or update request.
// ID is the lookup key for update and delete, and the requested id for create.
type AssetInput struct {
	ID    models.Optional[string]
	Patch models.AssetPatch
}

// LicenseInput is a decoded license create or update request.
type LicenseInput struct {
	ID    models.Optional[string]
	Patch models.LicensePatch
}

// DecodeAssetInput reads an asset request from a decoded JSON object.
func DecodeAssetInput(fields map[string]json.RawMessage) (AssetInput, error) {
	id, err := models.OptionalFrom[string](fields, "assetId")
	if err != nil {
		return AssetInput{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	patch, err := models.DecodeAssetPatch(fields)
	if err != nil {
		return AssetInput{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return AssetInput{ID: id, Patch: patch}, nil
}

// DecodeLicenseInput reads a license request from a decoded JSON object.
func DecodeLicenseInput(fields map[string]json.RawMessage) (LicenseInput, error) {
	id, err := models.OptionalFrom[string](fields, "licenseId")
	if err != nil {
		return LicenseInput{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	patch, err := models.DecodeLicensePatch(fields)
	if err != nil {
		return LicenseInput{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return LicenseInput{ID: id, Patch: patch}, nil
}

// lookupID returns the id to match on; absent or null never matches a record.
func lookupID(id models.Optional[string]) (string, bool) {
	if !id.Set || id.Null {
		return "", false
	}
	return id.Value, true
}

// assetRules and licenseRules are checked on create in strict mode.
type assetRules struct {
	AssetType          *string `json:"assetType" validate:"required"`
	AssignedUser       *string `json:"assignedUser" validate:"required"`
	PurchaseDate       *string `json:"purchaseDate" validate:"required,isodate"`
	WarrantyExpiryDate *string `json:"warrantyExpiryDate" validate:"required,isodate"`
}

type licenseRules struct {
	SoftwareName *string `json:"softwareName" validate:"required"`
	LicenseKey   *string `json:"licenseKey" validate:"required"`
	TotalSeats   *int    `json:"totalSeats" validate:"required,gte=0"`
	UsedSeats    *int    `json:"usedSeats" validate:"omitempty,gte=0"`
	ExpiryDate   *string `json:"expiryDate" validate:"required,isodate"`
}
