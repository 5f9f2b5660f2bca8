// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

// Package validation provides struct validation using go-playground/validator v10.
//
// It is used for the optional strict mode of the inventory create operations
// (inventory.require_fields). By default the server is permissive and fills
// absent fields with documented defaults instead of rejecting them.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Field names in messages come from json tags ("assetType is required")
//   - Custom isodate tag for YYYY-MM-DD dates
//   - Uses WithRequiredStructEnabled option
//
// Example usage:
//
//	type licenseRules struct {
//	    SoftwareName *string `json:"softwareName" validate:"required"`
//	    TotalSeats   *int    `json:"totalSeats" validate:"required,gte=0"`
//	    UsedSeats    *int    `json:"usedSeats" validate:"omitempty,gte=0"`
//	    ExpiryDate   *string `json:"expiryDate" validate:"omitempty,isodate"`
//	}
//
//	if verr := validation.ValidateStruct(&rules); verr != nil {
//	    return fmt.Errorf("%w: %s", ErrInvalidPayload, verr.Error())
//	}
package validation
