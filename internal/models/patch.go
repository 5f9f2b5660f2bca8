// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package models

import (
	"github.com/goccy/go-json"
)

// AssetPatch holds the updatable asset fields. The id is identity and is never patched.
type AssetPatch struct {
	AssetType          Optional[string]
	AssignedUser       Optional[string]
	PurchaseDate       Optional[string]
	WarrantyExpiryDate Optional[string]
	Status             Optional[string]
	Department         Optional[string]
}

// DecodeAssetPatch builds an AssetPatch from a decoded request object.
// Unknown keys (such as "action") are ignored.
func DecodeAssetPatch(fields map[string]json.RawMessage) (AssetPatch, error) {
	var (
		p   AssetPatch
		err error
	)
	for _, f := range []struct {
		key string
		dst *Optional[string]
	}{
		{"assetType", &p.AssetType},
		{"assignedUser", &p.AssignedUser},
		{"purchaseDate", &p.PurchaseDate},
		{"warrantyExpiryDate", &p.WarrantyExpiryDate},
		{"status", &p.Status},
		{"department", &p.Department},
	} {
		if *f.dst, err = OptionalFrom[string](fields, f.key); err != nil {
			return AssetPatch{}, err
		}
	}
	return p, nil
}

// Apply returns a copy of a with the patch merged in.
func (p AssetPatch) Apply(a Asset) Asset {
	a.AssetType = p.AssetType.Merge(a.AssetType)
	a.AssignedUser = p.AssignedUser.Merge(a.AssignedUser)
	a.PurchaseDate = p.PurchaseDate.Merge(a.PurchaseDate)
	a.WarrantyExpiryDate = p.WarrantyExpiryDate.Merge(a.WarrantyExpiryDate)
	a.Status = p.Status.Merge(a.Status)
	a.Department = p.Department.Merge(a.Department)
	return a
}

// LicensePatch holds the updatable license fields.
type LicensePatch struct {
	SoftwareName     Optional[string]
	LicenseKey       Optional[string]
	TotalSeats       Optional[int]
	UsedSeats        Optional[int]
	ExpiryDate       Optional[string]
	ComplianceStatus Optional[string]
}

// DecodeLicensePatch builds a LicensePatch from a decoded request object.
func DecodeLicensePatch(fields map[string]json.RawMessage) (LicensePatch, error) {
	var (
		p   LicensePatch
		err error
	)
	for _, f := range []struct {
		key string
		dst *Optional[string]
	}{
		{"softwareName", &p.SoftwareName},
		{"licenseKey", &p.LicenseKey},
		{"expiryDate", &p.ExpiryDate},
		{"complianceStatus", &p.ComplianceStatus},
	} {
		if *f.dst, err = OptionalFrom[string](fields, f.key); err != nil {
			return LicensePatch{}, err
		}
	}
	if p.TotalSeats, err = OptionalFrom[int](fields, "totalSeats"); err != nil {
		return LicensePatch{}, err
	}
	if p.UsedSeats, err = OptionalFrom[int](fields, "usedSeats"); err != nil {
		return LicensePatch{}, err
	}
	return p, nil
}

// Apply returns a copy of l with the patch merged in.
func (p LicensePatch) Apply(l License) License {
	l.SoftwareName = p.SoftwareName.Merge(l.SoftwareName)
	l.LicenseKey = p.LicenseKey.Merge(l.LicenseKey)
	l.TotalSeats = p.TotalSeats.Merge(l.TotalSeats)
	l.UsedSeats = p.UsedSeats.Merge(l.UsedSeats)
	l.ExpiryDate = p.ExpiryDate.Merge(l.ExpiryDate)
	l.ComplianceStatus = p.ComplianceStatus.Merge(l.ComplianceStatus)
	return l
}
