// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/iims/internal/audit"
	"github.com/tomtom215/iims/internal/models"
)

// QRMessage is the fixed explanation returned with every QR payload.
const QRMessage = "In a real application, scanning this QR code would link to the asset's details page."

// DefaultPublicURL is used when no public URL is configured.
const DefaultPublicURL = "http://localhost:5000"

// QRPayload is the data a client encodes into an asset label.
type QRPayload struct {
	AssetID   string  `json:"assetId"`
	AssetType *string `json:"assetType"`
	URL       string  `json:"url"`
	Message   string  `json:"message"`
}

// GenerateQR builds the QR payload for the asset with the given id. Any
// session may generate one; the audit entry carries the session role or
// "System" when nobody is logged in.
func (s *Service) GenerateQR(ctx context.Context, session models.Session, id string) (QRPayload, error) {
	asset, err := s.FindAsset(id)
	if err != nil {
		return QRPayload{}, err
	}

	payload := QRPayload{
		AssetID:   id,
		AssetType: asset.AssetType,
		URL:       s.assetURL(id),
		Message:   QRMessage,
	}

	role := session.RoleOr("")
	if role == "" {
		role = models.RoleSystem
	}
	s.audit.Log(ctx, audit.ActionQRGenerate, fmt.Sprintf("QR code generated for asset %s", id), models.StringPtr(role))
	return payload, nil
}

func (s *Service) assetURL(id string) string {
	base := strings.TrimRight(s.cfg.PublicURL, "/")
	if base == "" {
		base = DefaultPublicURL
	}
	return base + "/assets/" + id
}
