// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/iims/internal/authz"
	"github.com/tomtom215/iims/internal/inventory"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/models"
)

// Collection POST actions.
const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

// mutation is one parsed collection POST.
type mutation struct {
	action string
	fields map[string]json.RawMessage
}

// ListAssets returns the asset collection
//
// @Summary List assets
// @Description Returns all assets in insertion order. An Employee session only sees assets assigned to the employee identity.
// @Tags Inventory
// @Produce json
// @Success 200 {array} models.Asset
// @Router /assets [get]
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Inventory.ListAssets(h.session()))
}

// MutateAsset creates, updates or deletes an asset
//
// @Summary Create, update or delete an asset
// @Description Dispatches on the action field. Requires the Admin or IT Staff role. Updates merge present keys; an explicit null clears a field.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param body body object{action=string,assetId=string} true "Action and asset fields"
// @Success 200 {object} models.Asset "Updated or deleted asset"
// @Success 201 {object} models.Asset "Created asset"
// @Failure 400 {object} ErrorResponse "Invalid action or payload"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Failure 409 {object} ErrorResponse "Asset already exists"
// @Router /assets [post]
func (h *Handler) MutateAsset(w http.ResponseWriter, r *http.Request) {
	session := h.session()
	m, ok := h.parseMutation(w, r, session, authz.ObjectAssets, kindAsset)
	if !ok {
		return
	}

	in, err := inventory.DecodeAssetInput(m.fields)
	if err != nil {
		respondError(w, r, err, kindAsset)
		return
	}

	var (
		asset  models.Asset
		status = http.StatusOK
	)
	switch m.action {
	case actionCreate:
		asset, err = h.deps.Inventory.CreateAsset(r.Context(), session, in)
		status = http.StatusCreated
	case actionUpdate:
		asset, err = h.deps.Inventory.UpdateAsset(r.Context(), session, in)
	case actionDelete:
		asset, err = h.deps.Inventory.DeleteAsset(r.Context(), session, in)
	}
	if err != nil {
		respondError(w, r, err, kindAsset)
		return
	}
	writeJSON(w, status, asset)
}

// ListLicenses returns the license collection
//
// @Summary List licenses
// @Tags Inventory
// @Produce json
// @Success 200 {array} models.License
// @Router /licenses [get]
func (h *Handler) ListLicenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Inventory.ListLicenses(h.session()))
}

// MutateLicense creates, updates or deletes a license
//
// @Summary Create, update or delete a license
// @Description Dispatches on the action field. Requires the Admin or IT Staff role.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param body body object{action=string,licenseId=string} true "Action and license fields"
// @Success 200 {object} models.License "Updated or deleted license"
// @Success 201 {object} models.License "Created license"
// @Failure 400 {object} ErrorResponse "Invalid action, payload or seat count"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "License not found"
// @Failure 409 {object} ErrorResponse "License already exists"
// @Router /licenses [post]
func (h *Handler) MutateLicense(w http.ResponseWriter, r *http.Request) {
	session := h.session()
	m, ok := h.parseMutation(w, r, session, authz.ObjectLicenses, kindLicense)
	if !ok {
		return
	}

	in, err := inventory.DecodeLicenseInput(m.fields)
	if err != nil {
		respondError(w, r, err, kindLicense)
		return
	}

	var (
		license models.License
		status  = http.StatusOK
	)
	switch m.action {
	case actionCreate:
		license, err = h.deps.Inventory.CreateLicense(r.Context(), session, in)
		status = http.StatusCreated
	case actionUpdate:
		license, err = h.deps.Inventory.UpdateLicense(r.Context(), session, in)
	case actionDelete:
		license, err = h.deps.Inventory.DeleteLicense(r.Context(), session, in)
	}
	if err != nil {
		respondError(w, r, err, kindLicense)
		return
	}
	writeJSON(w, status, license)
}

// AssetQR returns the QR payload for one asset
//
// @Summary Generate an asset QR payload
// @Description Returns the data a client encodes into an asset label. Appends a QR_GENERATE audit entry.
// @Tags Inventory
// @Produce json
// @Param id path string true "Asset id" example(AST-001)
// @Success 200 {object} inventory.QRPayload
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Router /assets/{id}/qr [get]
func (h *Handler) AssetQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payload, err := h.deps.Inventory.GenerateQR(r.Context(), h.session(), id)
	if err != nil {
		respondError(w, r, err, kindAsset)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// parseMutation checks the role before reading the body, then decodes the
// body and its action. On failure it has already written the response.
func (h *Handler) parseMutation(w http.ResponseWriter, r *http.Request, session models.Session, object string, kind recordKind) (mutation, bool) {
	if !h.deps.Authz.CanMutate(session.Role, object) {
		metrics.RecordAuthzDenial(object + "_mutate")
		h.forbidden(w, r, session, object+"_mutate")
		return mutation{}, false
	}

	fields, err := decodeObject(w, r)
	if err != nil {
		respondError(w, r, err, kind)
		return mutation{}, false
	}

	action, _ := stringField(fields, "action")
	switch action {
	case actionCreate, actionUpdate, actionDelete:
		return mutation{action: action, fields: fields}, true
	default:
		respondError(w, r, ErrUnknownAction, kind)
		return mutation{}, false
	}
}
