// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/iims/internal/backup"
	"github.com/tomtom215/iims/internal/inventory"
	"github.com/tomtom215/iims/internal/logging"
)

var (
	// ErrUnknownAction is returned when a collection POST names no known action.
	ErrUnknownAction = errors.New("invalid action")

	errInvalidJSON = errors.New("invalid JSON body")
)

// Error bodies shared by several endpoints.
const (
	msgForbidden     = "Insufficient permissions"
	msgInvalidAction = "Invalid action"
	msgInvalidJSON   = "Invalid JSON body"
)

// recordKind names the collection in not-found and conflict messages.
type recordKind string

const (
	kindAsset   recordKind = "Asset"
	kindLicense recordKind = "License"
)

// statusFor maps a service error to the HTTP status and error message
// returned to the client.
func statusFor(err error, kind recordKind) (int, string) {
	switch {
	case isInvalidJSON(err):
		return http.StatusBadRequest, msgInvalidJSON
	case errors.Is(err, ErrUnknownAction):
		return http.StatusBadRequest, msgInvalidAction
	case errors.Is(err, inventory.ErrForbidden), errors.Is(err, backup.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound, string(kind) + " not found"
	case errors.Is(err, inventory.ErrDuplicateID):
		return http.StatusConflict, string(kind) + " already exists"
	case errors.Is(err, inventory.ErrSeatLimit):
		return http.StatusBadRequest, "usedSeats cannot exceed totalSeats"
	case errors.Is(err, inventory.ErrInvalidPayload):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the mapped status and message for err.
func respondError(w http.ResponseWriter, r *http.Request, err error, kind recordKind) {
	status, message := statusFor(err, kind)
	if status == http.StatusInternalServerError {
		logging.CtxErr(r.Context(), err).Str("path", r.URL.Path).Msg("Unhandled service error")
	}
	writeError(w, status, message)
}
