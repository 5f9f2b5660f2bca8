// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package inventory

import "errors"

var (
	// ErrForbidden is returned when the session role may not mutate the collection.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when a create reuses an existing id.
	ErrDuplicateID = errors.New("record already exists")

	// ErrSeatLimit is returned when usedSeats would exceed totalSeats.
	ErrSeatLimit = errors.New("usedSeats exceeds totalSeats")

	// ErrInvalidPayload is returned for wrongly typed fields or, in strict
	// mode, missing required fields.
	ErrInvalidPayload = errors.New("invalid payload")
)
