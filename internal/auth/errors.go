// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package auth

import "errors"

// Login errors. Each maps to a distinct HTTP response.
var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMFARequired is returned when an Admin login lacks the correct second factor.
	ErrMFARequired = errors.New("MFA code required")

	// ErrUnsupportedMethod is returned for biometric login, which is not implemented.
	ErrUnsupportedMethod = errors.New("biometric authentication is not implemented")
)
