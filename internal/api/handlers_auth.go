// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/iims/internal/auth"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/models"
	"github.com/tomtom215/iims/internal/validation"
)

// Login response messages.
const (
	msgBiometricUnsupported = "Biometric authentication is not yet implemented. Please use password login."
	msgInvalidCredentials   = "Invalid username or password"
	msgMFARequiredFormat    = "MFA code required for Admin login. Use code: "
)

// RoleResponse reports the current session role.
type RoleResponse struct {
	Role *string `json:"role"`
}

// RoleRequest overrides the session role. An absent role means Admin.
type RoleRequest struct {
	Role *string `json:"role"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Username     string  `json:"username" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	MFACode      *string `json:"mfaCode,omitempty"`
	UseBiometric bool    `json:"useBiometric,omitempty"`
}

// LoginResponse is returned for every login outcome.
type LoginResponse struct {
	Success     bool   `json:"success"`
	Role        string `json:"role,omitempty"`
	Name        string `json:"name,omitempty"`
	RequiresMFA bool   `json:"requiresMFA,omitempty"`
	Message     string `json:"message,omitempty"`
}

// LogoutResponse is returned by logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// AuthStatusResponse mirrors the session.
type AuthStatusResponse struct {
	Authenticated bool    `json:"authenticated"`
	Role          *string `json:"role"`
	User          *string `json:"user"`
}

// GetRole returns the current session role
//
// @Summary Get session role
// @Description Returns the role of the single process-wide session, or null when logged out.
// @Tags Session
// @Produce json
// @Success 200 {object} RoleResponse
// @Router /role [get]
func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RoleResponse{Role: h.session().Role})
}

// SetRole overrides the session role without changing authentication
//
// @Summary Override session role
// @Description Debug override of the session role. Defaults to Admin when the role key is absent.
// @Tags Session
// @Accept json
// @Produce json
// @Param body body RoleRequest false "Role override"
// @Success 200 {object} RoleResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON body"
// @Router /role [post]
func (h *Handler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := decodeInto(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	role := models.RoleAdmin
	if req.Role != nil {
		role = *req.Role
	}
	session := h.deps.Auth.SetRole(role)
	writeJSON(w, http.StatusOK, RoleResponse{Role: session.Role})
}

// Login authenticates against the static credential table
//
// @Summary Log in
// @Description Password login. Admin accounts additionally require the MFA code. Biometric login is not supported.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login succeeded"
// @Failure 400 {object} LoginResponse "Biometric login requested"
// @Failure 401 {object} LoginResponse "Invalid credentials or MFA required"
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeInto(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if !req.UseBiometric {
		if verr := validation.ValidateStruct(&req); verr != nil {
			metrics.RecordLoginAttempt("invalid_credentials")
			writeJSON(w, http.StatusUnauthorized, LoginResponse{Message: msgInvalidCredentials})
			return
		}
	}

	result, err := h.deps.Auth.Login(r.Context(), auth.LoginRequest{
		Username:     req.Username,
		Password:     req.Password,
		MFACode:      req.MFACode,
		UseBiometric: req.UseBiometric,
		ClientIP:     clientIP(r),
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, LoginResponse{Success: true, Role: result.Role, Name: result.Name})
	case errors.Is(err, auth.ErrUnsupportedMethod):
		writeJSON(w, http.StatusBadRequest, LoginResponse{Message: msgBiometricUnsupported})
	case errors.Is(err, auth.ErrMFARequired):
		writeJSON(w, http.StatusUnauthorized, LoginResponse{
			RequiresMFA: true,
			Message:     msgMFARequiredFormat + h.deps.Auth.MFAHint(),
		})
	default:
		writeJSON(w, http.StatusUnauthorized, LoginResponse{Message: msgInvalidCredentials})
	}
}

// Logout clears the session
//
// @Summary Log out
// @Description Clears the session. Logging out while logged out is a no-op.
// @Tags Auth
// @Produce json
// @Success 200 {object} LogoutResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.deps.Auth.Logout(r.Context())
	writeJSON(w, http.StatusOK, LogoutResponse{Success: true})
}

// AuthStatus reports the current session
//
// @Summary Authentication status
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthStatusResponse
// @Router /auth/status [get]
func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	s := h.session()
	writeJSON(w, http.StatusOK, AuthStatusResponse{
		Authenticated: s.Authenticated,
		Role:          s.Role,
		User:          s.User,
	})
}
