// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/tomtom215/iims/internal/audit"
	"github.com/tomtom215/iims/internal/logging"
	"github.com/tomtom215/iims/internal/metrics"
	"github.com/tomtom215/iims/internal/models"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	MFACode      *string `json:"mfaCode,omitempty"`
	UseBiometric bool    `json:"useBiometric,omitempty"`

	// ClientIP is used for security logging only.
	ClientIP string `json:"-"`
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// Service implements login, logout and status over the shared session.
type Service struct {
	credentials *CredentialTable
	sessions    *SessionHolder
	audit       audit.Recorder
	mfaCode     string
	security    *logging.SecurityLogger
}

// NewService creates the auth service. mfaCode is the fixed second factor
// required for Admin logins.
func NewService(credentials *CredentialTable, sessions *SessionHolder, recorder audit.Recorder, mfaCode string) *Service {
	return &Service{
		credentials: credentials,
		sessions:    sessions,
		audit:       recorder,
		mfaCode:     mfaCode,
		security:    logging.NewSecurityLogger(),
	}
}

// Login validates credentials and, for Admin, the MFA code. On success the
// session is replaced and a LOGIN entry is appended. On any failure the
// session is left untouched.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	if req.UseBiometric {
		metrics.RecordLoginAttempt("unsupported_method")
		s.security.LogLoginFailure(req.Username, req.ClientIP, "biometric")
		return LoginResult{}, ErrUnsupportedMethod
	}

	acct, ok := s.credentials.Verify(req.Username, req.Password)
	if !ok {
		metrics.RecordLoginAttempt("invalid_credentials")
		s.security.LogLoginFailure(req.Username, req.ClientIP, "invalid_credentials")
		return LoginResult{}, ErrInvalidCredentials
	}

	if acct.Role == models.RoleAdmin && !s.validMFA(req.MFACode) {
		metrics.RecordLoginAttempt("mfa_required")
		s.security.LogLoginFailure(acct.Username, req.ClientIP, "mfa_required")
		return LoginResult{}, ErrMFARequired
	}

	s.sessions.Establish(acct.Role, acct.Username)
	role := acct.Role
	s.audit.Log(ctx, audit.ActionLogin, fmt.Sprintf("User %s logged in", acct.Username), &role)

	metrics.RecordLoginAttempt("success")
	s.security.LogLoginSuccess(acct.Username, acct.Role, req.ClientIP)
	return LoginResult{Role: acct.Role, Name: acct.DisplayName}, nil
}

func (s *Service) validMFA(code *string) bool {
	if code == nil {
		return false
	}
	if *code == "" || s.mfaCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*code), []byte(s.mfaCode)) == 1
}

// Logout clears the session. A LOGOUT entry is appended only when a user
// was logged in, so repeated logouts are harmless no-ops.
func (s *Service) Logout(ctx context.Context) {
	prev := s.sessions.Clear()
	if prev.User == nil {
		return
	}
	s.audit.Log(ctx, audit.ActionLogout, fmt.Sprintf("User %s logged out", *prev.User), prev.Role)
	s.security.LogLogout(*prev.User, prev.RoleOr(""))
}

// Status returns the current session without side effects.
func (s *Service) Status() models.Session {
	return s.sessions.Snapshot()
}

// SetRole overrides the session role without touching authentication.
func (s *Service) SetRole(role string) models.Session {
	s.sessions.SetRole(role)
	return s.sessions.Snapshot()
}

// MFAHint returns the code shown to users in the MFA challenge message.
func (s *Service) MFAHint() string {
	return s.mfaCode
}
