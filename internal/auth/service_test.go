// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/iims/internal/audit"
	"github.com/tomtom215/iims/internal/models"
)

const testMFACode = "123456"

func newTestService(t *testing.T) (*Service, *SessionHolder, *audit.MemoryStore) {
	t.Helper()

	table, err := NewCredentialTable(bcrypt.MinCost, DemoCredentials("Alice Johnson")...)
	if err != nil {
		t.Fatalf("NewCredentialTable() error = %v", err)
	}
	sessions := NewSessionHolder()
	store := audit.NewMemoryStore()
	return NewService(table, sessions, audit.NewLogger(store), testMFACode), sessions, store
}

func code(s string) *string { return &s }

func TestLogin_NonPrivilegedAccounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		username string
		password string
		wantRole string
		wantName string
	}{
		{"itstaff", "it123", models.RoleITStaff, "IT Staff User"},
		{"employee", "emp123", models.RoleEmployee, "Alice Johnson"},
		{"EMPLOYEE", "emp123", models.RoleEmployee, "Alice Johnson"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			t.Parallel()

			svc, _, store := newTestService(t)
			res, err := svc.Login(context.Background(), LoginRequest{Username: tt.username, Password: tt.password})
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if res.Role != tt.wantRole || res.Name != tt.wantName {
				t.Errorf("Login() = %+v", res)
			}

			status := svc.Status()
			if !status.Authenticated || models.StringValue(status.Role) != tt.wantRole {
				t.Errorf("status = %+v", status)
			}
			if got := models.StringValue(status.User); got != "itstaff" && got != "employee" {
				t.Errorf("session user should be the lower-cased username, got %q", got)
			}
			if store.Count(audit.ActionLogin) != 1 {
				t.Error("successful login must append one LOGIN entry")
			}
		})
	}
}

func TestLogin_AdminMFA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mfa     *string
		wantErr error
	}{
		{"missing code", nil, ErrMFARequired},
		{"empty code", code(""), ErrMFARequired},
		{"wrong code", code("000000"), ErrMFARequired},
		{"padded code", code(" 123456\t"), ErrMFARequired},
		{"correct code", code(testMFACode), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _, store := newTestService(t)
			res, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123", MFACode: tt.mfa})

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			status := svc.Status()
			if tt.wantErr != nil {
				if status.Authenticated || status.Role != nil {
					t.Errorf("failed MFA must not touch the session: %+v", status)
				}
				if store.Len() != 0 {
					t.Error("failed login must not append")
				}
				return
			}
			if res.Role != models.RoleAdmin || res.Name != "Administrator" {
				t.Errorf("Login() = %+v", res)
			}
			if !status.Authenticated {
				t.Error("expected authenticated session")
			}
		})
	}
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     LoginRequest
		wantErr error
	}{
		{"unknown user", LoginRequest{Username: "mallory", Password: "x"}, ErrInvalidCredentials},
		{"wrong password", LoginRequest{Username: "itstaff", Password: "nope"}, ErrInvalidCredentials},
		{"empty", LoginRequest{}, ErrInvalidCredentials},
		{"biometric with valid credentials", LoginRequest{Username: "itstaff", Password: "it123", UseBiometric: true}, ErrUnsupportedMethod},
		{"biometric without credentials", LoginRequest{UseBiometric: true}, ErrUnsupportedMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _, store := newTestService(t)
			_, err := svc.Login(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if svc.Status().Authenticated || store.Len() != 0 {
				t.Error("failed login must leave session and audit log untouched")
			}
		})
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	svc, _, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, LoginRequest{Username: "itstaff", Password: "it123"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	svc.Logout(ctx)
	status := svc.Status()
	if status.Authenticated || status.Role != nil || status.User != nil {
		t.Errorf("status after logout = %+v", status)
	}

	entries := store.List()
	last := entries[len(entries)-1]
	if last.Action != "LOGOUT" || last.Details != "User itstaff logged out" || models.StringValue(last.UserRole) != models.RoleITStaff {
		t.Errorf("unexpected logout entry: %+v", last)
	}

	svc.Logout(ctx)
	if store.Count(audit.ActionLogout) != 1 {
		t.Error("second logout must not append")
	}
}

func TestSetRole(t *testing.T) {
	t.Parallel()

	svc, _, store := newTestService(t)
	status := svc.SetRole(models.RoleEmployee)

	if models.StringValue(status.Role) != models.RoleEmployee {
		t.Errorf("role = %v", status.Role)
	}
	if status.Authenticated || status.User != nil {
		t.Error("SetRole must not authenticate")
	}

	svc.Logout(context.Background())
	if store.Len() != 0 {
		t.Error("logout without a user must not append")
	}
}

func TestNewCredentialTable_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewCredentialTable(bcrypt.MinCost, Credential{Username: "", Password: "x", Role: models.RoleAdmin}); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := NewCredentialTable(bcrypt.MinCost, Credential{Username: "root", Password: "x", Role: "Root"}); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestSessionHolder_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	h := NewSessionHolder()
	h.Establish(models.RoleAdmin, "admin")

	snap := h.Snapshot()
	*snap.Role = "Employee"

	if got := models.StringValue(h.Snapshot().Role); got != models.RoleAdmin {
		t.Errorf("snapshot mutation leaked into holder: %q", got)
	}
}
