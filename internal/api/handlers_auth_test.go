// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/iims/internal/models"
)

func TestRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"explicit role", `{"role":"Employee"}`, `{"role":"Employee"}`},
		{"absent role defaults to Admin", `{}`, `{"role":"Admin"}`},
		{"empty body defaults to Admin", ``, `{"role":"Admin"}`},
		{"any string is accepted", `{"role":"Auditor"}`, `{"role":"Auditor"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t)
			rec := s.do(t, http.MethodPost, "/api/role", tt.body)
			expectStatus(t, rec, http.StatusOK)
			expectBody(t, rec, tt.want)

			rec = s.do(t, http.MethodGet, "/api/role", "")
			expectStatus(t, rec, http.StatusOK)
			expectBody(t, rec, tt.want)

			if s.sessions.Snapshot().Authenticated {
				t.Error("role override must not authenticate")
			}
		})
	}
}

func TestRole_InitiallyNull(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/role", "")
	expectStatus(t, rec, http.StatusOK)
	expectBody(t, rec, `{"role":null}`)
}

func TestRole_MalformedBody(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/api/role", `{"role":`)
	expectStatus(t, rec, http.StatusBadRequest)
	expectBody(t, rec, `{"error":"Invalid JSON body"}`)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
		wantAudit  int
	}{
		{
			name:       "it staff",
			body:       `{"username":"itstaff","password":"it123"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"role":"IT Staff","name":"IT Staff User"}`,
			wantAudit:  1,
		},
		{
			name:       "employee with mixed case username",
			body:       `{"username":"Employee","password":"emp123"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"role":"Employee","name":"Alice Johnson"}`,
			wantAudit:  1,
		},
		{
			name:       "admin with mfa",
			body:       `{"username":"admin","password":"admin123","mfaCode":"123456"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"role":"Admin","name":"Administrator"}`,
			wantAudit:  1,
		},
		{
			name:       "admin without mfa",
			body:       `{"username":"admin","password":"admin123"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"requiresMFA":true,"message":"MFA code required for Admin login. Use code: 123456"}`,
		},
		{
			name:       "admin with wrong mfa",
			body:       `{"username":"admin","password":"admin123","mfaCode":"000000"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"requiresMFA":true,"message":"MFA code required for Admin login. Use code: 123456"}`,
		},
		{
			name:       "wrong password",
			body:       `{"username":"itstaff","password":"nope"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Invalid username or password"}`,
		},
		{
			name:       "missing fields",
			body:       `{}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Invalid username or password"}`,
		},
		{
			name:       "biometric with valid credentials",
			body:       `{"username":"itstaff","password":"it123","useBiometric":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Biometric authentication is not yet implemented. Please use password login."}`,
		},
		{
			name:       "biometric without credentials",
			body:       `{"useBiometric":true}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Biometric authentication is not yet implemented. Please use password login."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t)
			rec := s.do(t, http.MethodPost, "/api/auth/login", tt.body)
			expectStatus(t, rec, tt.wantStatus)
			expectBody(t, rec, tt.wantBody)

			if n := s.audit.Len(); n != tt.wantAudit {
				t.Errorf("audit entries = %d, want %d", n, tt.wantAudit)
			}
			if authenticated := s.sessions.Snapshot().Authenticated; authenticated != (tt.wantStatus == http.StatusOK) {
				t.Errorf("authenticated = %v after status %d", authenticated, tt.wantStatus)
			}
		})
	}
}

func TestLogoutAndStatus(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/auth/status", "")
	expectBody(t, rec, `{"authenticated":false,"role":null,"user":null}`)

	rec = s.do(t, http.MethodPost, "/api/auth/login", `{"username":"itstaff","password":"it123"}`)
	expectStatus(t, rec, http.StatusOK)

	rec = s.do(t, http.MethodGet, "/api/auth/status", "")
	expectBody(t, rec, `{"authenticated":true,"role":"IT Staff","user":"itstaff"}`)

	rec = s.do(t, http.MethodPost, "/api/auth/logout", "")
	expectStatus(t, rec, http.StatusOK)
	expectBody(t, rec, `{"success":true}`)

	rec = s.do(t, http.MethodGet, "/api/auth/status", "")
	expectBody(t, rec, `{"authenticated":false,"role":null,"user":null}`)

	// A second logout is a harmless no-op.
	rec = s.do(t, http.MethodPost, "/api/auth/logout", "")
	expectStatus(t, rec, http.StatusOK)

	got := auditActions(s)
	want := []string{"LOGIN", "LOGOUT"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("audit actions = %v, want %v", got, want)
	}
	if e := s.audit.List()[1]; models.StringValue(e.UserRole) != models.RoleITStaff || e.Details != "User itstaff logged out" {
		t.Errorf("logout entry = %+v", e)
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/api/auth/login", `not json`)
	expectStatus(t, rec, http.StatusBadRequest)
	expectBody(t, rec, `{"error":"Invalid JSON body"}`)
}
