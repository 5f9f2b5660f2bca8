// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/iims/internal/models"
)

// Credential describes one account before its password is hashed.
type Credential struct {
	Username    string
	Password    string
	Role        string
	DisplayName string
}

// Account is a resolved account. The password hash never leaves the table.
type Account struct {
	Username    string
	Role        string
	DisplayName string
}

type account struct {
	Account
	passwordHash []byte
}

// CredentialTable is the static user table. Usernames are matched
// case-insensitively and passwords are bcrypt-hashed at construction.
type CredentialTable struct {
	accounts  map[string]account
	dummyHash []byte
}

// DemoCredentials returns the three built-in demo accounts.
// employeeName is the display name of the Employee account, which is also
// the identity its asset listing is filtered by.
func DemoCredentials(employeeName string) []Credential {
	return []Credential{
		{Username: "admin", Password: "admin123", Role: models.RoleAdmin, DisplayName: "Administrator"},
		{Username: "itstaff", Password: "it123", Role: models.RoleITStaff, DisplayName: "IT Staff User"},
		{Username: "employee", Password: "emp123", Role: models.RoleEmployee, DisplayName: employeeName},
	}
}

// NewCredentialTable hashes every credential with the given bcrypt cost.
// A cost of 0 uses bcrypt.DefaultCost.
func NewCredentialTable(cost int, creds ...Credential) (*CredentialTable, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	t := &CredentialTable{accounts: make(map[string]account, len(creds))}
	for _, c := range creds {
		if c.Username == "" {
			return nil, fmt.Errorf("username is required")
		}
		if !models.IsValidRole(c.Role) {
			return nil, fmt.Errorf("account %q: unknown role %q", c.Username, c.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %q: %w", c.Username, err)
		}
		key := strings.ToLower(c.Username)
		t.accounts[key] = account{
			Account:      Account{Username: key, Role: c.Role, DisplayName: c.DisplayName},
			passwordHash: hash,
		}
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("unused-placeholder"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder: %w", err)
	}
	t.dummyHash = dummy
	return t, nil
}

// Verify returns the account when username and password match.
// Unknown usernames still pay for one bcrypt comparison.
func (t *CredentialTable) Verify(username, password string) (Account, bool) {
	acct, ok := t.accounts[strings.ToLower(username)]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(t.dummyHash, []byte(password))
		return Account{}, false
	}
	if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) != nil {
		return Account{}, false
	}
	return acct.Account, true
}

// Len returns the number of accounts.
func (t *CredentialTable) Len() int {
	return len(t.accounts)
}
