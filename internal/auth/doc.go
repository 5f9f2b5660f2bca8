// IIMS - IT Infrastructure Inventory and Monitoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/iims

/*
Package auth provides the demo login flow and the process-wide session.

Key Components:

  - CredentialTable: static accounts with bcrypt-hashed passwords
  - SessionHolder: the single shared session, guarded by a mutex
  - Service: Login, Logout, Status and the debug role override

Login Flow:

 1. useBiometric=true fails with ErrUnsupportedMethod before any lookup
 2. the username is matched case-insensitively; a miss or wrong password
    fails with ErrInvalidCredentials
 3. Admin accounts must also present the configured MFA code, otherwise
    ErrMFARequired is returned and the session is not touched
 4. the session becomes {role, username, authenticated} and a LOGIN entry
    is appended to the audit log

Demo Accounts:

	admin    / admin123 -> Admin     (MFA required)
	itstaff  / it123    -> IT Staff
	employee / emp123   -> Employee

Security:

  - Passwords are compared with bcrypt; unknown usernames are compared
    against a placeholder hash
  - MFA codes are compared in constant time
  - Credentials and MFA codes are never logged; usernames are masked by
    the security logger
*/
package auth
