// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mode selects what the auth form does on submit: authenticate an existing
// account or create a new one. The zero value is [ModeLogin].
type Mode int

const (
	// ModeLogin authenticates an existing account.
	ModeLogin Mode = iota
	// ModeRegister creates a new account.
	ModeRegister
)

// DomainSuffix is appended to the local-part entered by the user when the
// credential candidate is built. The user never types it.
const DomainSuffix = "@auth.gr"

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeLogin {
		return ModeRegister
	}
	return ModeLogin
}

// IsLogin reports whether m is [ModeLogin].
func (m Mode) IsLogin() bool {
	return m == ModeLogin
}

func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeRegister:
		return "register"
	default:
		return "unknown"
	}
}

// EmailFor builds the full address for a local-part.
func EmailFor(localPart string) string {
	return localPart + DomainSuffix
}
