// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is a value carried by the event bus between the auth controller
// and its collaborators (transport, debug subsystem, navigation).
//
// The interface is sealed: only the types declared in this file implement
// it, so every message shape is known at compile time.
type Message interface {
	message()
}

// SwitchPage asks the auth form to flip between login and registration.
type SwitchPage struct{}

// DebugToggleRequest asks the debug subsystem to change verbosity.
type DebugToggleRequest struct {
	Enabled bool `json:"enabled"`
}

// DebugToggleAck confirms that the last [DebugToggleRequest] was applied.
type DebugToggleAck struct{}

// AuthRequest carries credentials to the remote authentication service.
// It is a value type and is never modified after it has been published.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsLogin  bool   `json:"is_login"`
}

// AuthStatus is the outcome tag of an authentication round trip.
type AuthStatus int

const (
	// AuthOk means the service accepted the credentials.
	AuthOk AuthStatus = iota
	// AuthErr means the service rejected the request.
	AuthErr
)

func (s AuthStatus) String() string {
	if s == AuthOk {
		return "ok"
	}
	return "err"
}

// AuthResult is the outcome of the most recent [AuthRequest].
type AuthResult struct {
	Status AuthStatus `json:"status"`
}

// OkResult returns an accepted [AuthResult].
func OkResult() AuthResult { return AuthResult{Status: AuthOk} }

// ErrResult returns a rejected [AuthResult].
func ErrResult() AuthResult { return AuthResult{Status: AuthErr} }

// IsOk reports whether the service accepted the request.
func (r AuthResult) IsOk() bool { return r.Status == AuthOk }

func (SwitchPage) message()         {}
func (DebugToggleRequest) message() {}
func (DebugToggleAck) message()     {}
func (AuthRequest) message()        {}
func (AuthResult) message()         {}
