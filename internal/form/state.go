// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"github.com/MKhiriev/go-auth-form/internal/validators"
	"github.com/MKhiriev/go-auth-form/models"
)

// Placeholder hints shown on blank fields after a rejected submit.
const (
	HintUsername = "Enter your username"
	HintPassword = "Enter your password"
)

// Focus identifies the focused control of the form.
type Focus int

const (
	FocusUsername Focus = iota
	FocusPassword
	FocusDebug
	FocusSubmit
	FocusSwitch
)

// focusOrder is the tab order of the form controls.
var focusOrder = []Focus{FocusUsername, FocusPassword, FocusDebug, FocusSubmit, FocusSwitch}

// State is the complete state of one auth form instance.
//
// While Locked is true an authentication request is outstanding: the fields,
// the submit control and the mode switch are disabled, and no other request
// may be dispatched.
type State struct {
	Mode     models.Mode
	Username string
	Password string
	Locked   bool

	UsernameHint string
	PasswordHint string
	Focus        Focus

	// Debug is the UI-visible debug flag. DebugPending is set between a
	// toggle request and its acknowledgement; the toggle is disabled then.
	Debug        bool
	DebugPending bool
}

// New returns the initial state: login mode, empty and unlocked, focus on
// the username field.
func New() State {
	return State{Mode: models.ModeLogin, Focus: FocusUsername}
}

// Progress reports whether the indeterminate progress indicator is shown.
func (s State) Progress() bool {
	return s.Locked
}

// ControlsDisabled reports whether the fields, submit control and mode
// switch are disabled.
func (s State) ControlsDisabled() bool {
	return s.Locked
}

// DebugDisabled reports whether the debug toggle is disabled.
func (s State) DebugDisabled() bool {
	return s.DebugPending
}

// Title is the heading of the form for the current mode.
func (s State) Title() string {
	if s.Mode.IsLogin() {
		return "Log In"
	}
	return "Register"
}

// SwitchPrompt is the label linking to the other mode.
func (s State) SwitchPrompt() string {
	if s.Mode.IsLogin() {
		return "Don't have an account? Register now!"
	}
	return "Already have an account? Log In!"
}

// UsernameValid reports whether the username may be submitted as far as
// its grammar goes. Blank input counts as valid so that an untouched field
// is not flagged.
func (s State) UsernameValid() bool {
	return isBlank(s.Username) || validators.ValidateLocalPart(s.Username)
}

// Email is the credential candidate built from the username.
func (s State) Email() string {
	return models.EmailFor(s.Username)
}
