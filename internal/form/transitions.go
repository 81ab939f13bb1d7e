// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "strings"

// SwitchMode flips between login and registration and clears the form.
func SwitchMode(s State) State {
	s.Mode = s.Mode.Toggle()
	return Clear(s)
}

// Clear resets the form and empties both fields. Focus returns to the
// username field.
func Clear(s State) State {
	s = Reset(s)
	s.Username = ""
	s.Password = ""
	s.Focus = FocusUsername
	return s
}

// Reset hides placeholder hints, re-enables every control and hides the
// progress indicator. It is the unlock step and is safe to apply to a state
// that was never locked.
func Reset(s State) State {
	s = HideHints(s)
	s.Locked = false
	return s
}

// HideHints clears placeholder hints without touching the lock.
func HideHints(s State) State {
	s.UsernameHint = ""
	s.PasswordHint = ""
	return s
}

// Interact applies the side effect of clicking or typing in a field:
// a reset while unlocked, nothing while locked.
func Interact(s State) State {
	if s.Locked {
		return s
	}
	return Reset(s)
}

// Lock marks an authentication request as outstanding.
func Lock(s State) State {
	s.Locked = true
	return s
}

// PromptBlank sets a placeholder hint on every blank field.
func PromptBlank(s State) State {
	if isBlank(s.Username) {
		s.UsernameHint = HintUsername
	}
	if isBlank(s.Password) {
		s.PasswordHint = HintPassword
	}
	return s
}

// HasBlank reports whether either field is blank.
func HasBlank(s State) bool {
	return isBlank(s.Username) || isBlank(s.Password)
}

// WithUsername replaces the username value. Edits are ignored while locked.
func WithUsername(s State, value string) State {
	if s.Locked {
		return s
	}
	s.Username = value
	return s
}

// WithPassword replaces the password value. Edits are ignored while locked.
func WithPassword(s State, value string) State {
	if s.Locked {
		return s
	}
	s.Password = value
	return s
}

// FocusOn moves focus to f.
func FocusOn(s State, f Focus) State {
	s.Focus = f
	return s
}

// FocusNext moves focus to the next control in tab order, skipping controls
// that are disabled.
func FocusNext(s State) State {
	return moveFocus(s, 1)
}

// FocusPrev moves focus to the previous control in tab order, skipping
// controls that are disabled.
func FocusPrev(s State) State {
	return moveFocus(s, -1)
}

// ToggleDebug flips the debug flag and marks the toggle pending. The second
// return value is false, and the state unchanged, while a previous toggle is
// still unacknowledged.
func ToggleDebug(s State) (State, bool) {
	if s.DebugPending {
		return s, false
	}
	s.Debug = !s.Debug
	s.DebugPending = true
	return s, true
}

// AckDebug re-enables the debug toggle.
func AckDebug(s State) State {
	s.DebugPending = false
	return s
}

func moveFocus(s State, step int) State {
	idx := 0
	for i, f := range focusOrder {
		if f == s.Focus {
			idx = i
			break
		}
	}

	n := len(focusOrder)
	for range n {
		idx = (idx + step + n) % n
		if focusable(s, focusOrder[idx]) {
			s.Focus = focusOrder[idx]
			return s
		}
	}
	return s
}

func focusable(s State, f Focus) bool {
	switch f {
	case FocusDebug:
		return !s.DebugDisabled()
	default:
		return !s.ControlsDisabled()
	}
}

func isBlank(v string) bool {
	return strings.TrimSpace(v) == ""
}
