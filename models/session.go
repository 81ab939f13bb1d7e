// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session describes the account the transport authenticated last.
// It is filled by the transport after an accepted login or registration and
// read by the post-authentication destination.
type Session struct {
	Email  string
	UserID int64
	Token  string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
