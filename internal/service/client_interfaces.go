// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_collaborators_mock.go -package=mock

// Dialogs shows blocking, user-facing messages on behalf of the auth form.
type Dialogs interface {
	// Error shows an error dialog with the given title and text.
	Error(title, text string)
}

// Navigator hands control to the view shown after a successful
// authentication.
type Navigator interface {
	// ShowHome replaces the auth form with the authenticated destination.
	ShowHome()
}
