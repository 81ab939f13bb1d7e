// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains the client transports that carry authentication
// and debug requests to the auth server.
//
// Two implementations of [AuthAdapter] exist: a REST one built on resty and
// a websocket one built on gorilla/websocket. [New] picks one from the
// client configuration.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_adapter_mock.go -package=mock

// AuthAdapter is the client side of the auth server protocol.
//
// Authenticate returns an Ok result when the server accepted the
// credentials and an Err result when it rejected them. A non-nil error means
// the round trip itself failed (network, timeout, unexpected status).
type AuthAdapter interface {
	// Open prepares the connection. It may be called from a background
	// goroutine while the UI is already running.
	Open(ctx context.Context) error
	Authenticate(ctx context.Context, req models.AuthRequest) (models.AuthResult, error)
	// SetDebug forwards the debug verbosity change to the server.
	SetDebug(ctx context.Context, enabled bool) error
	// Session returns the account of the last accepted request.
	Session() models.Session
	Close() error
}
