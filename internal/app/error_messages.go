// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both the
// auth client and the reference auth server.
//
// Msg* constants are written into HTTP response bodies and websocket error
// frames. Dialog* constants are the user-facing texts of the auth form.
// Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidToken is returned when a bearer token cannot be verified.
	MsgInvalidToken = "token is expired or invalid"

	// MsgUnknownMessageType is returned on the websocket when a frame carries
	// a type the server does not handle.
	MsgUnknownMessageType = "unknown message type"
)

// Dialog titles and texts of the auth form.
const (
	DialogInvalidEmailTitle = "Invalid email address"
	DialogInvalidEmailText  = "The value you entered is not a valid email address!"

	DialogInvalidCredentialsTitle = "Invalid credentials"
	DialogInvalidCredentialsText  = "The credentials you provided are invalid. Try again!"

	DialogUserExistsTitle = "User already exists"
	DialogUserExistsText  = "There's already another user with that name!"
)
