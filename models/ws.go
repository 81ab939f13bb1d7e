// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Websocket envelope types exchanged between the client transport and the
// server's /ws endpoint.
const (
	WsTypeAuth       = "auth"
	WsTypeAuthResult = "auth_result"
	WsTypeDebug      = "debug"
	WsTypeDebugAck   = "debug_ack"
	WsTypeError      = "error"
)

// WsEnvelope is the JSON frame used on the websocket connection. ID
// correlates a response with the request that caused it.
type WsEnvelope struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WsAuthResult is the payload of an auth_result frame.
type WsAuthResult struct {
	Ok    bool   `json:"ok"`
	Token string `json:"token,omitempty"`
}

// WsError is the payload of an error frame. Status mirrors the HTTP status
// the REST endpoint would have answered with.
type WsError struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}
