// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/gorilla/websocket"
)

const (
	pathWebSocket = "/ws"

	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
)

type wsAuthAdapter struct {
	url    string
	dialer *websocket.Dialer
	sessionStore

	mu      sync.Mutex
	conn    *websocket.Conn
	pending map[string]chan models.WsEnvelope
	closed  bool

	// writeMu serializes writers; gorilla allows one concurrent writer.
	writeMu sync.Mutex

	logger *logger.Logger
}

// NewWebSocketAuthAdapter constructs the websocket implementation of
// [AuthAdapter]. Nothing is dialed until [AuthAdapter.Open] or the first
// round trip. A lost connection is dialed again by the next round trip.
func NewWebSocketAuthAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address, "ws")
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	baseURL = strings.Replace(baseURL, "http://", "ws://", 1)
	baseURL = strings.Replace(baseURL, "https://", "wss://", 1)

	return &wsAuthAdapter{
		url: baseURL + pathWebSocket,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: adapterCfg.RequestTimeout,
		},
		pending: make(map[string]chan models.WsEnvelope),
		logger:  log,
	}, nil
}

// Open implements [AuthAdapter]. It dials the server and starts the reader.
// Calling Open on a live connection is a no-op. A failed Open is not fatal:
// the next round trip dials again.
func (a *wsAuthAdapter) Open(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	return a.dialLocked(ctx)
}

// dialLocked connects unless a connection is live. a.mu must be held.
func (a *wsAuthAdapter) dialLocked(ctx context.Context) error {
	if a.conn != nil {
		return nil
	}

	header := http.Header{}
	header.Set(utils.TraceIDHeader, utils.NewRequestID())

	conn, _, err := a.dialer.DialContext(ctx, a.url, header)
	if err != nil {
		return fmt.Errorf("dial %s: %w", a.url, err)
	}
	conn.SetReadLimit(maxMessageSize)

	a.conn = conn
	go a.readLoop(conn)

	a.logger.Info().Str("url", a.url).Msg("websocket connected")
	return nil
}

// Authenticate implements [AuthAdapter].
func (a *wsAuthAdapter) Authenticate(ctx context.Context, req models.AuthRequest) (models.AuthResult, error) {
	resp, err := a.roundTrip(ctx, models.WsTypeAuth, req)
	if err != nil {
		if isRejection(err) {
			return models.ErrResult(), nil
		}
		return models.AuthResult{}, err
	}
	if resp.Type != models.WsTypeAuthResult {
		return models.AuthResult{}, fmt.Errorf("%w: %q", ErrUnexpectedFrame, resp.Type)
	}

	var result models.WsAuthResult
	if err = json.Unmarshal(resp.Payload, &result); err != nil {
		return models.AuthResult{}, fmt.Errorf("decode auth result: %w", err)
	}
	if !result.Ok {
		return models.ErrResult(), nil
	}

	if err = a.store(result.Token); err != nil {
		return models.AuthResult{}, err
	}
	return models.OkResult(), nil
}

// SetDebug implements [AuthAdapter].
func (a *wsAuthAdapter) SetDebug(ctx context.Context, enabled bool) error {
	resp, err := a.roundTrip(ctx, models.WsTypeDebug, models.DebugToggleRequest{Enabled: enabled})
	if err != nil {
		return err
	}
	if resp.Type != models.WsTypeDebugAck {
		return fmt.Errorf("%w: %q", ErrUnexpectedFrame, resp.Type)
	}
	return nil
}

// Close implements [AuthAdapter]. It sends a close frame and drops the
// connection. Pending requests fail with [ErrNotConnected].
func (a *wsAuthAdapter) Close() error {
	a.mu.Lock()
	a.closed = true
	conn := a.conn
	a.conn = nil
	a.mu.Unlock()

	if conn == nil {
		return nil
	}

	a.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	a.writeMu.Unlock()

	return conn.Close()
}

func (a *wsAuthAdapter) roundTrip(ctx context.Context, frameType string, payload any) (models.WsEnvelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.WsEnvelope{}, fmt.Errorf("encode %s payload: %w", frameType, err)
	}

	id := utils.NewRequestID()
	ch := make(chan models.WsEnvelope, 1)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return models.WsEnvelope{}, ErrClosed
	}
	if err = a.dialLocked(ctx); err != nil {
		a.mu.Unlock()
		return models.WsEnvelope{}, fmt.Errorf("%w: %w", ErrNotConnected, err)
	}
	conn := a.conn
	a.pending[id] = ch
	a.mu.Unlock()

	defer a.forget(id)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(writeWait)
	}

	a.writeMu.Lock()
	_ = conn.SetWriteDeadline(deadline)
	err = conn.WriteJSON(models.WsEnvelope{Type: frameType, ID: id, Payload: body})
	a.writeMu.Unlock()
	if err != nil {
		return models.WsEnvelope{}, fmt.Errorf("write %s frame: %w", frameType, err)
	}

	select {
	case resp, ok := <-ch:
		if !ok {
			return models.WsEnvelope{}, fmt.Errorf("%w: connection lost", ErrNotConnected)
		}
		if resp.Type == models.WsTypeError {
			return models.WsEnvelope{}, decodeErrorFrame(resp)
		}
		return resp, nil
	case <-ctx.Done():
		return models.WsEnvelope{}, ctx.Err()
	}
}

func (a *wsAuthAdapter) readLoop(conn *websocket.Conn) {
	for {
		var env models.WsEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			a.drop(conn, err)
			return
		}

		a.mu.Lock()
		ch, ok := a.pending[env.ID]
		delete(a.pending, env.ID)
		a.mu.Unlock()

		if !ok {
			a.logger.Warn().Str("type", env.Type).Str("id", env.ID).Msg("websocket frame without pending request")
			continue
		}
		ch <- env
	}
}

// drop forgets conn and fails every request still waiting on it.
func (a *wsAuthAdapter) drop(conn *websocket.Conn, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn != nil && a.conn != conn {
		_ = conn.Close()
		return
	}
	a.conn = nil
	for id, ch := range a.pending {
		close(ch)
		delete(a.pending, id)
	}

	if !a.closed && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		a.logger.Warn().Err(err).Msg("websocket disconnected")
	}
	_ = conn.Close()
}

func (a *wsAuthAdapter) forget(id string) {
	a.mu.Lock()
	delete(a.pending, id)
	a.mu.Unlock()
}

func decodeErrorFrame(env models.WsEnvelope) error {
	var wsErr models.WsError
	if err := json.Unmarshal(env.Payload, &wsErr); err != nil {
		return errors.Join(ErrUnexpectedFrame, err)
	}
	return statusError(wsErr.Status, wsErr.Error)
}
