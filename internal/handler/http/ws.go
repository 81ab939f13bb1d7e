package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/app"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/gorilla/websocket"
)

const (
	wsReadLimit = 64 * 1024
	wsWriteWait = 10 * time.Second
)

// serveWS upgrades the connection and answers auth and debug frames one at
// a time. Every reply carries the id of the frame it answers.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	log.Debug().Str("remote", r.RemoteAddr).Msg("websocket connected")

	for {
		var frame models.WsEnvelope
		if err = conn.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("websocket read finished")
			}
			return
		}

		reply := h.handleFrame(r, frame)
		reply.ID = frame.ID

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err = conn.WriteJSON(reply); err != nil {
			log.Err(err).Str("type", reply.Type).Msg("websocket write failed")
			return
		}
	}
}

func (h *Handler) handleFrame(r *http.Request, frame models.WsEnvelope) models.WsEnvelope {
	log := logger.FromRequest(r)
	ctx := r.Context()

	switch frame.Type {
	case models.WsTypeAuth:
		var req models.AuthRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return errorFrame(http.StatusBadRequest, app.MsgInvalidDataProvided)
		}

		creds := models.Credentials{Email: req.Email, Password: req.Password}
		_, token, err := h.authenticate(ctx, creds, req.IsLogin)
		if err != nil {
			status, msg := responseFromError(err)
			log.Err(err).Bool("is_login", req.IsLogin).Int("status", status).Msg("authentication failed")
			if isRejection(status) {
				return payloadFrame(models.WsTypeAuthResult, models.WsAuthResult{Ok: false})
			}
			return errorFrame(status, msg)
		}
		return payloadFrame(models.WsTypeAuthResult, models.WsAuthResult{Ok: true, Token: token.SignedString})

	case models.WsTypeDebug:
		var req models.DebugToggleRequest
		if err := json.Unmarshal(frame.Payload, &req); err != nil {
			return errorFrame(http.StatusBadRequest, app.MsgInvalidDataProvided)
		}
		h.services.DebugService.SetDebug(ctx, req.Enabled)
		return payloadFrame(models.WsTypeDebugAck, req)

	default:
		log.Warn().Str("type", frame.Type).Msg("unknown websocket frame")
		return errorFrame(http.StatusBadRequest, app.MsgUnknownMessageType)
	}
}

func payloadFrame(frameType string, payload any) models.WsEnvelope {
	body, err := json.Marshal(payload)
	if err != nil {
		return errorFrame(http.StatusInternalServerError, app.MsgInternalServerError)
	}
	return models.WsEnvelope{Type: frameType, Payload: body}
}

func errorFrame(status int, msg string) models.WsEnvelope {
	body, _ := json.Marshal(models.WsError{Status: status, Error: msg})
	return models.WsEnvelope{Type: models.WsTypeError, Payload: body}
}
