// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/form"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
)

// DebugToggle runs the two-phase debug handshake: the toggle control is
// disabled when a [models.DebugToggleRequest] is published and re-enabled
// only by the matching [models.DebugToggleAck].
type DebugToggle struct {
	publisher bus.Publisher
	logger    *logger.Logger
}

// NewDebugToggle creates a [DebugToggle] publishing through publisher.
func NewDebugToggle(publisher bus.Publisher, logger *logger.Logger) *DebugToggle {
	return &DebugToggle{publisher: publisher, logger: logger}
}

// Request flips the debug flag and publishes the request. While a previous
// request is unacknowledged the toggle is disabled and Request is inert.
func (d *DebugToggle) Request(s form.State) form.State {
	next, ok := form.ToggleDebug(s)
	if !ok {
		d.logger.Debug().Msg("debug toggle ignored: waiting for ack")
		return s
	}

	d.publisher.Publish(models.DebugToggleRequest{Enabled: next.Debug})
	return next
}

// Ack re-enables the toggle control.
func (d *DebugToggle) Ack(s form.State) form.State {
	if !s.DebugPending {
		d.logger.Warn().Msg("debug ack without a pending request")
	}
	return form.AckDebug(s)
}
