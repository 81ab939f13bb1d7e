// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-auth-form/internal/app"
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/form"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/validators"
	"github.com/MKhiriev/go-auth-form/models"
)

// AuthCoordinator runs the submission protocol of the auth form: it
// validates the form, locks it, publishes exactly one [models.AuthRequest]
// and reconciles the form with the [models.AuthResult] that answers it.
//
// Methods take the current [form.State] and return the next one. They must
// be called from the UI goroutine. Responses to the published request are
// expected to come back through [bus.Bus.Post], never synchronously from the
// publish call.
type AuthCoordinator struct {
	publisher bus.Publisher
	dialogs   Dialogs
	navigator Navigator
	validate  func(string) bool

	inflight *models.AuthRequest

	logger *logger.Logger
}

// NewAuthCoordinator creates an [AuthCoordinator] that validates usernames
// with [validators.ValidateLocalPart].
func NewAuthCoordinator(publisher bus.Publisher, dialogs Dialogs, navigator Navigator, logger *logger.Logger) *AuthCoordinator {
	return &AuthCoordinator{
		publisher: publisher,
		dialogs:   dialogs,
		navigator: navigator,
		validate:  validators.ValidateLocalPart,
		logger:    logger,
	}
}

// Submit evaluates a submit attempt against s:
//   - while locked, nothing happens;
//   - a blank field gets a placeholder hint and nothing is sent;
//   - an invalid username raises the invalid-email dialog and nothing is sent;
//   - otherwise the form is locked and the request is published.
func (c *AuthCoordinator) Submit(s form.State) form.State {
	if s.Locked {
		c.logger.Debug().Msg("submit ignored: request in flight")
		return s
	}

	if form.HasBlank(s) {
		c.logger.Debug().Msg("submit rejected: blank field")
		return form.PromptBlank(s)
	}

	if !c.validate(s.Username) {
		c.logger.Debug().Str("username", s.Username).Msg("submit rejected: invalid local-part")
		c.dialogs.Error(app.DialogInvalidEmailTitle, app.DialogInvalidEmailText)
		return s
	}

	req := models.AuthRequest{
		Email:    s.Email(),
		Password: s.Password,
		IsLogin:  s.Mode.IsLogin(),
	}
	c.inflight = &req

	c.logger.Info().Str("email", req.Email).Bool("is_login", req.IsLogin).Msg("dispatching auth request")
	c.publisher.Publish(req)

	return form.Lock(s)
}

// HandleResult unlocks the form and applies res. On success the form is
// cleared, forced back to login mode and the destination is shown. On
// rejection the dialog matching the mode the request was issued in is
// shown and the field values are kept.
func (c *AuthCoordinator) HandleResult(s form.State, res models.AuthResult) form.State {
	isLogin := s.Mode.IsLogin()
	if c.inflight != nil {
		isLogin = c.inflight.IsLogin
		c.inflight = nil
	} else {
		c.logger.Warn().Str("status", res.Status.String()).Msg("auth result without a request in flight")
	}

	s = form.Reset(s)

	if res.IsOk() {
		c.logger.Info().Bool("is_login", isLogin).Msg("authenticated")
		s = form.Clear(s)
		s.Mode = models.ModeLogin
		c.navigator.ShowHome()
		return s
	}

	c.logger.Info().Bool("is_login", isLogin).Msg("auth request rejected")
	if isLogin {
		c.dialogs.Error(app.DialogInvalidCredentialsTitle, app.DialogInvalidCredentialsText)
	} else {
		c.dialogs.Error(app.DialogUserExistsTitle, app.DialogUserExistsText)
	}

	return s
}

// Pending returns the request currently in flight.
func (c *AuthCoordinator) Pending() (models.AuthRequest, bool) {
	if c.inflight == nil {
		return models.AuthRequest{}, false
	}
	return *c.inflight, true
}
