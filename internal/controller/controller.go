// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller owns the auth form.
//
// A [Controller] holds the current [form.State], routes user input to the
// pure transitions of package form and to the submission and debug
// protocols of package service, and reacts to bus events. All of its
// methods, and the bus handlers it registers, run on the UI goroutine.
package controller

import (
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/form"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/service"
	"github.com/MKhiriev/go-auth-form/models"
)

// Controller is the auth form controller.
type Controller struct {
	bus         *bus.Bus
	coordinator *service.AuthCoordinator
	debug       *service.DebugToggle

	state         form.State
	unsubscribers []func()

	logger *logger.Logger
}

// New creates a controller in the initial state and subscribes it to
// [models.SwitchPage], [models.AuthResult] and [models.DebugToggleAck].
func New(b *bus.Bus, dialogs service.Dialogs, navigator service.Navigator, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}

	c := &Controller{
		bus:         b,
		coordinator: service.NewAuthCoordinator(b, dialogs, navigator, log),
		debug:       service.NewDebugToggle(b, log),
		state:       form.New(),
		logger:      log,
	}

	c.unsubscribers = append(c.unsubscribers,
		bus.Subscribe(b, c.onSwitchPage),
		bus.Subscribe(b, c.onAuthResult),
		bus.Subscribe(b, c.onDebugToggleAck),
	)

	return c
}

// State returns a copy of the current form state.
func (c *Controller) State() form.State {
	return c.state
}

// Close removes the bus subscriptions. The controller must not be used
// afterwards.
func (c *Controller) Close() {
	for _, unsubscribe := range c.unsubscribers {
		unsubscribe()
	}
	c.unsubscribers = nil
}

// SetUsername stores a new username value typed by the user. Typing counts
// as a field interaction.
func (c *Controller) SetUsername(value string) {
	c.state = form.Interact(form.WithUsername(c.state, value))
}

// SetPassword stores a new password value typed by the user. Typing counts
// as a field interaction.
func (c *Controller) SetPassword(value string) {
	c.state = form.Interact(form.WithPassword(c.state, value))
}

// FieldInteraction applies a click on a field.
func (c *Controller) FieldInteraction() {
	c.state = form.Interact(c.state)
}

// Submit activates the submit control.
func (c *Controller) Submit() {
	c.state = c.coordinator.Submit(c.state)
}

// SwitchPage activates the mode-switch prompt. The prompt is disabled while
// a request is in flight.
func (c *Controller) SwitchPage() {
	if c.state.ControlsDisabled() {
		c.logger.Debug().Msg("switch page ignored: controls disabled")
		return
	}
	c.bus.Publish(models.SwitchPage{})
}

// ToggleDebug activates the debug toggle.
func (c *Controller) ToggleDebug() {
	c.state = c.debug.Request(c.state)
}

// EnterOnUsername moves focus to the password field without submitting.
// The field is inert while a request is in flight.
func (c *Controller) EnterOnUsername() {
	if c.state.Locked {
		return
	}
	c.state = form.FocusOn(form.Interact(c.state), form.FocusPassword)
}

// EnterOnPassword submits the form and moves focus to the submit control.
func (c *Controller) EnterOnPassword() {
	c.state = form.Interact(c.state)
	c.Submit()
	c.state = form.FocusOn(c.state, form.FocusSubmit)
}

// TabOnSubmit clears lingering placeholder hints. The lock is untouched.
func (c *Controller) TabOnSubmit() {
	c.state = form.HideHints(c.state)
}

// Enter routes the Enter key to the focused control.
func (c *Controller) Enter() {
	switch c.state.Focus {
	case form.FocusUsername:
		c.EnterOnUsername()
	case form.FocusPassword:
		c.EnterOnPassword()
	case form.FocusSubmit:
		c.Submit()
	case form.FocusSwitch:
		c.SwitchPage()
	case form.FocusDebug:
		c.ToggleDebug()
	}
}

// Space routes the space key. Only the debug toggle reacts to it; in the
// text fields space is ordinary input.
func (c *Controller) Space() {
	if c.state.Focus == form.FocusDebug {
		c.ToggleDebug()
	}
}

// Tab moves focus forward, or backward when reverse is set.
func (c *Controller) Tab(reverse bool) {
	if c.state.Focus == form.FocusSubmit {
		c.TabOnSubmit()
	}
	if reverse {
		c.state = form.FocusPrev(c.state)
		return
	}
	c.state = form.FocusNext(c.state)
}

// Focus moves focus to f. Clicking a text field also counts as a field
// interaction.
func (c *Controller) Focus(f form.Focus) {
	c.state = form.FocusOn(c.state, f)
	if f == form.FocusUsername || f == form.FocusPassword {
		c.FieldInteraction()
	}
}

// Click applies a mouse click on control f: it takes focus and buttons are
// activated. Clicks on disabled controls are ignored.
func (c *Controller) Click(f form.Focus) {
	if f == form.FocusDebug {
		if c.state.DebugDisabled() {
			return
		}
		c.Focus(f)
		c.ToggleDebug()
		return
	}

	if c.state.ControlsDisabled() {
		c.logger.Debug().Int("control", int(f)).Msg("click ignored: controls disabled")
		return
	}
	c.Focus(f)
	switch f {
	case form.FocusSubmit:
		c.Submit()
	case form.FocusSwitch:
		c.SwitchPage()
	}
}

// Restart returns the form to a blank login page after a logout. The debug
// toggle keeps its state since the logger level outlives the session.
func (c *Controller) Restart() {
	c.state = form.Clear(c.state)
	c.state.Mode = models.ModeLogin
	c.logger.Debug().Bool("debug", c.state.Debug).Msg("form restarted")
}

// Pending returns the authentication request in flight, if any.
func (c *Controller) Pending() (models.AuthRequest, bool) {
	return c.coordinator.Pending()
}

func (c *Controller) onSwitchPage(models.SwitchPage) {
	c.state = form.SwitchMode(c.state)
	c.logger.Debug().Str("mode", c.state.Mode.String()).Msg("mode switched")
}

func (c *Controller) onAuthResult(res models.AuthResult) {
	c.state = c.coordinator.HandleResult(c.state, res)
}

func (c *Controller) onDebugToggleAck(models.DebugToggleAck) {
	c.state = c.debug.Ack(c.state)
}
