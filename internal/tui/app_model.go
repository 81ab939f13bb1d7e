// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/controller"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageAuth page = iota
	pageHome
)

// RootModel is the TUI router:
//  1. keeps the active page (auth form or home);
//  2. drains the bus inbox and republishes each message on the UI goroutine;
//  3. shows error dialogs and the build info window over the page;
//  4. handles global Ctrl+C quit.
//
// RootModel is the [service.Dialogs] and [service.Navigator] of the auth
// controller it creates.
type RootModel struct {
	bus       *bus.Bus
	sessions  SessionSource
	buildInfo models.AppBuildInfo

	current page
	auth    *authPage
	home    homePage

	dialog        dialogModel
	showBuildInfo bool
	quitByUser    bool

	logger *logger.Logger
}

// NewRootModel creates the router with a fresh auth page. The auth
// controller lives as long as the model; a logout restarts its form.
func NewRootModel(b *bus.Bus, sessions SessionSource, buildInfo models.AppBuildInfo, log *logger.Logger) *RootModel {
	if log == nil {
		log = logger.Nop()
	}

	r := &RootModel{
		bus:       b,
		sessions:  sessions,
		buildInfo: buildInfo,
		home:      homePage{sessions: sessions},
		logger:    log,
	}
	r.auth = r.newAuth()
	return r
}

func (r *RootModel) Init() tea.Cmd {
	return tea.Batch(waitForInbound(r.bus), r.auth.Init())
}

func (r *RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inboundMsg:
		r.bus.Publish(msg.Message)
		r.auth.sync()
		return r, waitForInbound(r.bus)
	case tea.KeyMsg:
		return r.handleKey(msg)
	case tea.MouseMsg:
		if r.current == pageAuth && !r.dialog.visible() && !r.showBuildInfo {
			r.auth.handleMouse(msg)
		}
		return r, nil
	}

	if r.current == pageAuth {
		return r, r.auth.Update(msg)
	}
	return r, nil
}

func (r *RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		r.quitByUser = true
		return r, tea.Quit
	}

	if r.dialog.visible() {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			r.dialog = dialogModel{}
		}
		return r, nil
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			r.showBuildInfo = false
		}
		return r, nil
	}
	if key.Matches(msg, keys.info) {
		r.showBuildInfo = true
		return r, nil
	}

	if r.current == pageHome {
		switch {
		case key.Matches(msg, keys.logout):
			r.logger.Info().Msg("logged out")
			r.auth.ctrl.Restart()
			r.auth.sync()
			r.current = pageAuth
			return r, r.auth.Init()
		case key.Matches(msg, keys.leave):
			r.quitByUser = true
			return r, tea.Quit
		}
		return r, nil
	}

	return r, r.auth.Update(msg)
}

func (r *RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var body string
	switch r.current {
	case pageHome:
		body = r.home.View()
	default:
		body = r.auth.View()
	}

	if r.dialog.visible() {
		body += "\n\n" + r.dialog.View()
	}

	return appStyle.Render(body)
}

// Error implements [service.Dialogs].
func (r *RootModel) Error(title, text string) {
	r.dialog = dialogModel{title: title, text: text}
}

// ShowHome implements [service.Navigator].
func (r *RootModel) ShowHome() {
	r.current = pageHome
}

// Close releases the auth controller.
func (r *RootModel) Close() {
	r.auth.ctrl.Close()
}

func (r *RootModel) newAuth() *authPage {
	return newAuthPage(controller.New(r.bus, r, r, r.logger))
}
