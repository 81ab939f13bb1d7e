// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-auth-form/internal/controller"
	"github.com/MKhiriev/go-auth-form/internal/form"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	placeholderUsername = "username"
	placeholderPassword = "password"
)

// authPage renders a [controller.Controller] and feeds it keyboard and
// mouse input.
// The text inputs are views of the form state: after every event they are
// overwritten from [controller.Controller.State].
type authPage struct {
	ctrl *controller.Controller

	username textinput.Model
	password textinput.Model
	spinner  spinner.Model
}

func newAuthPage(ctrl *controller.Controller) *authPage {
	username := textinput.New()
	username.Placeholder = placeholderUsername
	username.CharLimit = 64
	username.Width = 32

	password := textinput.New()
	password.Placeholder = placeholderPassword
	password.CharLimit = 256
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	p := &authPage{ctrl: ctrl, username: username, password: password, spinner: s}
	p.sync()
	return p
}

func (p *authPage) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, p.spinner.Tick)
}

func (p *authPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	p.sync()
	return nil
}

func (p *authPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	defer p.sync()

	switch {
	case key.Matches(msg, keys.enter):
		p.ctrl.Enter()
		return nil
	case key.Matches(msg, keys.tab):
		p.ctrl.Tab(false)
		return nil
	case key.Matches(msg, keys.backtab):
		p.ctrl.Tab(true)
		return nil
	}

	s := p.ctrl.State()
	if s.Focus == form.FocusDebug {
		if key.Matches(msg, keys.space) {
			p.ctrl.Space()
		}
		return nil
	}
	if s.ControlsDisabled() {
		return nil
	}

	var cmd tea.Cmd
	switch s.Focus {
	case form.FocusUsername:
		p.username, cmd = p.username.Update(msg)
		p.ctrl.SetUsername(p.username.Value())
	case form.FocusPassword:
		p.password, cmd = p.password.Update(msg)
		p.ctrl.SetPassword(p.password.Value())
	}
	return cmd
}

// formRows maps the body lines of [authPage.View] to the controls on them.
var formRows = map[int]form.Focus{
	0: form.FocusUsername,
	1: form.FocusPassword,
	3: form.FocusDebug,
	5: form.FocusSubmit,
	7: form.FocusSwitch,
}

// pageHeaderLines is the number of lines renderPage puts above the body.
const pageHeaderLines = 3

func (p *authPage) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	f, ok := formRows[msg.Y-appStyle.GetPaddingTop()-pageHeaderLines]
	if !ok {
		return
	}
	p.ctrl.Click(f)
	p.sync()
}

// sync copies the form state into the widgets.
func (p *authPage) sync() {
	s := p.ctrl.State()

	if p.username.Value() != s.Username {
		p.username.SetValue(s.Username)
	}
	if p.password.Value() != s.Password {
		p.password.SetValue(s.Password)
	}

	p.username.Placeholder = orDefault(s.UsernameHint, placeholderUsername)
	p.password.Placeholder = orDefault(s.PasswordHint, placeholderPassword)

	p.username.Blur()
	p.password.Blur()
	if s.ControlsDisabled() {
		return
	}
	switch s.Focus {
	case form.FocusUsername:
		p.username.Focus()
	case form.FocusPassword:
		p.password.Focus()
	}
}

func (p *authPage) View() string {
	s := p.ctrl.State()
	var b strings.Builder

	usernameView := p.username.View()
	if !s.UsernameValid() {
		usernameView = invalidStyle.Render(s.Username)
	}
	b.WriteString(p.marker(s, form.FocusUsername))
	b.WriteString("Username │ [")
	b.WriteString(usernameView)
	b.WriteString("]")
	b.WriteString(models.DomainSuffix)
	b.WriteString("\n")

	b.WriteString(p.marker(s, form.FocusPassword))
	b.WriteString("Password │ [")
	b.WriteString(p.password.View())
	b.WriteString("]\n\n")

	debug := "[ ] Debug"
	if s.Debug {
		debug = "[x] Debug"
	}
	if s.DebugDisabled() {
		debug = disabledStyle.Render(debug)
	}
	b.WriteString(p.marker(s, form.FocusDebug))
	b.WriteString(debug)
	b.WriteString("\n\n")

	submit := "[ " + s.Title() + " ]"
	if s.ControlsDisabled() {
		submit = disabledStyle.Render(submit)
	}
	b.WriteString(p.marker(s, form.FocusSubmit))
	b.WriteString(submit)
	if s.Progress() {
		b.WriteString(" ")
		b.WriteString(p.spinner.View())
	}
	b.WriteString("\n\n")

	prompt := s.SwitchPrompt()
	if s.ControlsDisabled() {
		prompt = disabledStyle.Render(prompt)
	}
	b.WriteString(p.marker(s, form.FocusSwitch))
	b.WriteString(prompt)

	return renderPage(strings.ToUpper(s.Title()), b.String(), "tab: next │ enter: activate │ space: toggle")
}

func (p *authPage) marker(s form.State, f form.Focus) string {
	if s.Focus == f {
		return focusedStyle.Render("> ")
	}
	return "  "
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
