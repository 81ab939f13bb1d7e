package tui

import (
	"fmt"
	"strings"
)

// homePage is the destination shown after a successful authentication.
type homePage struct {
	sessions SessionSource
}

func (h homePage) View() string {
	var b strings.Builder
	b.WriteString("You are logged in.\n\n")

	if h.sessions != nil {
		s := h.sessions.Session()
		b.WriteString(fmt.Sprintf("Account │ %s\n", valueOr(s.Email, "-")))
		b.WriteString(fmt.Sprintf("User ID │ %d", s.UserID))
	}

	return renderPage("HOME", b.String(), "l: log out │ q: quit")
}
