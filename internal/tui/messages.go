package tui

import (
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/models"
	tea "github.com/charmbracelet/bubbletea"
)

// inboundMsg carries a message posted to the bus inbox into the Update loop.
type inboundMsg struct {
	models.Message
}

// waitForInbound blocks until the next posted bus message. It returns nil
// once the bus is closed, which ends the chain of commands.
func waitForInbound(b *bus.Bus) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.Inbox():
			return inboundMsg{msg}
		case <-b.Done():
			return nil
		}
	}
}
