package tui

import "github.com/MKhiriev/go-auth-form/models"

// SessionSource reports the account the transport authenticated last.
type SessionSource interface {
	Session() models.Session
}
