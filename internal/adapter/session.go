package adapter

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
)

// sessionStore keeps the account of the last accepted request. Both
// transports embed it.
type sessionStore struct {
	mu      sync.RWMutex
	session models.Session
}

// Session implements [AuthAdapter].
func (s *sessionStore) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionStore) store(token string) error {
	parsed, err := utils.ParseUnverifiedJWT(token)
	if err != nil {
		return fmt.Errorf("auth parse token claims: %w", err)
	}

	s.mu.Lock()
	s.session = models.Session{Email: parsed.Email, UserID: parsed.UserID, Token: token}
	s.mu.Unlock()
	return nil
}
