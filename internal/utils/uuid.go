package utils

import "github.com/google/uuid"

// NewRequestID returns a time-ordered UUIDv7, falling back to a random
// UUIDv4 when the clock source fails. It identifies HTTP requests and
// correlates websocket frames.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
