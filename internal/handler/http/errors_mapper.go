package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-form/internal/app"
	"github.com/MKhiriev/go-auth-form/internal/service"
	"github.com/MKhiriev/go-auth-form/internal/store"
)

// errorResponses is checked in order; the first matching sentinel wins.
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrDBUnavailable, http.StatusServiceUnavailable, app.MsgInternalServerError},
}

// responseFromError returns the status and the client-facing message for
// err. Unknown errors are 500 and their text never leaves the server.
func responseFromError(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// isRejection reports whether status means the credentials were refused.
func isRejection(status int) bool {
	return status == http.StatusBadRequest ||
		status == http.StatusUnauthorized ||
		status == http.StatusConflict
}
