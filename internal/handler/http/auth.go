package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-form/internal/app"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
)

// sessionResponse is the body of GET /api/auth/me.
type sessionResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.handleAuth(w, r, false)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.handleAuth(w, r, true)
}

func (h *Handler) handleAuth(w http.ResponseWriter, r *http.Request, isLogin bool) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, token, err := h.authenticate(r.Context(), creds, isLogin)
	if err != nil {
		status, msg := responseFromError(err)
		log.Err(err).Bool("is_login", isLogin).Int("status", status).Msg("authentication failed")
		utils.WriteError(w, msg, status)
		return
	}

	log.Debug().Int64("id", user.UserID).Bool("is_login", isLogin).Msg("user authenticated")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user, http.StatusOK)
}

// authenticate registers or logs in creds and issues a token. The websocket
// endpoint shares it with the REST handlers.
func (h *Handler) authenticate(ctx context.Context, creds models.Credentials, isLogin bool) (models.User, models.Token, error) {
	var (
		user models.User
		err  error
	)
	if isLogin {
		user, err = h.services.AuthService.Login(ctx, creds)
	} else {
		user, err = h.services.AuthService.RegisterUser(ctx, creds)
	}
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	token, ok := tokenFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, sessionResponse{UserID: token.UserID, Email: token.Email}, http.StatusOK)
}
