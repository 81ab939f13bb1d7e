package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-form/internal/app"
	"github.com/MKhiriev/go-auth-form/internal/service"
	"github.com/MKhiriev/go-auth-form/internal/store"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthHandlers(t *testing.T) {
	creds := models.Credentials{Email: "ann@auth.gr", Password: "secret"}
	user := models.User{UserID: 1, Email: creds.Email}
	token := models.Token{SignedString: "signed.jwt.token"}

	tests := []struct {
		name       string
		path       string
		body       any
		setup      func(m *testMocks)
		wantStatus int
		wantAuth   string
		wantError  string
	}{
		{
			name: "login ok",
			path: "/api/auth/login",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().Login(gomock.Any(), creds).Return(user, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(token, nil)
			},
			wantStatus: http.StatusOK,
			wantAuth:   "Bearer signed.jwt.token",
		},
		{
			name: "register ok",
			path: "/api/auth/register",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), creds).Return(user, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(token, nil)
			},
			wantStatus: http.StatusOK,
			wantAuth:   "Bearer signed.jwt.token",
		},
		{
			name:       "invalid json",
			path:       "/api/auth/login",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name:       "unknown fields",
			path:       "/api/auth/login",
			body:       `{"email":"a@auth.gr","password":"p","extra":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			path: "/api/auth/login",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().Login(gomock.Any(), creds).Return(models.User{}, service.ErrWrongPassword)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  app.MsgInvalidLoginPassword,
		},
		{
			name: "unknown user",
			path: "/api/auth/login",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().Login(gomock.Any(), creds).Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  app.MsgInvalidLoginPassword,
		},
		{
			name: "user exists",
			path: "/api/auth/register",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), creds).Return(models.User{}, store.ErrLoginAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantError:  app.MsgLoginAlreadyExists,
		},
		{
			name: "wrapped user exists keeps the fixed message",
			path: "/api/auth/register",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), creds).
					Return(models.User{}, fmt.Errorf("insert user ann@auth.gr: %w", store.ErrLoginAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantError:  app.MsgLoginAlreadyExists,
		},
		{
			name: "invalid data",
			path: "/api/auth/register",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), creds).Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name: "database down hides details",
			path: "/api/auth/register",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), creds).
					Return(models.User{}, errors.Join(store.ErrDBUnavailable, errors.New("dial tcp: refused")))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  app.MsgInternalServerError,
		},
		{
			name: "token creation fails",
			path: "/api/auth/login",
			body: creds,
			setup: func(m *testMocks) {
				m.auth.EXPECT().Login(gomock.Any(), creds).Return(user, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rr := serve(h, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAuth, rr.Header().Get("Authorization"))

			if tt.wantStatus == http.StatusOK {
				var got models.User
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, user.Email, got.Email)
				return
			}

			var errResp utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errResp.Error)
			}
			assert.NotContains(t, rr.Body.String(), "dial tcp")
			assert.NotContains(t, rr.Body.String(), "ann@auth.gr")
		})
	}
}

func TestMe(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").
		Return(models.Token{UserID: 42, Email: "ann@auth.gr"}, nil)

	rr := serve(h, http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer good")

	require.Equal(t, http.StatusOK, rr.Code)
	var got sessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, sessionResponse{UserID: 42, Email: "ann@auth.gr"}, got)
}

func TestMe_Unauthorized(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/auth/me", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe_InvalidToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "stale").
		Return(models.Token{}, fmt.Errorf("parse: %w", service.ErrTokenIsExpiredOrInvalid))

	rr := serve(h, http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer stale")

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	var errResp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, app.MsgInvalidToken, errResp.Error)
}
