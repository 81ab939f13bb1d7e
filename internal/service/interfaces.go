package service

import (
	"context"

	"github.com/MKhiriev/go-auth-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates accounts of the auth server.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DebugService switches the server's log verbosity at runtime.
type DebugService interface {
	SetDebug(ctx context.Context, enabled bool)
	DebugEnabled(ctx context.Context) bool
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
