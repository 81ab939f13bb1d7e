package store

import (
	"context"

	"github.com/MKhiriev/go-auth-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists accounts of the auth server.
type UserRepository interface {
	// CreateUser stores user and returns it with UserID and CreatedAt set.
	// A taken email yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
