package store

import "github.com/MKhiriev/go-auth-form/internal/logger"

// Storages groups the repositories of the auth server.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
