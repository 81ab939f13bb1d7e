package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/store"
)

// Services groups the server-side services handed to the transport layer.
type Services struct {
	AuthService    AuthService
	DebugService   DebugService
	AppInfoService AppInfoService
}

// NewServices wires every server service.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		DebugService:   NewDebugService(logger),
		AppInfoService: appInfo,
	}, nil
}
