package service

import (
	"context"

	"github.com/MKhiriev/go-auth-form/internal/logger"
)

type debugService struct {
	logger *logger.Logger
}

// NewDebugService returns a DebugService backed by the process-wide log
// level.
func NewDebugService(logger *logger.Logger) DebugService {
	return &debugService{logger: logger}
}

func (s *debugService) SetDebug(ctx context.Context, enabled bool) {
	logger.SetDebug(enabled)
	logger.FromContext(ctx).Info().Bool("debug", enabled).Msg("log level switched")
}

func (s *debugService) DebugEnabled(ctx context.Context) bool {
	return logger.DebugEnabled()
}
