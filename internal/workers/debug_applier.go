package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/adapter"
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
)

// NewDebugApplier returns the debug subsystem: it switches the local log
// level, forwards the change to the server and acknowledges every
// [models.DebugToggleRequest]. A server failure is logged and still acked.
func NewDebugApplier(b *bus.Bus, authAdapter adapter.AuthAdapter, timeout time.Duration, log *logger.Logger) *BusWorker[models.DebugToggleRequest] {
	if log == nil {
		log = logger.Nop()
	}

	handle := func(ctx context.Context, req models.DebugToggleRequest) models.Message {
		logger.SetDebug(req.Enabled)
		log.Info().Bool("debug", req.Enabled).Msg("log level changed")

		if authAdapter != nil {
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if err := authAdapter.SetDebug(ctx, req.Enabled); err != nil {
				log.Warn().Err(err).Msg("server did not accept debug toggle")
			}
		}

		return models.DebugToggleAck{}
	}

	return newBusWorker(b, 1, handle, func(models.DebugToggleRequest) models.Message {
		return models.DebugToggleAck{}
	}, log)
}
