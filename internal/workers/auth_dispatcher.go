package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/adapter"
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
)

// NewAuthDispatcher returns the worker that carries every published
// [models.AuthRequest] to the transport and posts the [models.AuthResult].
//
// A transport failure or a timeout is reported as a rejection, so the form
// is never left locked.
func NewAuthDispatcher(b *bus.Bus, authAdapter adapter.AuthAdapter, timeout time.Duration, queueSize int, log *logger.Logger) *BusWorker[models.AuthRequest] {
	if log == nil {
		log = logger.Nop()
	}

	handle := func(ctx context.Context, req models.AuthRequest) models.Message {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		res, err := authAdapter.Authenticate(ctx, req)
		if err != nil {
			log.Error().Err(err).Str("email", req.Email).Bool("is_login", req.IsLogin).Msg("authentication round trip failed")
			return models.ErrResult()
		}

		log.Info().Str("email", req.Email).Bool("is_login", req.IsLogin).Stringer("status", res.Status).Msg("authentication finished")
		return res
	}

	return newBusWorker(b, queueSize, handle, func(models.AuthRequest) models.Message {
		return models.ErrResult()
	}, log)
}
