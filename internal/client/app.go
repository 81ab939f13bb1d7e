package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-form/internal/adapter"
	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/tui"
	"github.com/MKhiriev/go-auth-form/internal/workers"
	"github.com/MKhiriev/go-auth-form/models"
)

// App is the client process.
type App struct {
	bus         *bus.Bus
	authAdapter adapter.AuthAdapter
	workers     *workers.Workers
	view        View

	openTimeout func() (context.Context, context.CancelFunc)
	opened      chan error

	logger *logger.Logger
}

// NewApp wires a client from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	authAdapter, err := adapter.New(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create auth adapter: %w", err)
	}

	b := bus.New(cfg.Workers.QueueSize, log)
	view := tui.New(b, authAdapter, buildInfo, log)

	return newApp(b, authAdapter, view, cfg.Adapter, cfg.Workers, log), nil
}

func newApp(b *bus.Bus, authAdapter adapter.AuthAdapter, view View, adapterCfg config.ClientAdapter, workersCfg config.ClientWorkers, log *logger.Logger) *App {
	return &App{
		bus:         b,
		authAdapter: authAdapter,
		workers: workers.NewWorkers(
			workers.NewAuthDispatcher(b, authAdapter, adapterCfg.RequestTimeout, workersCfg.QueueSize, log),
			workers.NewDebugApplier(b, authAdapter, adapterCfg.RequestTimeout, log),
		),
		view: view,
		openTimeout: func() (context.Context, context.CancelFunc) {
			if adapterCfg.RequestTimeout <= 0 {
				return context.WithCancel(context.Background())
			}
			return context.WithTimeout(context.Background(), adapterCfg.RequestTimeout)
		},
		opened: make(chan error, 1),
		logger: log,
	}
}

// Run opens the connection in the background, runs the view until the user
// quits and then tears everything down.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()
	go a.open()

	err := a.view.Run(ctx)

	a.bus.Close()
	a.workers.Stop()
	if closeErr := a.authAdapter.Close(); closeErr != nil {
		a.logger.Warn().Err(closeErr).Msg("close auth adapter")
	}

	if err != nil {
		return fmt.Errorf("client view: %w", err)
	}
	return nil
}

func (a *App) open() {
	ctx, cancel := a.openTimeout()
	defer cancel()

	err := a.authAdapter.Open(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("auth server is not reachable yet")
	} else {
		a.logger.Info().Msg("connected to auth server")
	}
	a.opened <- err
}
