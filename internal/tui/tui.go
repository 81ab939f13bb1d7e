package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-form/internal/bus"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal program of the client.
type TUI struct {
	bus       *bus.Bus
	sessions  SessionSource
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	options []tea.ProgramOption
}

// New creates a TUI driving b. sessions feeds the home page.
func New(b *bus.Bus, sessions SessionSource, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		bus:       b,
		sessions:  sessions,
		buildInfo: buildInfo,
		logger:    log,
		options:   []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()},
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.bus, t.sessions, t.buildInfo, t.logger)
	defer root.Close()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	if _, err := tea.NewProgram(root, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal program: %w", err)
	}
	return nil
}
