package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/tui"
)

type App struct {
	ui      UI
	workers BackgroundWorkers

	logger *logger.Logger
}

func NewApp(ui UI, workers BackgroundWorkers, logger *logger.Logger) *App {
	return &App{ui: ui, workers: workers, logger: logger}
}

// Run blocks until the UI exits or SIGINT/SIGTERM arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(ctx.Err()).Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
