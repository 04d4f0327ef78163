// Package tui is the bubbletea terminal client of MoviSimple: a welcome menu,
// login and register forms, and a route planner that shows path, travel time
// and fare between two stations.
package tui

import (
	"context"

	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/service"
	"github.com/MKhiriev/movisimple/internal/workers"
	"github.com/MKhiriev/movisimple/models"
	tea "github.com/charmbracelet/bubbletea"
)

// HealthSource reports the last known server availability.
type HealthSource interface {
	Status() workers.HealthStatus
}

type TUI struct {
	services  *service.ClientServices
	health    HealthSource
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, health HealthSource, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		health:    health,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the UI until the user quits. It returns ErrUserQuit on a normal
// exit.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.health, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Str("email", result.user.Email).Msg("user quit")
		return ErrUserQuit
	}

	return nil
}
