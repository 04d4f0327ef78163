package service

import (
	"fmt"

	"github.com/MKhiriev/movisimple/internal/config"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/route"
	"github.com/MKhiriev/movisimple/internal/store"
)

// Services groups the server-side services.
type Services struct {
	AuthService    AuthService
	RouteService   RouteService
	AppInfoService AppInfoService
}

// NewServices builds the server services with validation applied in front
// of the auth and route services.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthValidationService().
		Wrap(NewAuthService(storages.UserRepository, cfg.App, logger))

	routeService := NewRouteValidationService(route.MoviSimple()).
		Wrap(NewRouteService(cfg.App, logger))

	return &Services{
		AuthService:    authService,
		RouteService:   routeService,
		AppInfoService: appInfoService,
	}, nil
}
