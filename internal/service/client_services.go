package service

import (
	"github.com/MKhiriev/movisimple/internal/adapter"
	"github.com/MKhiriev/movisimple/internal/logger"
)

// ClientServices groups the terminal client services.
type ClientServices struct {
	AuthService   ClientAuthService
	RouteService  ClientRouteService
	HealthService ClientHealthService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(serverAdapter, logger),
		RouteService:  NewClientRouteService(serverAdapter, logger),
		HealthService: NewClientHealthService(serverAdapter),
	}
}
