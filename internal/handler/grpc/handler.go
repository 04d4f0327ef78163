// Package grpc exposes the standard gRPC health service for MoviSimple so
// that load balancers and orchestrators can probe the server.
package grpc

import (
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// RouteServiceName is the health-checked name of the fare engine.
const RouteServiceName = "movisimple.Route"

// Handler owns the health status reported over gRPC. The overall status ("")
// is SERVING from construction; RouteServiceName is SERVING once a route
// service is wired.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}

	routeStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if services != nil && services.RouteService != nil {
		routeStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(RouteServiceName, routeStatus)

	logger.Debug().Str("route_status", routeStatus.String()).Msg("gRPC handler created")
	return h
}

// Register installs the health and reflection services on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Shutdown reports NOT_SERVING for every service. Status changes after this
// call are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health switched to NOT_SERVING")
}
