package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/movisimple/internal/adapter"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/models"
)

type clientRouteService struct {
	adapter adapter.ServerAdapter

	mu      sync.Mutex
	network *models.Network

	logger *logger.Logger
}

func NewClientRouteService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientRouteService {
	return &clientRouteService{adapter: serverAdapter, logger: logger}
}

func (s *clientRouteService) Calculate(ctx context.Context, origin, destination int) (models.Route, error) {
	if origin == destination {
		return models.Route{}, ErrInvalidEndpoint
	}

	r, err := s.adapter.CalculateRoute(ctx, models.RouteRequest{Origin: origin, Destination: destination})
	if err != nil {
		s.logger.Err(err).Int("origin", origin).Int("destination", destination).Msg("route calculation failed")
		return models.Route{}, mapAdapterError(err)
	}

	return r, nil
}

// Network fetches the network on first use. Failed fetches are not cached.
func (s *clientRouteService) Network(ctx context.Context) (models.Network, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.network != nil {
		return *s.network, nil
	}

	network, err := s.adapter.Network(ctx)
	if err != nil {
		return models.Network{}, mapAdapterError(err)
	}

	s.network = &network
	return network, nil
}
