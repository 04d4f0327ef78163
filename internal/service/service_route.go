package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movisimple/internal/config"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/route"
	"github.com/MKhiriev/movisimple/models"
)

// denseScanLimit is the largest graph solved with the O(V²) scan; bigger
// graphs use the heap-based search, which also observes cancellation.
const denseScanLimit = 64

type routeService struct {
	graph  *route.Graph
	tariff float64

	logger *logger.Logger
}

// NewRouteService returns a RouteService over the fixed MoviSimple network
// priced at cfg.TariffPerUnit.
func NewRouteService(cfg config.App, logger *logger.Logger) RouteService {
	return NewGraphRouteService(route.MoviSimple(), cfg.TariffPerUnit, logger)
}

// NewGraphRouteService returns a RouteService over an arbitrary graph.
func NewGraphRouteService(graph *route.Graph, tariffPerUnit float64, logger *logger.Logger) RouteService {
	return &routeService{
		graph:  graph,
		tariff: tariffPerUnit,
		logger: logger,
	}
}

// CalculateRoute runs a single-source search from request.Origin and prices
// the path to request.Destination.
//
// Returns ErrInvalidEndpoint for unknown or equal stations and
// ErrNoRouteFound when the destination is unreachable.
func (s *routeService) CalculateRoute(ctx context.Context, request models.RouteRequest) (models.Route, error) {
	log := logger.FromContext(ctx)

	if !s.graph.Contains(request.Origin) || !s.graph.Contains(request.Destination) ||
		request.Origin == request.Destination {
		return models.Route{}, ErrInvalidEndpoint
	}

	dist, pred, err := s.search(ctx, request.Origin)
	if err != nil {
		log.Err(err).Int("origin", request.Origin).Msg("route search aborted")
		return models.Route{}, fmt.Errorf("route search aborted: %w", err)
	}

	if !dist.Reachable(request.Destination) {
		log.Debug().
			Int("origin", request.Origin).
			Int("destination", request.Destination).
			Msg("destination unreachable")
		return models.Route{}, ErrNoRouteFound
	}

	path := route.ReconstructPath(request.Origin, request.Destination, pred)
	if path == nil {
		return models.Route{}, ErrNoRouteFound
	}

	totalTime := dist.Distance(request.Destination)
	return models.Route{
		Path:      path,
		TotalTime: totalTime,
		Cost:      totalTime * s.tariff,
	}, nil
}

func (s *routeService) search(ctx context.Context, origin int) (route.DistanceTable, route.PredecessorTable, error) {
	if s.graph.VertexCount() <= denseScanLimit {
		dist, pred := route.ShortestPath(s.graph, origin)
		return dist, pred, nil
	}

	return route.ShortestPathQueue(ctx, s.graph, origin)
}

func (s *routeService) Network(_ context.Context) models.Network {
	edges := s.graph.Edges()
	connections := make([]models.Connection, 0, len(edges))
	for _, e := range edges {
		connections = append(connections, models.Connection{From: e.From, To: e.To, Weight: e.Weight})
	}

	return models.Network{
		Stations:      s.graph.Vertices(),
		Connections:   connections,
		TariffPerUnit: s.tariff,
	}
}
