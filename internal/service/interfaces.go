// Package service holds the MoviSimple business logic.
//
// Server-side services (AuthService, RouteService, AppInfoService) sit
// between the HTTP/gRPC handlers and the storage layer. Client-side services
// (the Client* interfaces) sit between the terminal UI and the server
// adapter. Input validation is applied by wrappers that decorate the core
// services.
package service

import (
	"context"

	"github.com/MKhiriev/movisimple/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates passengers.
type AuthService interface {
	// RegisterUser hashes the password and stores the user. The returned
	// user carries no password material.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login checks the password against the stored hash and returns the
	// stored user without password material.
	Login(ctx context.Context, user models.User) (models.User, error)
}

// RouteService computes fares over the station network.
type RouteService interface {
	// CalculateRoute returns the fastest path between two stations with its
	// travel time and cost.
	CalculateRoute(ctx context.Context, request models.RouteRequest) (models.Route, error)

	// Network describes the stations, connections and tariff.
	Network(ctx context.Context) models.Network
}

// AppInfoService exposes build and runtime metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
