package service

import (
	"context"

	"github.com/MKhiriev/movisimple/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService registers and logs in through the server adapter.
type ClientAuthService interface {
	// Register creates the account and returns its public part.
	Register(ctx context.Context, user models.User) (models.UserInfo, error)

	// Login authenticates and returns the public part of the account.
	Login(ctx context.Context, user models.User) (models.UserInfo, error)
}

// ClientRouteService plans trips through the server adapter.
type ClientRouteService interface {
	// Calculate asks the server for the fastest path between two stations.
	Calculate(ctx context.Context, origin, destination int) (models.Route, error)

	// Network returns the station network. It is fetched once and cached.
	Network(ctx context.Context) (models.Network, error)
}

// ClientHealthService probes server availability.
type ClientHealthService interface {
	// Check returns nil when the server answers the health endpoint with
	// status OK.
	Check(ctx context.Context) error
}
