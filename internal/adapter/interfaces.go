// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the MoviSimple HTTP API on behalf of the
// terminal client.
//
// [ServerAdapter] hides the transport from the client services. Non-2xx
// responses are turned into the sentinel errors of errors.go by
// mapHTTPError, with the server's error message appended, so callers can
// use [errors.Is] on the status class and still see the reason.
package adapter

import (
	"context"

	"github.com/MKhiriev/movisimple/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the MoviSimple API.
type ServerAdapter interface {
	// Register calls POST /api/auth/register.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login calls POST /api/auth/login.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// CalculateRoute calls POST /api/calculate-route.
	CalculateRoute(ctx context.Context, request models.RouteRequest) (models.Route, error)

	// Network calls GET /api/network.
	Network(ctx context.Context) (models.Network, error)

	// Health calls GET /api/health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version calls GET /api/version.
	Version(ctx context.Context) (models.VersionResponse, error)
}
