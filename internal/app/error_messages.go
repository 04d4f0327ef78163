// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings shared by the HTTP handlers, which
// write them into error responses, and the client, which maps them back to
// service errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing name, email or password).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned for an unknown email or a wrong
	// password. Both cases share one message.
	MsgInvalidEmailPassword = "invalid email/password"

	MsgUserAlreadyExists = "user with this email already exists"

	// MsgInvalidEndpoint is returned when origin or destination is not a
	// station of the network or both are the same station.
	MsgInvalidEndpoint = "invalid origin or destination"

	MsgNoRouteFound = "no route available"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	// MsgRouteCalculationFailed is returned when the route search was
	// aborted, e.g. by the request timeout.
	MsgRouteCalculationFailed = "route calculation failed"

	MsgRegistered = "user registered successfully"
	MsgLoggedIn   = "login successful"
	MsgServerIsUp = "MoviSimple server is running"
)
