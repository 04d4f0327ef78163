package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrInvalidEndpoint is returned before the route engine runs when the
	// origin or destination is not a station or both are the same.
	ErrInvalidEndpoint = errors.New("invalid origin or destination")
	// ErrNoRouteFound is returned when the destination is unreachable.
	ErrNoRouteFound = errors.New("no route available")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrRegisterOnServer  = errors.New("registration on server failed")
	ErrLoginOnServer     = errors.New("login on server failed")
	ErrServerUnavailable = errors.New("server is unavailable")
)
