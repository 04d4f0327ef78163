// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/movisimple/internal/service"
	"github.com/MKhiriev/movisimple/internal/store"
)

var ErrUserQuit = errors.New("user quit")

const msgServerUnavailable = "No network connection or the server is unavailable"

// humanizeError turns a client service error into a line for the error
// overlay.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid email or password"
	case errors.Is(err, store.ErrUserAlreadyExists):
		return "A user with this email already exists"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Please fill in every field with a valid value"
	case errors.Is(err, service.ErrInvalidEndpoint):
		return "Choose two different stations"
	case errors.Is(err, service.ErrNoRouteFound):
		return "No route available between these stations"
	case errors.Is(err, service.ErrServerUnavailable):
		return msgServerUnavailable
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
