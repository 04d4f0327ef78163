// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/movisimple/internal/adapter"
	"github.com/MKhiriev/movisimple/internal/app"
	"github.com/MKhiriev/movisimple/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// or store error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidEndpoint:
			return ErrInvalidEndpoint
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrWrongPassword

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrUserAlreadyExists

	case errors.Is(err, adapter.ErrUnprocessableEntity):
		return ErrNoRouteFound

	case errors.Is(err, adapter.ErrInternalServerError):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrServerUnavailable
	}

	return err
}

// extractBody returns the message part of "<sentinel>: <message>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
