package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/movisimple/internal/app"
	"github.com/MKhiriev/movisimple/internal/service"
	"github.com/MKhiriev/movisimple/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidEndpoint:     http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrNoRouteFound:        http.StatusUnprocessableEntity,

	store.ErrNoUserWasFound:    http.StatusUnauthorized,
	store.ErrUserAlreadyExists: http.StatusConflict,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// errorMessageMap holds the client-facing text for mapped errors. The
// client maps these strings back to service errors. Errors missing here,
// such as a deadline, are answered with the handler's fallback message.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	service.ErrInvalidEndpoint:     app.MsgInvalidEndpoint,
	service.ErrWrongPassword:       app.MsgInvalidEmailPassword,
	service.ErrNoRouteFound:        app.MsgNoRouteFound,

	store.ErrNoUserWasFound:    app.MsgInvalidEmailPassword,
	store.ErrUserAlreadyExists: app.MsgUserAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, fallback string) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return fallback
}
