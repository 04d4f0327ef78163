package validators

import (
	"context"

	"github.com/MKhiriev/movisimple/models"
)

// Field names accepted by [RouteValidator].
const (
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	// FieldDistinct requires origin and destination to differ.
	FieldDistinct = "distinct"
)

// StationSet reports whether a station id exists. *route.Graph satisfies it.
type StationSet interface {
	Contains(v int) bool
}

// RouteValidator validates [models.RouteRequest] against a station set.
type RouteValidator struct {
	stations StationSet
}

func NewRouteValidator(stations StationSet) Validator {
	return &RouteValidator{stations: stations}
}

func (v *RouteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RouteRequest:
		return v.validateRouteRequest(ctx, value, fields...)
	case *models.RouteRequest:
		return v.validateRouteRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RouteValidator) validateRouteRequest(_ context.Context, request models.RouteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrigin, FieldDestination, FieldDistinct}
	}

	for _, f := range fields {
		switch f {
		case FieldOrigin:
			if !v.stations.Contains(request.Origin) {
				return ErrStationOutOfRange
			}
		case FieldDestination:
			if !v.stations.Contains(request.Destination) {
				return ErrStationOutOfRange
			}
		case FieldDistinct:
			if request.Origin == request.Destination {
				return ErrSameStation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
