package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movisimple/internal/validators"
	"github.com/MKhiriev/movisimple/models"
)

// RouteValidationService rejects invalid endpoints before the wrapped
// RouteService runs the search.
type RouteValidationService struct {
	inner     RouteService
	validator validators.Validator
}

func NewRouteValidationService(stations validators.StationSet) RouteServiceWrapper {
	return &RouteValidationService{
		validator: validators.NewRouteValidator(stations),
	}
}

func (v *RouteValidationService) CalculateRoute(ctx context.Context, request models.RouteRequest) (models.Route, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Route{}, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return v.inner.CalculateRoute(ctx, request)
}

func (v *RouteValidationService) Network(ctx context.Context) models.Network {
	return v.inner.Network(ctx)
}

func (v *RouteValidationService) Wrap(inner RouteService) RouteService {
	v.inner = inner
	return v
}
