// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/movisimple/internal/route"
	"github.com/MKhiriev/movisimple/models"
	"github.com/stretchr/testify/assert"
)

func TestRouteValidator_Dispatch(t *testing.T) {
	v := NewRouteValidator(route.MoviSimple())
	req := models.RouteRequest{Origin: 1, Destination: 4}

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
}

func TestRouteValidator_MoviSimple(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RouteRequest
		wantErr error
	}{
		{name: "1 to 4", req: models.RouteRequest{Origin: 1, Destination: 4}},
		{name: "6 to 1", req: models.RouteRequest{Origin: 6, Destination: 1}},
		{name: "origin zero", req: models.RouteRequest{Origin: 0, Destination: 4}, wantErr: ErrStationOutOfRange},
		{name: "origin negative", req: models.RouteRequest{Origin: -1, Destination: 4}, wantErr: ErrStationOutOfRange},
		{name: "destination seven", req: models.RouteRequest{Origin: 1, Destination: 7}, wantErr: ErrStationOutOfRange},
		{name: "same station", req: models.RouteRequest{Origin: 3, Destination: 3}, wantErr: ErrSameStation},
		{name: "zero value", req: models.RouteRequest{}, wantErr: ErrStationOutOfRange},
	}

	v := NewRouteValidator(route.MoviSimple())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRouteValidator_FieldScoping(t *testing.T) {
	v := NewRouteValidator(route.MoviSimple())
	req := models.RouteRequest{Origin: 2, Destination: 2}

	assert.NoError(t, v.Validate(context.Background(), req, FieldOrigin, FieldDestination))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldDistinct), ErrSameStation)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "fare"), ErrUnknownField)
}
