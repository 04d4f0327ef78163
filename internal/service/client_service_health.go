package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/movisimple/internal/adapter"
)

const healthStatusOK = "OK"

type clientHealthService struct {
	adapter adapter.ServerAdapter
}

func NewClientHealthService(serverAdapter adapter.ServerAdapter) ClientHealthService {
	return &clientHealthService{adapter: serverAdapter}
}

func (s *clientHealthService) Check(ctx context.Context) error {
	resp, err := s.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if resp.Status != healthStatusOK {
		return fmt.Errorf("%w: status %q", ErrServerUnavailable, resp.Status)
	}

	return nil
}
