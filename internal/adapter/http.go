package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/movisimple/internal/config"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/utils"
	"github.com/MKhiriev/movisimple/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. adapterCfg.HTTPAddress may omit the scheme, in which case
// http is assumed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a resty request bound to ctx. A trace id is generated
// when ctx does not carry one so that client and server logs correlate.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	if _, ok := utils.GetTraceIDFromContext(ctx); !ok {
		ctx = utils.WithTraceID(ctx, h.uuidGenerator.Generate())
	}

	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.request(ctx).
		SetBody(user).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.request(ctx).
		SetBody(models.User{Email: user.Email, Password: user.Password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) CalculateRoute(ctx context.Context, request models.RouteRequest) (models.Route, error) {
	var result models.Route

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/api/calculate-route")
	if err != nil {
		return models.Route{}, fmt.Errorf("calculate route request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Route{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Network(ctx context.Context) (models.Network, error) {
	var result models.Network

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/network")
	if err != nil {
		return models.Network{}, fmt.Errorf("network request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Network{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return result, nil
}
