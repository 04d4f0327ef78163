package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/movisimple/internal/adapter"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/validators"
	"github.com/MKhiriev/movisimple/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewClientAuthService returns a ClientAuthService that validates input
// locally before calling the server.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.UserInfo, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.UserInfo{}, errors.Join(ErrInvalidDataProvided, err)
	}

	resp, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("email", user.Email).Msg("register on server failed")
		return models.UserInfo{}, mapAdapterError(err)
	}

	return resp.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.UserInfo, error) {
	if err := a.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.UserInfo{}, errors.Join(ErrInvalidDataProvided, err)
	}

	resp, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("email", user.Email).Msg("login on server failed")
		return models.UserInfo{}, mapAdapterError(err)
	}

	return resp.User, nil
}
