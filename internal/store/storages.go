package store

import (
	"fmt"

	"github.com/MKhiriev/movisimple/internal/config"
	"github.com/MKhiriev/movisimple/internal/logger"
)

// Storages groups all server-side repositories.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages initialises the storage layer from cfg. The users file
// directory is created if it does not exist yet.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	userRepository, err := NewUserFileRepository(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating user repository: %w", err)
	}

	return &Storages{
		UserRepository: userRepository,
	}, nil
}
