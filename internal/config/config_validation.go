// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"

	"golang.org/x/crypto/bcrypt"
)

// validate checks the merged server configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Files.UsersFile == "" {
		return fmt.Errorf("%w: empty users file path", ErrInvalidStorageConfigs)
	}

	tariff := cfg.App.TariffPerUnit
	if tariff < 0 || math.IsNaN(tariff) || math.IsInf(tariff, 0) {
		return fmt.Errorf("%w: tariff per unit must be a finite non-negative number", ErrInvalidAppConfigs)
	}
	if cost := cfg.App.PasswordHashCost; cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d outside [%d, %d]",
			ErrInvalidAppConfigs, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
