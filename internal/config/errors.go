package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// out of range.
var (
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs is returned for a missing API base URL or
	// request timeout in the client config.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
