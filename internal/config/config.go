// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the terminal client.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c, -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TariffPerUnit is the price of one unit of travel time.
	// Env: APP_TARIFF_PER_UNIT
	TariffPerUnit float64 `env:"TARIFF_PER_UNIT"`

	// PasswordHashCost is the bcrypt cost used for new registrations.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`
}

// Storage groups the persistence settings.
type Storage struct {
	Files Files `envPrefix:"FILES_"`
}

// Files holds flat-file storage settings.
type Files struct {
	// UsersFile is the append-only file with one "name|email|hash" record
	// per line.
	// Env: STORAGE_FILES_USERS_FILE
	UsersFile string `env:"USERS_FILE"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the host:port the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health endpoint. Empty
	// disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the client-side HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the MoviSimple API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// HealthInterval is how often the client probes the server health.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

const (
	DefaultTariffPerUnit    = 0.5
	DefaultPasswordHashCost = 10
	DefaultUsersFile        = "data/users.txt"
	DefaultHTTPAddress      = "localhost:5328"
	DefaultAdapterAddress   = "http://localhost:5328"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultHealthInterval   = 30 * time.Second
)

// defaultConfig is the lowest-priority layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TariffPerUnit:    DefaultTariffPerUnit,
			PasswordHashCost: DefaultPasswordHashCost,
		},
		Storage: Storage{
			Files: Files{UsersFile: DefaultUsersFile},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			HealthInterval: DefaultHealthInterval,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration
// from the process environment and command line.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadLayers(os.Args[1:]).build()
}
