package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds the terminal client's transport settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientWorkers holds the terminal client's background job settings.
type ClientWorkers struct {
	HealthInterval time.Duration
}

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig loads the shared layers and maps the fields the terminal
// client uses. Server-only settings are not validated here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadLayers(os.Args[1:]).merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			HealthInterval: cfg.Workers.HealthInterval,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
