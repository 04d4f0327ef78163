package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a fresh builder has no error
// and no layers.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── merge / build ─────────────────────────────────────────────────────────────

// TestMerge_EarlierLayerWins verifies that the first non-zero value is kept.
func TestMerge_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "env"}},
		&StructuredConfig{App: App{Version: "json", TariffPerUnit: 2}},
	)

	cfg, err := b.merge()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, 2.0, cfg.App.TariffPerUnit)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned with a nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsOnly verifies that the default layer alone is valid and
// carries the documented values.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.App.TariffPerUnit)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "data/users.txt", cfg.Storage.Files.UsersFile)
	assert.Equal(t, "localhost:5328", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:5328", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Workers.HealthInterval)
}

// TestBuild_EmptyBuilderIsInvalid verifies that validation rejects a config
// without an HTTP address.
func TestBuild_EmptyBuilderIsInvalid(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TARIFF_PER_UNIT", "0.75")
	t.Setenv("STORAGE_FILES_USERS_FILE", "/tmp/users.txt")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "3s")
	t.Setenv("WORKERS_HEALTH_INTERVAL", "1m")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 0.75, b.configs[0].App.TariffPerUnit)
	assert.Equal(t, "/tmp/users.txt", b.configs[0].Storage.Files.UsersFile)
	assert.Equal(t, 3*time.Second, b.configs[0].Server.RequestTimeout)
	assert.Equal(t, time.Minute, b.configs[0].Workers.HealthInterval)
}

// TestWithEnv_InvalidValue verifies that a malformed value is recorded as a
// builder error.
func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("APP_PASSWORD_HASH_COST", "ten")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOpWhenNoPathSet verifies that withJSON does nothing when no
// layer names a file.
func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsLayer verifies that a named JSON file becomes a layer.
func TestWithJSON_AppendsLayer(t *testing.T) {
	p := writeTempJSONConfig(t, `{"app":{"version":"from-json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.Version)
}

// TestWithJSON_MissingFile verifies that an unreadable file is an error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── loadLayers ────────────────────────────────────────────────────────────────

// TestLoadLayers_Precedence verifies env > flags > JSON > defaults.
func TestLoadLayers_Precedence(t *testing.T) {
	p := writeTempJSONConfig(t, `{
		"app": {"version": "json", "tariff_per_unit": 3},
		"server": {"http_address": "127.0.0.1:7000", "request_timeout": "7s"},
		"storage": {"files": {"users_file": "json-users.txt"}}
	}`)
	t.Setenv("APP_VERSION", "env")

	cfg, err := loadLayers([]string{"-c", p, "-a", "127.0.0.1:8000", "-tariff", "2"}).build()
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, 2.0, cfg.App.TariffPerUnit)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "json-users.txt", cfg.Storage.Files.UsersFile)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{
			name:    "no request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "no users file",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.UsersFile = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative tariff",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TariffPerUnit = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 2 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── client config ─────────────────────────────────────────────────────────────

// TestNewClientConfig_FromDefaults verifies the client view of the defaults.
func TestNewClientConfig_FromDefaults(t *testing.T) {
	clientCfg, err := newClientConfig(defaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5328", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, clientCfg.Workers.HealthInterval)
}

// TestNewClientConfig_Invalid verifies the client validation errors.
func TestNewClientConfig_Invalid(t *testing.T) {
	cfg := defaultConfig()
	cfg.Adapter.HTTPAddress = ""
	_, err := newClientConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)

	cfg = defaultConfig()
	cfg.Workers.HealthInterval = 0
	_, err = newClientConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}
