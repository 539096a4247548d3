package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://node"}},
		&StructuredConfig{Auth: Auth{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://node", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "env", Transport: "http"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "http", cfg.Adapter.Transport)
}

// TestBuild_ValidatesResult verifies that the merged config is validated.
func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncInterval: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_TRANSPORT", "grpc")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "grpc", b.configs[0].Adapter.Transport)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "often")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlagSet ───────────────────────────────────────────────────────────────

// TestWithFlagSet_AppendsParsedFlags verifies that parsed flags become one
// config entry.
func TestWithFlagSet_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	b.withFlagSet(newTestFlagSet(), []string{"-transport", "grpc"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "grpc", b.configs[0].Adapter.Transport)
}

// TestWithFlagSet_SetsErrorOnBadFlag verifies that parse errors are recorded.
func TestWithFlagSet_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlagSet(newTestFlagSet(), []string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "http://json-node"
	payload.Auth.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json-node", b.configs[1].Adapter.HTTPAddress)
	assert.Equal(t, "json-issuer", b.configs[1].Auth.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LogLevel = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.LogLevel)
}

// ── client and mock node views ────────────────────────────────────────────────

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := NewClientConfig(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "client.db"}},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
	})

	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, TransportHTTP, cfg.Adapter.Transport)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "memory store without dsn",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{Driver: DriverMemory}},
				Adapter: Adapter{HTTPAddress: "http://node"},
			},
		},
		{
			name: "sqlite without dsn",
			cfg: StructuredConfig{
				Adapter: Adapter{HTTPAddress: "http://node"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown driver",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{Driver: "oracle", DSN: "x"}},
				Adapter: Adapter{HTTPAddress: "http://node"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "grpc without grpc address",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{Driver: DriverMemory}},
				Adapter: Adapter{HTTPAddress: "http://node", Transport: TransportGRPC},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "unknown transport",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{Driver: DriverMemory}},
				Adapter: Adapter{HTTPAddress: "http://node", Transport: "carrier-pigeon"},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientConfig(&tt.cfg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewMockNodeConfig(t *testing.T) {
	cfg, err := NewMockNodeConfig(&StructuredConfig{
		Server: Server{HTTPAddress: "localhost:8080"},
		Auth:   Auth{TokenSignKey: "key"},
	})

	require.NoError(t, err)
	assert.Equal(t, uint32(DefaultDemoBlocks), cfg.Server.DemoBlocks)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)

	_, err = NewMockNodeConfig(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}
