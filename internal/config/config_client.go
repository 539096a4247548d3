package config

import (
	"fmt"
	"time"
)

// Store drivers accepted by [ClientDB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverMemory   = "memory"
)

// RPC transports accepted by [ClientAdapter.Transport].
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultSyncInterval   = 5 * time.Minute
	DefaultRequestTimeout = 10 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFile is the client log file; stdout when empty.
	LogFile string
	// LogLevel is the minimal zerolog level.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the node HTTP endpoint.
	HTTPAddress string
	// GRPCAddress is the node gRPC endpoint.
	GRPCAddress string
	// Transport is [TransportHTTP] or [TransportGRPC].
	Transport string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// APIToken is sent as a bearer token when non-empty.
	APIToken string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// Driver is one of [DriverSQLite], [DriverPostgres], [DriverMemory].
	Driver string
	// DSN is the SQLite file, the PostgreSQL URL or the memory snapshot file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the state sync job runs.
	SyncInterval time.Duration
	// MetricsAddress is the Prometheus listen address; disabled when empty.
	MetricsAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps cfg to a [ClientConfig], applies defaults and
// validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			Transport:      cfg.Adapter.Transport,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			APIToken:       cfg.Adapter.APIToken,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:   cfg.Workers.SyncInterval,
			MetricsAddress: cfg.Workers.MetricsAddress,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverSQLite
	}
	if cfg.Adapter.Transport == "" {
		cfg.Adapter.Transport = TransportHTTP
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
}
