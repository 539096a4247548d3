// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// light client and the mock node binaries. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local client store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses of the mock node.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds API token settings used by the mock node to issue tokens.
	Auth Auth `envPrefix:"AUTH_"`

	// Adapter holds the connection settings the client uses to reach a node.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// LogFile is the path of the file the client writes its logs to.
	// When empty, logs go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration of the local store.
type Storage struct {
	// DB holds the store backend settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the store backend.
type DB struct {
	// Driver selects the backend: "sqlite3", "pgx" or "memory".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string. For sqlite3 it is the database file
	// path, for pgx a PostgreSQL URL, for memory an optional JSON snapshot
	// file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the mock node.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP API listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC API listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DemoBlocks is the number of blocks of the demo chain served by the
	// mock node.
	// Env: SERVER_DEMO_BLOCKS
	DemoBlocks uint32 `env:"DEMO_BLOCKS"`
}

// Auth holds API token settings.
type Auth struct {
	// TokenSignKey is the HMAC key used to sign and verify API tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid
	// (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds the client's connection settings to a node.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the node HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the node gRPC API.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Transport selects the RPC transport: "http" or "grpc".
	// Env: ADAPTER_TRANSPORT
	Transport string `env:"TRANSPORT"`

	// RequestTimeout bounds every outbound RPC call (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// APIToken is the bearer token sent to the node, if it requires one.
	// Env: ADAPTER_API_TOKEN
	APIToken string `env:"API_TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the state sync job (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// MetricsAddress is the listen address of the Prometheus endpoint.
	// Metrics are not served when empty.
	// Env: WORKERS_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
