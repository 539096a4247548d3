package config

import (
	"fmt"
	"time"
)

// DefaultDemoBlocks is the length of the mock node demo chain when unset.
const DefaultDemoBlocks = 6

// MockNodeConfig is the configuration of the mock node binary.
type MockNodeConfig struct {
	// Server contains the listen addresses.
	Server Server
	// Auth contains token issuing settings. Tokens are not required when
	// TokenSignKey is empty.
	Auth Auth
	// LogLevel is the minimal zerolog level.
	LogLevel string
}

// GetMockNodeConfig builds and validates the mock node config view from the
// merged structured configuration.
func GetMockNodeConfig() (*MockNodeConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewMockNodeConfig(cfg)
}

// NewMockNodeConfig maps cfg to a [MockNodeConfig], applies defaults and
// validates the result.
func NewMockNodeConfig(cfg *StructuredConfig) (*MockNodeConfig, error) {
	nodeCfg := &MockNodeConfig{
		Server:   cfg.Server,
		Auth:     cfg.Auth,
		LogLevel: cfg.App.LogLevel,
	}

	if nodeCfg.Server.DemoBlocks == 0 {
		nodeCfg.Server.DemoBlocks = DefaultDemoBlocks
	}
	if nodeCfg.Server.RequestTimeout == 0 {
		nodeCfg.Server.RequestTimeout = 30 * time.Second
	}
	if nodeCfg.Auth.TokenSignKey != "" && nodeCfg.Auth.TokenDuration == 0 {
		nodeCfg.Auth.TokenDuration = time.Hour
	}

	return nodeCfg, nodeCfg.validate()
}
