package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
)

// NewNodeRPCClient returns the [NodeRPCClient] for cfg.Transport.
func NewNodeRPCClient(cfg config.ClientAdapter, logger *logger.Logger) (NodeRPCClient, error) {
	logger.Info().Str("transport", cfg.Transport).Msg("creating node rpc client...")

	switch cfg.Transport {
	case config.TransportHTTP, "":
		return NewHTTPNodeClient(cfg, logger)
	case config.TransportGRPC:
		return NewGRPCNodeClient(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}
