package http

import (
	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mocknode"
)

type Handler struct {
	node *mocknode.Node

	// authCfg enables token checks on node routes when TokenSignKey is set.
	authCfg config.Auth

	logger *logger.Logger
}

func NewHandler(node *mocknode.Node, authCfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", authCfg.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		node:    node,
		authCfg: authCfg,
		logger:  logger,
	}
}
