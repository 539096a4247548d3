// Package grpc serves the mock node over gRPC using the JSON codec of
// package rpc.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mocknode"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/models"
)

// Handler is the root gRPC transport handler. It implements
// [rpc.NodeServer] on top of a mock node and provides the interceptors the
// server is built with.
type Handler struct {
	node *mocknode.Node

	// authCfg enables token checks when TokenSignKey is set.
	authCfg config.Auth

	logger *logger.Logger
}

var _ rpc.NodeServer = (*Handler)(nil)

func NewHandler(node *mocknode.Node, authCfg config.Auth, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		node:    node,
		authCfg: authCfg,
		logger:  logger,
	}
}

func (h *Handler) SyncState(ctx context.Context, req *models.SyncStateRequest) (*models.SyncStateResponse, error) {
	resp, err := h.node.SyncState(ctx, req)
	return resp, toStatus(err)
}

func (h *Handler) SyncNotes(ctx context.Context, req *rpc.SyncNotesRequest) (*models.NoteSyncResponse, error) {
	resp, err := h.node.SyncNotes(ctx, req)
	return resp, toStatus(err)
}

func (h *Handler) GetNotesByID(ctx context.Context, req *rpc.GetNotesByIDRequest) (*rpc.GetNotesByIDResponse, error) {
	resp, err := h.node.GetNotesByID(ctx, req)
	return resp, toStatus(err)
}

func (h *Handler) GetAccountDetails(ctx context.Context, req *rpc.GetAccountDetailsRequest) (*models.AccountDetails, error) {
	resp, err := h.node.GetAccountDetails(ctx, req)
	return resp, toStatus(err)
}

func (h *Handler) CheckNullifiersByPrefix(ctx context.Context, req *rpc.CheckNullifiersRequest) (*rpc.CheckNullifiersResponse, error) {
	resp, err := h.node.CheckNullifiersByPrefix(ctx, req)
	return resp, toStatus(err)
}

func (h *Handler) GetBlockHeaderByNumber(ctx context.Context, req *rpc.GetBlockHeaderRequest) (*models.BlockHeader, error) {
	resp, err := h.node.GetBlockHeaderByNumber(ctx, req)
	return resp, toStatus(err)
}

func (h *Handler) SubmitProvenTransaction(ctx context.Context, req *models.ProvenTransaction) (*rpc.SubmitTransactionResponse, error) {
	resp, err := h.node.SubmitProvenTransaction(ctx, req)
	return resp, toStatus(err)
}
