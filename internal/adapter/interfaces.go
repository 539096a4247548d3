// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a rollup node.
//
// The primary abstraction is [NodeRPCClient], which decouples the sync
// services from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPNodeClient]) and a gRPC implementation
// ([NewGRPCNodeClient]) that exchange the same model values.
//
// Transport failures are mapped to the sentinel values defined in errors.go
// by mapHTTPError and mapGRPCError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404 and
// codes.NotFound alike).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-light-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/node_rpc_client_mock.go -package=mock

// NodeRPCClient is the node API used by the light client.
type NodeRPCClient interface {
	// SyncState returns the first block after req.BlockNum that carries
	// anything matching the request filters, or the chain tip.
	SyncState(ctx context.Context, req models.SyncStateRequest) (models.SyncStateResponse, error)

	// SyncNotes is the note-only variant of SyncState.
	SyncNotes(ctx context.Context, blockNum uint32, tags []models.NoteTag) (models.NoteSyncResponse, error)

	// GetNotesByID returns the known notes among ids. Unknown ids are
	// skipped.
	GetNotesByID(ctx context.Context, ids []models.NoteID) ([]models.FetchedNote, error)

	// GetAccountUpdate returns the current state of an account. Private
	// accounts come back without the full state.
	GetAccountUpdate(ctx context.Context, id models.AccountID) (models.AccountDetails, error)

	// CheckNullifiersByPrefix returns every nullifier matching one of
	// prefixes published at or after fromBlock.
	CheckNullifiersByPrefix(ctx context.Context, prefixes []uint16, fromBlock uint32) ([]models.NullifierUpdate, error)

	GetBlockHeaderByNumber(ctx context.Context, num uint32) (models.BlockHeader, error)

	// SubmitProvenTransaction hands tx to the node and returns the block
	// height it is expected in.
	SubmitProvenTransaction(ctx context.Context, tx models.ProvenTransaction) (uint32, error)

	Close() error
}
