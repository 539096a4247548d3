// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc is the wire contract between the light client and a node.
//
// The same request and response values travel over both transports: as JSON
// bodies on the HTTP routes below and as JSON-encoded gRPC messages through
// [Codec] on the [ServiceDesc] methods.
package rpc

import (
	"github.com/MKhiriev/go-light-client/models"
)

// HTTP routes served by a node.
const (
	RouteSyncState       = "/api/v1/sync/state"
	RouteSyncNotes       = "/api/v1/sync/notes"
	RouteNotesByID       = "/api/v1/notes/by-id"
	RouteAccount         = "/api/v1/accounts/{id}"
	RouteNullifiers      = "/api/v1/nullifiers/by-prefix"
	RouteBlockHeader     = "/api/v1/blocks/{num}"
	RouteTransactions    = "/api/v1/transactions"
	RouteVersion         = "/api/v1/version"
	RouteAccountParam    = "id"
	RouteBlockParam      = "num"
	AuthorizationHeader  = "Authorization"
	BearerPrefix         = "Bearer "
	ContentTypeJSON      = "application/json"
	ContentTypeHeaderKey = "Content-Type"
)

// SyncNotesRequest asks for the next block after BlockNum with notes
// matching NoteTags.
type SyncNotesRequest struct {
	BlockNum uint32           `json:"block_num"`
	NoteTags []models.NoteTag `json:"note_tags"`
}

type GetNotesByIDRequest struct {
	NoteIDs []models.NoteID `json:"note_ids"`
}

type GetNotesByIDResponse struct {
	Notes []models.FetchedNote `json:"notes"`
}

type GetAccountDetailsRequest struct {
	AccountID models.AccountID `json:"account_id"`
}

// CheckNullifiersRequest asks for every nullifier matching one of Prefixes
// published at or after BlockNum.
type CheckNullifiersRequest struct {
	Prefixes []uint16 `json:"prefixes"`
	BlockNum uint32   `json:"block_num"`
}

type CheckNullifiersResponse struct {
	Nullifiers []models.NullifierUpdate `json:"nullifiers"`
}

type GetBlockHeaderRequest struct {
	BlockNum uint32 `json:"block_num"`
}

type SubmitTransactionResponse struct {
	// BlockHeight is the block the transaction is going to be included in.
	BlockHeight uint32 `json:"block_height"`
}

type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
