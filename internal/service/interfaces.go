// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the light client sync core.
//
// [StateSync] turns one node response into a [models.StateSyncUpdate]
// without touching the store. [ClientSyncService] drives it: it loads the
// current state, calls Step, and hands every update to
// [store.Store.ApplyStateSync] until the chain tip is reached.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

// StepInput is the local state a sync step starts from.
type StepInput struct {
	// Current is the latest stored block header with its relevance flag.
	Current models.StoredBlockHeader
	// PartialMmr covers blocks [0, Current.BlockNum). Step appends Current.
	PartialMmr *mmr.PartialMmr
	Accounts   []models.AccountHeader
	// Tags are the subscriptions sent to the node. Note-sourced records are
	// dropped once their note is committed or consumed.
	Tags              []models.NoteTagRecord
	UnspentNullifiers []models.Nullifier
}

// StateSync computes sync steps.
type StateSync interface {
	// Step requests the next relevant block after in.Current and reconciles
	// the answer with the local notes, transactions and accounts. It returns
	// nil when the node made no progress. Step never writes to the store.
	Step(ctx context.Context, in StepInput) (*models.SyncStatus, error)
}

// NoteScreener decides which tracked accounts can consume a note.
type NoteScreener interface {
	CheckRelevance(ctx context.Context, note models.Note, tracked []models.AccountID) ([]models.NoteConsumability, error)
}

// ClientSyncService keeps the store in step with the node.
type ClientSyncService interface {
	// SyncStep loads the current state, runs one [StateSync.Step] and applies
	// its update. It returns nil when there was nothing to sync.
	SyncStep(ctx context.Context) (*models.SyncStatus, error)

	// SyncState steps until the chain tip, then backfills nullifiers of
	// imported notes. The summary covers every applied update.
	SyncState(ctx context.Context) (models.SyncSummary, error)

	// CatchUpNoteTags scans the blocks up to the sync height for notes
	// carrying tags and commits the ones the store already tracks. Use it
	// after subscribing to a tag that earlier blocks may have used.
	CatchUpNoteTags(ctx context.Context, tags []models.NoteTag) (models.SyncSummary, error)
}

// ClientTransactionService hands locally proven transactions to the node.
type ClientTransactionService interface {
	// Submit sends the proven transaction, marks its input notes as
	// processing and stores it as pending.
	Submit(ctx context.Context, result models.TransactionResult) (models.TransactionRecord, error)
}

// ClientSyncJob runs [ClientSyncService.SyncState] in the background.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs right away and
	// then every interval, defaulting to 5 minutes if interval is zero or
	// negative. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Run starts the job with its configured interval and blocks until ctx
	// is cancelled.
	Run(ctx context.Context) error
}
