package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-light-client/internal/adapter"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/internal/store"
	"github.com/MKhiriev/go-light-client/models"
)

type clientSyncService struct {
	store     store.Store
	rpc       adapter.NodeRPCClient
	stateSync StateSync
	metrics   *Metrics
	logger    *logger.Logger

	// mu serializes syncs against the store.
	mu sync.Mutex
}

func NewClientSyncService(st store.Store, rpc adapter.NodeRPCClient, stateSync StateSync, metrics *Metrics, logger *logger.Logger) ClientSyncService {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &clientSyncService{
		store:     st,
		rpc:       rpc,
		stateSync: stateSync,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *clientSyncService) SyncStep(ctx context.Context) (*models.SyncStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.step(ctx)
}

func (s *clientSyncService) SyncState(ctx context.Context) (models.SyncSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary models.SyncSummary
	for {
		status, err := s.step(ctx)
		if err != nil {
			return summary, err
		}
		if status == nil {
			break
		}
		summary.Combine(models.NewSyncSummary(status.Update))
		if status.IsLastBlock() {
			break
		}
	}

	backfill, err := s.backfillNullifiers(ctx)
	if err != nil {
		return summary, fmt.Errorf("backfill nullifiers: %w", err)
	}
	summary.Combine(backfill)

	height, err := s.store.GetSyncHeight(ctx)
	if err != nil {
		return summary, fmt.Errorf("get sync height: %w", err)
	}
	summary.BlockNum = max(summary.BlockNum, height)

	s.logger.Info().
		Str("func", "clientSyncService.SyncState").
		Uint32("block_num", summary.BlockNum).
		Int("new_notes", len(summary.NewPublicNotes)).
		Int("committed_notes", len(summary.CommittedNotes)).
		Int("consumed_notes", len(summary.ConsumedNotes)).
		Int("discarded_transactions", len(summary.DiscardedTransactions)).
		Msg("state synced")

	return summary, nil
}

// step must be called with mu held.
func (s *clientSyncService) step(ctx context.Context) (*models.SyncStatus, error) {
	in, err := s.loadStepInput(ctx)
	if err != nil {
		return nil, err
	}

	status, err := s.stateSync.Step(ctx, in)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}

	if err = s.store.ApplyStateSync(ctx, status.Update); err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.step").
			Uint32("block_num", status.Update.BlockNum()).
			Msg("failed to apply state sync update")
		return nil, fmt.Errorf("apply state sync at block %d: %w", status.Update.BlockNum(), err)
	}

	s.metrics.SyncSteps.Add(1)
	s.metrics.SyncedBlockHeight.Set(float64(status.Update.BlockNum()))
	s.metrics.observe(models.NewSyncSummary(status.Update))

	return status, nil
}

func (s *clientSyncService) loadStepInput(ctx context.Context) (StepInput, error) {
	current, err := s.currentHeader(ctx)
	if err != nil {
		return StepInput{}, err
	}

	partial, err := s.store.BuildCurrentPartialMmr(ctx)
	if err != nil {
		return StepInput{}, fmt.Errorf("build partial mmr: %w", err)
	}

	accounts, err := s.store.GetAccountHeaders(ctx)
	if err != nil {
		return StepInput{}, fmt.Errorf("get account headers: %w", err)
	}

	tags, err := s.noteTags(ctx, accounts)
	if err != nil {
		return StepInput{}, err
	}

	unspent, err := s.unspentNullifiers(ctx)
	if err != nil {
		return StepInput{}, err
	}

	return StepInput{
		Current:           current,
		PartialMmr:        partial,
		Accounts:          accounts,
		Tags:              tags,
		UnspentNullifiers: unspent,
	}, nil
}

// currentHeader returns the header of the sync height. An empty store is
// initialised with the genesis header of the node.
func (s *clientSyncService) currentHeader(ctx context.Context) (models.StoredBlockHeader, error) {
	height, err := s.store.GetSyncHeight(ctx)
	if err != nil {
		return models.StoredBlockHeader{}, fmt.Errorf("get sync height: %w", err)
	}

	stored, err := s.store.GetBlockHeaderByNum(ctx, height)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, store.ErrBlockHeaderNotFound) {
		return models.StoredBlockHeader{}, fmt.Errorf("get block header %d: %w", height, err)
	}
	if height != 0 {
		return models.StoredBlockHeader{}, fmt.Errorf("%w: %d", ErrMissingBlockHeader, height)
	}

	genesis, err := s.rpc.GetBlockHeaderByNumber(ctx, 0)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.currentHeader").
			Msg("failed to fetch genesis header")
		return models.StoredBlockHeader{}, fmt.Errorf("fetch genesis header: %w", err)
	}

	var empty mmr.Peaks
	if genesis.ChainRoot != empty.Hash() {
		return models.StoredBlockHeader{}, fmt.Errorf("%w: genesis header commits to a non-empty chain", ErrChainRootMismatch)
	}
	if err = s.store.InsertBlockHeader(ctx, genesis, empty, false); err != nil {
		return models.StoredBlockHeader{}, fmt.Errorf("store genesis header: %w", err)
	}

	s.logger.Info().
		Str("func", "clientSyncService.currentHeader").
		Str("hash", genesis.Hash().String()).
		Msg("initialised store with genesis header")

	return models.StoredBlockHeader{Header: genesis}, nil
}

// noteTags returns the stored subscriptions plus one account tag per tracked
// account.
func (s *clientSyncService) noteTags(ctx context.Context, accounts []models.AccountHeader) ([]models.NoteTagRecord, error) {
	tags, err := s.store.GetNoteTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("get note tags: %w", err)
	}

	for _, a := range accounts {
		tags = append(tags, models.NoteTagRecord{
			Tag:    models.NoteTagForAccount(a.ID),
			Source: models.AccountTagSource(a.ID),
		})
	}
	return tags, nil
}

// unspentNullifiers covers unspent input notes and committed output notes.
func (s *clientSyncService) unspentNullifiers(ctx context.Context) ([]models.Nullifier, error) {
	nullifiers, err := s.store.GetUnspentInputNoteNullifiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get unspent nullifiers: %w", err)
	}

	outputs, err := s.store.GetOutputNotes(ctx, models.CommittedNotes())
	if err != nil {
		return nil, fmt.Errorf("get committed output notes: %w", err)
	}
	for i := range outputs {
		if n, ok := outputs[i].Nullifier(); ok {
			nullifiers = append(nullifiers, n)
		}
	}
	return nullifiers, nil
}

// backfillNullifiers checks the whole chain for nullifiers of notes that
// were imported rather than synced. Their consumption may predate the sync
// height, so the regular steps never report it.
func (s *clientSyncService) backfillNullifiers(ctx context.Context) (models.SyncSummary, error) {
	imported, err := s.store.GetInputNotes(ctx,
		models.NotesByState(models.StateExpected, models.StateUnverified, models.StateCommitted))
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("get imported notes: %w", err)
	}
	if len(imported) == 0 {
		return models.SyncSummary{}, nil
	}

	nullifiers := make([]models.Nullifier, 0, len(imported))
	for i := range imported {
		nullifiers = append(nullifiers, imported[i].Nullifier())
	}

	published, err := s.rpc.CheckNullifiersByPrefix(ctx, models.NullifierPrefixes(nullifiers), 0)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientSyncService.backfillNullifiers").
			Int("notes", len(imported)).
			Msg("failed to check nullifiers")
		return models.SyncSummary{}, fmt.Errorf("check nullifiers: %w", err)
	}

	blockOf := make(map[models.Nullifier]uint32, len(published))
	for _, p := range published {
		blockOf[p.Nullifier] = p.BlockNum
	}

	var consumed []models.InputNoteRecord
	for i := range imported {
		rec := &imported[i]
		block, ok := blockOf[rec.Nullifier()]
		if !ok {
			continue
		}
		changed, err := rec.ConsumedExternally(block)
		if err != nil {
			return models.SyncSummary{}, err
		}
		if changed {
			consumed = append(consumed, *rec)
		}
	}
	if len(consumed) == 0 {
		return models.SyncSummary{}, nil
	}

	tags, err := s.store.GetNoteTags(ctx)
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("get note tags: %w", err)
	}

	update := models.StateSyncUpdate{
		NoteUpdates: models.NoteUpdates{UpdatedInputNotes: consumed},
	}
	update.TagsToRemove = noteTagsToRemove(tags, update.NoteUpdates)

	if err = s.store.ApplyStateSync(ctx, update); err != nil {
		return models.SyncSummary{}, fmt.Errorf("apply nullifier backfill: %w", err)
	}

	s.logger.Info().
		Str("func", "clientSyncService.backfillNullifiers").
		Int("consumed", len(consumed)).
		Msg("imported notes found consumed")

	summary := models.NewSyncSummary(update)
	s.metrics.observe(summary)
	return summary, nil
}
