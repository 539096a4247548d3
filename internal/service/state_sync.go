// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-light-client/internal/adapter"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/store"
	"github.com/MKhiriev/go-light-client/models"
)

type stateSync struct {
	rpc      adapter.NodeRPCClient
	store    store.Store
	screener NoteScreener
	logger   *logger.Logger
}

// NewStateSync returns a [StateSync] reading local records from st. Step
// only reads from st.
func NewStateSync(rpc adapter.NodeRPCClient, st store.Store, screener NoteScreener, logger *logger.Logger) StateSync {
	return &stateSync{
		rpc:      rpc,
		store:    st,
		screener: screener,
		logger:   logger,
	}
}

// Step implements [StateSync]. in.PartialMmr is advanced in place.
func (s *stateSync) Step(ctx context.Context, in StepInput) (*models.SyncStatus, error) {
	current := in.Current.Header

	accountIDs := make([]models.AccountID, 0, len(in.Accounts))
	for _, a := range in.Accounts {
		accountIDs = append(accountIDs, a.ID)
	}

	resp, err := s.rpc.SyncState(ctx, models.SyncStateRequest{
		BlockNum:          current.BlockNum,
		AccountIDs:        accountIDs,
		NoteTags:          models.UniqueTags(in.Tags),
		NullifierPrefixes: models.NullifierPrefixes(in.UnspentNullifiers),
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "stateSync.Step").
			Uint32("block_num", current.BlockNum).
			Msg("sync state request failed")
		return nil, fmt.Errorf("sync state from block %d: %w", current.BlockNum, err)
	}

	header := resp.BlockHeader
	if header.BlockNum == current.BlockNum {
		s.logger.Debug().
			Str("func", "stateSync.Step").
			Uint32("block_num", current.BlockNum).
			Msg("node made no progress")
		return nil, nil
	}
	if header.BlockNum < current.BlockNum {
		return nil, fmt.Errorf("%w: node answered block %d for request from block %d",
			ErrInvalidSyncResponse, header.BlockNum, current.BlockNum)
	}

	notes := newNoteTracker()
	if err = s.reconcileCommittedNotes(ctx, header, resp.NoteInclusions, notes); err != nil {
		return nil, fmt.Errorf("reconcile committed notes at block %d: %w", header.BlockNum, err)
	}

	relevant, err := s.hasRelevantNotes(ctx, notes, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("screen notes at block %d: %w", header.BlockNum, err)
	}

	committedTxs, err := s.filterLocalTransactions(ctx, resp.Transactions)
	if err != nil {
		return nil, fmt.Errorf("filter transactions at block %d: %w", header.BlockNum, err)
	}

	discarded, err := s.reconcileNullifiers(ctx, resp.Nullifiers, committedTxs, notes)
	if err != nil {
		return nil, fmt.Errorf("reconcile nullifiers at block %d: %w", header.BlockNum, err)
	}

	accountUpdates, err := s.reconcileAccounts(ctx, in.Accounts, resp.AccountHashUpdates)
	if err != nil {
		return nil, fmt.Errorf("reconcile accounts at block %d: %w", header.BlockNum, err)
	}

	peaks, authNodes, err := applyMmrChanges(in.PartialMmr, resp.MmrDelta, current, in.Current.HasClientNotes)
	if err != nil {
		return nil, err
	}
	if peaks.Hash() != header.ChainRoot {
		return nil, fmt.Errorf("%w: block %d commits to %s, peaks hash to %s",
			ErrChainRootMismatch, header.BlockNum, header.ChainRoot, peaks.Hash())
	}

	noteUpdates := notes.updates()
	update := models.StateSyncUpdate{
		BlockHeader:           &header,
		BlockHasRelevantNotes: relevant,
		NoteUpdates:           noteUpdates,
		TransactionUpdates: models.TransactionUpdates{
			Committed: committedTxs,
			Discarded: discarded,
		},
		NewMmrPeaks:    peaks,
		NewAuthNodes:   authNodes,
		AccountUpdates: accountUpdates,
		TagsToRemove:   noteTagsToRemove(in.Tags, noteUpdates),
	}

	kind := models.SyncedToBlock
	if resp.ChainTip == header.BlockNum {
		kind = models.SyncedToLastBlock
	}

	s.logger.Debug().
		Str("func", "stateSync.Step").
		Uint32("from", current.BlockNum).
		Uint32("to", header.BlockNum).
		Uint32("chain_tip", resp.ChainTip).
		Int("new_notes", len(noteUpdates.NewInputNotes)).
		Int("updated_notes", len(noteUpdates.UpdatedInputNotes)+len(noteUpdates.UpdatedOutputNotes)).
		Bool("relevant", relevant).
		Msg("sync step computed")

	return &models.SyncStatus{Kind: kind, Update: update}, nil
}

type unknownNote struct {
	committed models.CommittedNote
	proof     models.NoteInclusionProof
}

// reconcileCommittedNotes feeds the inclusion proofs of the block to tracked
// notes. Notes nobody tracks are public notes matching a tag; they are
// fetched and added as new input notes.
func (s *stateSync) reconcileCommittedNotes(ctx context.Context, header models.BlockHeader, committed []models.CommittedNote, notes *noteTracker) error {
	if len(committed) == 0 {
		return nil
	}

	ids := make([]models.NoteID, 0, len(committed))
	for _, c := range committed {
		ids = append(ids, c.NoteID)
	}

	inputs, err := s.store.GetInputNotes(ctx, models.NotesByID(ids...))
	if err != nil {
		return fmt.Errorf("load input notes: %w", err)
	}
	outputs, err := s.store.GetOutputNotes(ctx, models.NotesByID(ids...))
	if err != nil {
		return fmt.Errorf("load output notes: %w", err)
	}

	inputByID := make(map[models.NoteID]*models.InputNoteRecord, len(inputs))
	for i := range inputs {
		inputByID[inputs[i].ID()] = &inputs[i]
	}
	outputByID := make(map[models.NoteID]*models.OutputNoteRecord, len(outputs))
	for i := range outputs {
		outputByID[outputs[i].ID] = &outputs[i]
	}

	var unknown []unknownNote
	for _, c := range committed {
		proof, err := c.InclusionProof(header.BlockNum)
		if err != nil {
			return fmt.Errorf("note %s: %w", c.NoteID, err)
		}

		matched := false
		if rec, ok := inputByID[c.NoteID]; ok {
			matched = true
			proofChanged, err := rec.InclusionProofReceived(proof, c.Metadata)
			if err != nil {
				return err
			}
			headerChanged, err := rec.BlockHeaderReceived(header)
			if err != nil {
				return err
			}
			if proofChanged || headerChanged {
				notes.updateInput(rec)
			}
		}
		if rec, ok := outputByID[c.NoteID]; ok {
			matched = true
			changed, err := rec.InclusionProofReceived(proof, c.Metadata)
			if err != nil {
				return err
			}
			if changed {
				notes.updateOutput(rec)
			}
		}
		if !matched {
			unknown = append(unknown, unknownNote{committed: c, proof: proof})
		}
	}

	if len(unknown) == 0 {
		return nil
	}
	return s.fetchPublicNotes(ctx, header, unknown, notes)
}

func (s *stateSync) fetchPublicNotes(ctx context.Context, header models.BlockHeader, unknown []unknownNote, notes *noteTracker) error {
	byID := make(map[models.NoteID]unknownNote, len(unknown))
	ids := make([]models.NoteID, 0, len(unknown))
	for _, u := range unknown {
		byID[u.committed.NoteID] = u
		ids = append(ids, u.committed.NoteID)
	}

	fetched, err := s.rpc.GetNotesByID(ctx, ids)
	if err != nil {
		s.logger.Err(err).
			Str("func", "stateSync.fetchPublicNotes").
			Int("notes", len(ids)).
			Msg("failed to fetch public notes")
		return fmt.Errorf("fetch public notes: %w", err)
	}

	for _, f := range fetched {
		u, ok := byID[f.NoteID]
		if !ok || f.Note == nil {
			continue
		}
		if f.Note.ID() != f.NoteID {
			s.logger.Warn().
				Str("func", "stateSync.fetchPublicNotes").
				Str("note_id", f.NoteID.String()).
				Msg("node returned note details for another id, skipping")
			continue
		}

		metadata := u.committed.Metadata
		rec := models.NewInputNoteRecord(f.Note.NoteDetails, uint64(header.Timestamp), models.ExpectedState{NoteMetadata: &metadata})
		if _, err = rec.InclusionProofReceived(u.proof, metadata); err != nil {
			return err
		}
		if _, err = rec.BlockHeaderReceived(header); err != nil {
			return err
		}
		notes.addNewInput(&rec)
	}
	return nil
}

// hasRelevantNotes reports whether a tracked account can consume one of the
// input notes changed in this step.
func (s *stateSync) hasRelevantNotes(ctx context.Context, notes *noteTracker, accounts []models.AccountID) (bool, error) {
	for _, rec := range notes.changedInputs() {
		note, ok := rec.Note()
		if !ok || rec.IsConsumed() {
			continue
		}
		consumable, err := s.screener.CheckRelevance(ctx, note, accounts)
		if err != nil {
			return false, err
		}
		if len(consumable) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// filterLocalTransactions drops committed transactions this client did not
// submit or already saw committed.
func (s *stateSync) filterLocalTransactions(ctx context.Context, committed []models.TransactionInclusion) ([]models.TransactionInclusion, error) {
	if len(committed) == 0 {
		return nil, nil
	}

	local, err := s.store.GetTransactions(ctx, models.UncommittedTransactions())
	if err != nil {
		return nil, fmt.Errorf("load uncommitted transactions: %w", err)
	}

	pending := make(map[models.TransactionID]struct{}, len(local))
	for _, tx := range local {
		pending[tx.ID] = struct{}{}
	}

	var out []models.TransactionInclusion
	for _, inclusion := range committed {
		if _, ok := pending[inclusion.TransactionID]; ok {
			out = append(out, inclusion)
		}
	}
	return out, nil
}

// reconcileNullifiers consumes notes. Notes consumed by a committed local
// transaction are resolved first. A processing note whose nullifier shows up
// without its transaction being committed was consumed by someone else: the
// local transaction is returned as discarded.
func (s *stateSync) reconcileNullifiers(ctx context.Context, nullifiers []models.NullifierUpdate, committed []models.TransactionInclusion, notes *noteTracker) ([]models.TransactionID, error) {
	resolved := make(map[models.Nullifier]bool)
	committedByID := make(map[models.TransactionID]models.TransactionInclusion, len(committed))
	for _, inclusion := range committed {
		committedByID[inclusion.TransactionID] = inclusion
	}

	if len(committed) > 0 {
		processing, err := s.store.GetInputNotes(ctx, models.ProcessingNotes())
		if err != nil {
			return nil, fmt.Errorf("load processing notes: %w", err)
		}
		for _, stored := range processing {
			rec := notes.input(stored)
			consumer := rec.ConsumerTransactionID()
			if consumer == nil {
				continue
			}
			inclusion, ok := committedByID[*consumer]
			if !ok {
				continue
			}
			changed, err := rec.TransactionCommitted(inclusion.TransactionID, inclusion.BlockNum)
			if err != nil {
				return nil, err
			}
			if changed {
				notes.updateInput(rec)
				resolved[rec.Nullifier()] = true
			}
		}
	}

	if len(nullifiers) == 0 {
		return nil, nil
	}

	blockOf := make(map[models.Nullifier]uint32, len(nullifiers))
	values := make([]models.Nullifier, 0, len(nullifiers))
	for _, n := range nullifiers {
		if _, dup := blockOf[n.Nullifier]; dup {
			continue
		}
		blockOf[n.Nullifier] = n.BlockNum
		values = append(values, n.Nullifier)
	}

	inputs, err := s.inputNotesByNullifier(ctx, values, blockOf, notes)
	if err != nil {
		return nil, err
	}

	var discarded []models.TransactionID
	for _, rec := range inputs {
		nullifier := rec.Nullifier()
		if resolved[nullifier] {
			continue
		}
		if rec.IsProcessing() {
			if consumer := rec.ConsumerTransactionID(); consumer != nil {
				if _, ok := committedByID[*consumer]; !ok && !slices.Contains(discarded, *consumer) {
					discarded = append(discarded, *consumer)
				}
			}
		}
		changed, err := rec.ConsumedExternally(blockOf[nullifier])
		if err != nil {
			return nil, err
		}
		if changed {
			notes.updateInput(rec)
		}
	}

	outputs, err := s.outputNotesByNullifier(ctx, values, blockOf, notes)
	if err != nil {
		return nil, err
	}
	for _, rec := range outputs {
		nullifier, _ := rec.Nullifier()
		changed, err := rec.NullifierReceived(nullifier, blockOf[nullifier])
		if err != nil {
			return nil, err
		}
		if changed {
			notes.updateOutput(rec)
		}
	}

	if len(discarded) > 0 {
		s.logger.Info().
			Str("func", "stateSync.reconcileNullifiers").
			Int("discarded", len(discarded)).
			Msg("local transactions discarded by external consumption")
	}
	return discarded, nil
}

// inputNotesByNullifier merges stored matches with notes created earlier in
// this step, which the store does not know yet.
func (s *stateSync) inputNotesByNullifier(ctx context.Context, values []models.Nullifier, set map[models.Nullifier]uint32, notes *noteTracker) ([]*models.InputNoteRecord, error) {
	stored, err := s.store.GetInputNotes(ctx, models.NotesByNullifier(values...))
	if err != nil {
		return nil, fmt.Errorf("load input notes by nullifier: %w", err)
	}

	out := notes.inputsWithNullifier(set)
	for _, rec := range stored {
		if _, tracked := notes.inputs[rec.ID()]; tracked {
			continue
		}
		out = append(out, notes.input(rec))
	}
	return out, nil
}

func (s *stateSync) outputNotesByNullifier(ctx context.Context, values []models.Nullifier, set map[models.Nullifier]uint32, notes *noteTracker) ([]*models.OutputNoteRecord, error) {
	stored, err := s.store.GetOutputNotes(ctx, models.NotesByNullifier(values...))
	if err != nil {
		return nil, fmt.Errorf("load output notes by nullifier: %w", err)
	}

	out := notes.outputsWithNullifier(set)
	for _, rec := range stored {
		if _, tracked := notes.outputs[rec.ID]; tracked {
			continue
		}
		out = append(out, notes.output(rec))
	}
	return out, nil
}

// noteTagsToRemove returns the note-sourced tags whose note is now committed
// or consumed.
func noteTagsToRemove(tags []models.NoteTagRecord, updates models.NoteUpdates) []models.NoteTagRecord {
	done := make(map[models.NoteID]struct{})
	for _, id := range slices.Concat(updates.CommittedNoteIDs(), updates.ConsumedNoteIDs()) {
		done[id] = struct{}{}
	}
	for _, n := range updates.NewInputNotes {
		if n.IsCommitted() || n.IsConsumed() {
			done[n.ID()] = struct{}{}
		}
	}

	var out []models.NoteTagRecord
	for _, tag := range tags {
		if tag.Source.Kind != models.TagSourceNote {
			continue
		}
		if _, ok := done[tag.Source.NoteID]; ok {
			out = append(out, tag)
		}
	}
	return out
}
