package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-client/models"
)

// CatchUpNoteTags implements ClientSyncService. SyncState only asks about
// blocks after the sync height, so a tag subscribed late never sees the
// notes of blocks already synced. This walks those blocks with the
// note-only sync and commits the matching notes the store already tracks.
// Unknown notes are left to the caller to import.
func (s *clientSyncService) CatchUpNoteTags(ctx context.Context, tags []models.NoteTag) (models.SyncSummary, error) {
	if len(tags) == 0 {
		return models.SyncSummary{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	height, err := s.store.GetSyncHeight(ctx)
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("get sync height: %w", err)
	}

	notes := newNoteTracker()
	for blockNum := uint32(0); blockNum < height; {
		resp, err := s.rpc.SyncNotes(ctx, blockNum, tags)
		if err != nil {
			s.logger.Err(err).
				Str("func", "clientSyncService.CatchUpNoteTags").
				Uint32("block_num", blockNum).
				Msg("failed to sync notes")
			return models.SyncSummary{}, fmt.Errorf("sync notes after block %d: %w", blockNum, err)
		}

		header := resp.BlockHeader
		// later blocks belong to the regular sync
		if header.BlockNum > height || header.BlockNum <= blockNum {
			break
		}
		if err = s.commitTrackedNotes(ctx, header, resp.Notes, notes); err != nil {
			return models.SyncSummary{}, err
		}
		blockNum = header.BlockNum
	}

	updates := notes.updates()
	if len(updates.UpdatedInputNotes) == 0 && len(updates.UpdatedOutputNotes) == 0 {
		return models.SyncSummary{BlockNum: height}, nil
	}

	stored, err := s.store.GetNoteTags(ctx)
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("get note tags: %w", err)
	}
	update := models.StateSyncUpdate{NoteUpdates: updates}
	update.TagsToRemove = noteTagsToRemove(stored, updates)

	if err = s.store.ApplyStateSync(ctx, update); err != nil {
		return models.SyncSummary{}, fmt.Errorf("apply note catch-up: %w", err)
	}

	summary := models.NewSyncSummary(update)
	summary.BlockNum = height
	s.metrics.observe(summary)

	s.logger.Info().
		Str("func", "clientSyncService.CatchUpNoteTags").
		Int("tags", len(tags)).
		Int("committed_notes", len(summary.CommittedNotes)).
		Msg("note tags caught up")

	return summary, nil
}

// commitTrackedNotes applies the inclusion of every committed note that is
// already stored as an input or output note.
func (s *clientSyncService) commitTrackedNotes(ctx context.Context, header models.BlockHeader, committed []models.CommittedNote, notes *noteTracker) error {
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

	byID := make(map[models.NoteID]models.CommittedNote, len(committed))
	for _, c := range committed {
		byID[c.NoteID] = c
	}

	for _, stored := range inputs {
		c := byID[stored.ID()]
		proof, err := c.InclusionProof(header.BlockNum)
		if err != nil {
			return fmt.Errorf("note %s: %w", c.NoteID, err)
		}
		rec := notes.input(stored)
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

	for _, stored := range outputs {
		c := byID[stored.ID]
		proof, err := c.InclusionProof(header.BlockNum)
		if err != nil {
			return fmt.Errorf("note %s: %w", c.NoteID, err)
		}
		rec := notes.output(stored)
		changed, err := rec.InclusionProofReceived(proof, c.Metadata)
		if err != nil {
			return err
		}
		if changed {
			notes.updateOutput(rec)
		}
	}
	return nil
}
