package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-light-client/internal/adapter"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/store"
	"github.com/MKhiriev/go-light-client/models"
)

type clientTransactionService struct {
	store  store.Store
	rpc    adapter.NodeRPCClient
	now    func() time.Time
	logger *logger.Logger
}

func NewClientTransactionService(st store.Store, rpc adapter.NodeRPCClient, logger *logger.Logger) ClientTransactionService {
	return &clientTransactionService{
		store:  st,
		rpc:    rpc,
		now:    time.Now,
		logger: logger,
	}
}

// Submit implements ClientTransactionService. Input notes are moved to
// processing before the node sees the transaction, so a note that cannot be
// consumed never leaves the client. Output notes get a note tag until they
// are seen committed.
func (s *clientTransactionService) Submit(ctx context.Context, result models.TransactionResult) (models.TransactionRecord, error) {
	proven := result.Proven
	if proven.ID.IsZero() {
		return models.TransactionRecord{}, ErrTransactionIDEmpty
	}

	inputs, err := s.loadInputNotes(ctx, result.InputNotes)
	if err != nil {
		return models.TransactionRecord{}, err
	}

	submittedAt := uint64(s.now().Unix())
	for i := range inputs {
		if _, err = inputs[i].ConsumedLocally(proven.AccountID, proven.ID, submittedAt); err != nil {
			return models.TransactionRecord{}, fmt.Errorf("consume input note: %w", err)
		}
	}

	height, err := s.rpc.SubmitProvenTransaction(ctx, proven)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientTransactionService.Submit").
			Str("tx_id", proven.ID.String()).
			Msg("node rejected transaction")
		return models.TransactionRecord{}, fmt.Errorf("submit transaction %s: %w", proven.ID, err)
	}

	outputs := make([]models.OutputNoteRecord, 0, len(result.OutputNotes))
	outputIDs := make([]models.NoteID, 0, len(result.OutputNotes))
	for _, n := range result.OutputNotes {
		outputs = append(outputs, models.NewOutputNoteRecord(n, height))
		outputIDs = append(outputIDs, n.ID())
	}

	record := models.TransactionRecord{
		ID:                  proven.ID,
		AccountID:           proven.AccountID,
		InitAccountHash:     proven.InitAccountHash,
		FinalAccountHash:    proven.FinalAccountHash,
		InputNoteNullifiers: proven.InputNullifiers,
		OutputNoteIDs:       outputIDs,
		BlockNum:            proven.BlockRef,
		Status:              models.TransactionStatusPending,
		SubmittedAt:         submittedAt,
	}

	if err = s.store.ApplyTransaction(ctx, record, inputs, outputs); err != nil {
		return models.TransactionRecord{}, fmt.Errorf("store transaction %s: %w", proven.ID, err)
	}

	for _, n := range result.OutputNotes {
		tag := models.NoteTagRecord{Tag: n.Metadata.Tag, Source: models.NoteTagSourceFor(n.ID())}
		if _, err = s.store.AddNoteTag(ctx, tag); err != nil {
			return record, fmt.Errorf("add tag for output note %s: %w", n.ID(), err)
		}
	}

	s.logger.Info().
		Str("func", "clientTransactionService.Submit").
		Str("tx_id", proven.ID.String()).
		Uint32("expected_height", height).
		Int("input_notes", len(inputs)).
		Int("output_notes", len(outputs)).
		Msg("transaction submitted")

	return record, nil
}

func (s *clientTransactionService) loadInputNotes(ctx context.Context, ids []models.NoteID) ([]models.InputNoteRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	inputs, err := s.store.GetInputNotes(ctx, models.NotesByID(ids...))
	if err != nil {
		return nil, fmt.Errorf("load input notes: %w", err)
	}

	found := make(map[models.NoteID]struct{}, len(inputs))
	for i := range inputs {
		found[inputs[i].ID()] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownInputNote, id)
		}
	}
	return inputs, nil
}
