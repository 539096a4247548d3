package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/store"
	"github.com/MKhiriev/go-light-client/models"
)

type noteScreener struct {
	accounts store.AccountStore
}

// NewNoteScreener returns a screener reading account vaults from accounts.
func NewNoteScreener(accounts store.AccountStore) NoteScreener {
	return &noteScreener{accounts: accounts}
}

// CheckRelevance dispatches on the note script. Notes with an unknown script,
// or a well-known script with broken inputs, are reported as consumable by
// every tracked account.
func (s *noteScreener) CheckRelevance(ctx context.Context, note models.Note, tracked []models.AccountID) ([]models.NoteConsumability, error) {
	log := logger.FromContext(ctx)

	var (
		out []models.NoteConsumability
		err error
	)
	switch models.ScriptOf(note.Recipient.Script.Root) {
	case models.ScriptP2ID:
		out, err = s.checkP2ID(note, tracked)
	case models.ScriptP2IDR:
		out, err = s.checkP2IDR(note, tracked)
	case models.ScriptSWAP:
		out, err = s.checkSWAP(ctx, note, tracked)
	default:
		return alwaysRelevant(tracked), nil
	}

	if errors.Is(err, models.ErrInvalidNoteInputs) {
		log.Debug().Err(err).
			Str("func", "noteScreener.CheckRelevance").
			Str("note_id", note.ID().String()).
			Msg("malformed well-known note, treating as relevant")
		return alwaysRelevant(tracked), nil
	}
	return out, err
}

func (s *noteScreener) checkP2ID(note models.Note, tracked []models.AccountID) ([]models.NoteConsumability, error) {
	target, err := note.Recipient.P2IDTarget()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(tracked, target) {
		return nil, nil
	}
	return []models.NoteConsumability{{
		AccountID: target,
		Relevance: models.NoteRelevance{Kind: models.RelevanceAlways},
	}}, nil
}

func (s *noteScreener) checkP2IDR(note models.Note, tracked []models.AccountID) ([]models.NoteConsumability, error) {
	recall, err := note.Recipient.P2IDRRecallHeight()
	if err != nil {
		return nil, err
	}
	out, err := s.checkP2ID(note, tracked)
	if err != nil {
		return nil, err
	}

	sender := note.Metadata.Sender
	if slices.Contains(tracked, sender) {
		out = append(out, models.NoteConsumability{
			AccountID: sender,
			Relevance: models.NoteRelevance{Kind: models.RelevanceAfter, AfterBlock: recall},
		})
	}
	return out, nil
}

// checkSWAP only looks at the vault. The note script is not executed.
func (s *noteScreener) checkSWAP(ctx context.Context, note models.Note, tracked []models.AccountID) ([]models.NoteConsumability, error) {
	requested, err := note.Recipient.SWAPRequestedAsset()
	if err != nil {
		return nil, err
	}

	var out []models.NoteConsumability
	for _, id := range tracked {
		account, err := s.accounts.GetAccount(ctx, id)
		if errors.Is(err, store.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load account %s: %w", id, err)
		}
		if account.Vault.Covers(requested) {
			out = append(out, models.NoteConsumability{
				AccountID: id,
				Relevance: models.NoteRelevance{Kind: models.RelevanceAlways},
			})
		}
	}
	return out, nil
}

func alwaysRelevant(tracked []models.AccountID) []models.NoteConsumability {
	out := make([]models.NoteConsumability, 0, len(tracked))
	for _, id := range tracked {
		out = append(out, models.NoteConsumability{
			AccountID: id,
			Relevance: models.NoteRelevance{Kind: models.RelevanceAlways},
		})
	}
	return out
}
