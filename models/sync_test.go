package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

func TestNewSyncSummary(t *testing.T) {
	f := newNoteFixture(t, 20)
	consumed := NewInputNoteRecord(f.note.NoteDetails, 0, ConsumedExternalState{NullifierBlockHeight: 3})
	committed := NewInputNoteRecord(f.note.NoteDetails, 0, f.committed())
	header := BlockHeader{BlockNum: 3}
	txID := crypto.HashElements(3)

	update := StateSyncUpdate{
		BlockHeader: &header,
		NoteUpdates: NoteUpdates{
			NewInputNotes:     []InputNoteRecord{committed},
			UpdatedInputNotes: []InputNoteRecord{committed, consumed},
		},
		TransactionUpdates: TransactionUpdates{
			Committed: []TransactionInclusion{{TransactionID: txID, BlockNum: 3}},
			Discarded: []TransactionID{crypto.HashElements(4)},
		},
		AccountUpdates: AccountUpdates{
			MismatchedPrivateAccounts: []AccountHashUpdate{{AccountID: 9}},
		},
	}

	s := NewSyncSummary(update)
	assert.Equal(t, uint32(3), s.BlockNum)
	assert.Len(t, s.NewPublicNotes, 1)
	assert.Len(t, s.CommittedNotes, 1)
	assert.Len(t, s.ConsumedNotes, 1)
	assert.Equal(t, []AccountID{9}, s.MismatchedAccounts)
	assert.Equal(t, []TransactionID{txID}, s.CommittedTransactions)
	assert.Len(t, s.DiscardedTransactions, 1)
	assert.False(t, s.IsEmpty())

	total := SyncSummary{BlockNum: 1}
	total.Combine(s)
	total.Combine(SyncSummary{BlockNum: 2})
	assert.Equal(t, uint32(3), total.BlockNum)
	assert.Len(t, total.ConsumedNotes, 1)
}

func TestNoteFilter_Matches(t *testing.T) {
	f := newNoteFixture(t, 21)
	rec := NewInputNoteRecord(f.note.NoteDetails, 0, f.committed())

	assert.True(t, AllNotes().Matches(&rec))
	assert.True(t, NotesByID(rec.ID()).Matches(&rec))
	assert.False(t, NotesByID(crypto.HashElements(1)).Matches(&rec))
	assert.True(t, NotesByNullifier(rec.Nullifier()).Matches(&rec))
	assert.True(t, CommittedNotes().Matches(&rec))
	assert.True(t, UnspentNotes().Matches(&rec))
	assert.False(t, ConsumedNotes().Matches(&rec))

	out := NewOutputNoteRecord(f.note, 1)
	assert.True(t, ExpectedNotes().MatchesOutput(&out))
	assert.False(t, CommittedNotes().MatchesOutput(&out))
	assert.True(t, NotesByNullifier(f.note.Nullifier()).MatchesOutput(&out))
}

func TestTransactionFilter_Matches(t *testing.T) {
	tx := TransactionRecord{ID: crypto.HashElements(1), Status: TransactionStatusPending}

	assert.True(t, UncommittedTransactions().Matches(&tx))
	assert.True(t, TransactionsByID(tx.ID).Matches(&tx))

	tx.Status = TransactionStatusCommitted
	assert.False(t, UncommittedTransactions().Matches(&tx))
	assert.True(t, AllTransactions().Matches(&tx))
}

func TestTransactionStatus_String(t *testing.T) {
	assert.Equal(t, "pending", TransactionStatusPending.String())
	assert.Equal(t, "committed", TransactionStatusCommitted.String())
	assert.Equal(t, "discarded", TransactionStatusDiscarded.String())
	assert.Equal(t, "transaction_status(9)", TransactionStatus(9).String())
}
