package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-light-client/internal/adapter"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mock"
	"github.com/MKhiriev/go-light-client/models"
)

var testSubmittedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTxService(t *testing.T) (*clientTransactionService, *mock.MockStore, *mock.MockNodeRPCClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	rpc := mock.NewMockNodeRPCClient(ctrl)

	svc := NewClientTransactionService(st, rpc, logger.Nop()).(*clientTransactionService)
	svc.now = func() time.Time { return testSubmittedAt }
	return svc, st, rpc
}

func committedNote(n models.Note) models.InputNoteRecord {
	return models.NewInputNoteRecord(n.NoteDetails, 0, models.CommittedState{NoteMetadata: n.Metadata})
}

func testTransaction(inputs []models.Note, outputs []models.Note) models.TransactionResult {
	ids := make([]models.NoteID, 0, len(inputs))
	nullifiers := make([]models.Nullifier, 0, len(inputs))
	for _, n := range inputs {
		ids = append(ids, n.ID())
		nullifiers = append(nullifiers, n.Nullifier())
	}
	return models.TransactionResult{
		Proven: models.ProvenTransaction{
			ID:               testTxID("tx"),
			AccountID:        testPublic,
			InitAccountHash:  models.Account{ID: testPublic, Nonce: 1}.Hash(),
			FinalAccountHash: models.Account{ID: testPublic, Nonce: 2}.Hash(),
			InputNullifiers:  nullifiers,
			OutputNotes:      outputs,
			BlockRef:         10,
		},
		InputNotes:  ids,
		OutputNotes: outputs,
	}
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestClientTransactionService_Submit(t *testing.T) {
	svc, st, rpc := newTxService(t)
	ctx := context.Background()

	in := testNote(testPublic, 1)
	out := testNote(testPrivate, 2)
	result := testTransaction([]models.Note{in}, []models.Note{out})

	st.EXPECT().GetInputNotes(ctx, models.NotesByID(in.ID())).
		Return([]models.InputNoteRecord{committedNote(in)}, nil)
	rpc.EXPECT().SubmitProvenTransaction(ctx, result.Proven).Return(uint32(11), nil)

	var (
		gotInputs  []models.InputNoteRecord
		gotOutputs []models.OutputNoteRecord
	)
	st.EXPECT().ApplyTransaction(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.TransactionRecord, consumed []models.InputNoteRecord, created []models.OutputNoteRecord) error {
			gotInputs, gotOutputs = consumed, created
			return nil
		})
	st.EXPECT().AddNoteTag(ctx, models.NoteTagRecord{Tag: out.Metadata.Tag, Source: models.NoteTagSourceFor(out.ID())}).
		Return(true, nil)

	record, err := svc.Submit(ctx, result)
	require.NoError(t, err)

	assert.Equal(t, result.Proven.ID, record.ID)
	assert.Equal(t, testPublic, record.AccountID)
	assert.Equal(t, models.TransactionStatusPending, record.Status)
	assert.Equal(t, uint32(10), record.BlockNum)
	assert.Equal(t, uint64(testSubmittedAt.Unix()), record.SubmittedAt)
	assert.Equal(t, []models.NoteID{out.ID()}, record.OutputNoteIDs)
	assert.Equal(t, []models.Nullifier{in.Nullifier()}, record.InputNoteNullifiers)

	require.Len(t, gotInputs, 1)
	assert.Equal(t, models.ProcessingAuthenticatedState{
		NoteMetadata: in.Metadata,
		SubmissionData: models.SubmissionData{
			ConsumerAccount:     testPublic,
			ConsumerTransaction: result.Proven.ID,
			SubmittedAt:         uint64(testSubmittedAt.Unix()),
		},
	}, gotInputs[0].State)

	require.Len(t, gotOutputs, 1)
	assert.Equal(t, out.ID(), gotOutputs[0].ID)
	assert.Equal(t, models.OutputNoteExpected, gotOutputs[0].State)
	assert.Equal(t, uint32(11), gotOutputs[0].ExpectedHeight)
}

func TestClientTransactionService_Submit_EmptyID(t *testing.T) {
	svc, _, _ := newTxService(t)

	result := testTransaction(nil, nil)
	result.Proven.ID = models.TransactionID{}

	_, err := svc.Submit(context.Background(), result)

	require.ErrorIs(t, err, ErrTransactionIDEmpty)
}

func TestClientTransactionService_Submit_UnknownInputNote(t *testing.T) {
	svc, st, _ := newTxService(t)
	known := testNote(testPublic, 1)
	missing := testNote(testPublic, 2)

	st.EXPECT().GetInputNotes(gomock.Any(), models.NotesByID(known.ID(), missing.ID())).
		Return([]models.InputNoteRecord{committedNote(known)}, nil)

	// узел не должен увидеть транзакцию
	_, err := svc.Submit(context.Background(), testTransaction([]models.Note{known, missing}, nil))

	require.ErrorIs(t, err, ErrUnknownInputNote)
}

func TestClientTransactionService_Submit_InputNoteNotConsumable(t *testing.T) {
	n := testNote(testPublic, 1)

	tests := []struct {
		name    string
		stored  models.InputNoteRecord
		wantErr error
	}{
		{name: "already processing", stored: processingNote(n, testTxID("other")), wantErr: models.ErrNoteAlreadyProcessing},
		{
			name:    "already consumed",
			stored:  models.NewInputNoteRecord(n.NoteDetails, 0, models.ConsumedExternalState{NullifierBlockHeight: 3}),
			wantErr: models.ErrNoteAlreadyConsumed,
		},
		{
			name:    "expected without metadata",
			stored:  models.NewInputNoteRecord(n.NoteDetails, 0, models.ExpectedState{}),
			wantErr: models.ErrNoteNotConsumable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, _ := newTxService(t)
			st.EXPECT().GetInputNotes(gomock.Any(), gomock.Any()).Return([]models.InputNoteRecord{tt.stored}, nil)

			_, err := svc.Submit(context.Background(), testTransaction([]models.Note{n}, nil))

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientTransactionService_Submit_NodeRejects(t *testing.T) {
	svc, st, rpc := newTxService(t)
	n := testNote(testPublic, 1)

	st.EXPECT().GetInputNotes(gomock.Any(), gomock.Any()).Return([]models.InputNoteRecord{committedNote(n)}, nil)
	rpc.EXPECT().SubmitProvenTransaction(gomock.Any(), gomock.Any()).
		Return(uint32(0), fmt.Errorf("%w: duplicate transaction", adapter.ErrConflict))
	// ApplyTransaction не вызывается: локальное состояние не меняется

	_, err := svc.Submit(context.Background(), testTransaction([]models.Note{n}, nil))

	require.ErrorIs(t, err, adapter.ErrConflict)
}

func TestClientTransactionService_Submit_StoreFailure(t *testing.T) {
	svc, st, rpc := newTxService(t)
	dbErr := errors.New("disk full")

	st.EXPECT().GetInputNotes(gomock.Any(), gomock.Any()).Times(0)
	rpc.EXPECT().SubmitProvenTransaction(gomock.Any(), gomock.Any()).Return(uint32(4), nil)
	st.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := svc.Submit(context.Background(), testTransaction(nil, nil))

	require.ErrorIs(t, err, dbErr)
}
