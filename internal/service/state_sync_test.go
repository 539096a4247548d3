// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-light-client/internal/adapter"
	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/internal/mock"
	"github.com/MKhiriev/go-light-client/internal/mocknode"
	"github.com/MKhiriev/go-light-client/models"
)

var (
	testFaucet  = models.NewAccountID(10, models.AccountTypeFungibleFaucet, models.AccountStoragePublic)
	testPublic  = models.NewAccountID(11, models.AccountTypeRegularUpdatableCode, models.AccountStoragePublic)
	testPrivate = models.NewAccountID(12, models.AccountTypeRegularUpdatableCode, models.AccountStoragePrivate)
)

type stepEnv struct {
	store *mock.MockStore
	rpc   *mock.MockNodeRPCClient
	chain *mocknode.Chain
	sync  *stateSync
}

func newStepEnv(t *testing.T) *stepEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	rpc := mock.NewMockNodeRPCClient(ctrl)

	return &stepEnv{
		store: st,
		rpc:   rpc,
		chain: mocknode.NewChain(),
		sync:  NewStateSync(rpc, st, NewNoteScreener(st), logger.Nop()).(*stateSync),
	}
}

// serveChain answers SyncState from the mock chain.
func (e *stepEnv) serveChain() {
	e.rpc.EXPECT().SyncState(gomock.Any(), gomock.Any()).DoAndReturn(e.chain.SyncState).AnyTimes()
}

func (e *stepEnv) serveNotes() {
	e.rpc.EXPECT().GetNotesByID(gomock.Any(), gomock.Any()).DoAndReturn(e.chain.GetNotesByID).AnyTimes()
}

// genesisInput starts a step from the genesis block with an empty MMR.
func (e *stepEnv) genesisInput(t *testing.T) StepInput {
	t.Helper()
	genesis, err := e.chain.GetBlockHeaderByNumber(context.Background(), 0)
	require.NoError(t, err)

	return StepInput{
		Current:    models.StoredBlockHeader{Header: genesis},
		PartialMmr: mmr.NewPartial(mmr.Peaks{}),
	}
}

func testNote(target models.AccountID, serial uint64) models.Note {
	return models.NewP2IDNote(testFaucet, target, models.NoteAssets{{Faucet: testFaucet, Amount: 10 * serial}}, [4]uint64{serial, 0, 0, 0})
}

func testTxID(name string) models.TransactionID {
	return crypto.Hash([]byte(name))
}

func processingNote(n models.Note, consumer models.TransactionID) models.InputNoteRecord {
	return models.NewInputNoteRecord(n.NoteDetails, 0, models.ProcessingAuthenticatedState{
		NoteMetadata:   n.Metadata,
		SubmissionData: models.SubmissionData{ConsumerAccount: testPublic, ConsumerTransaction: consumer},
	})
}

func expectedNote(n models.Note) models.InputNoteRecord {
	meta := n.Metadata
	return models.NewInputNoteRecord(n.NoteDetails, 0, models.ExpectedState{NoteMetadata: &meta})
}

// ── no progress / transport ──────────────────────────────────────────────────

func TestStep_NoProgressMakesNoStoreCalls(t *testing.T) {
	e := newStepEnv(t)
	e.serveChain()

	// ни одного EXPECT на store: любой вызов провалит тест
	status, err := e.sync.Step(context.Background(), e.genesisInput(t))

	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestStep_RPCErrorPropagates(t *testing.T) {
	e := newStepEnv(t)
	e.rpc.EXPECT().SyncState(gomock.Any(), gomock.Any()).
		Return(models.SyncStateResponse{}, fmt.Errorf("dial: %w", adapter.ErrUnavailable))

	status, err := e.sync.Step(context.Background(), e.genesisInput(t))

	require.ErrorIs(t, err, adapter.ErrUnavailable)
	assert.Nil(t, status)
}

func TestStep_RequestCarriesFilters(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPublic, 1)

	in := e.genesisInput(t)
	in.Accounts = []models.AccountHeader{{ID: testPublic}}
	in.Tags = []models.NoteTagRecord{
		{Tag: 7, Source: models.UserTagSource()},
		{Tag: 7, Source: models.NoteTagSourceFor(n.ID())},
	}
	in.UnspentNullifiers = []models.Nullifier{n.Nullifier()}

	e.rpc.EXPECT().SyncState(gomock.Any(), models.SyncStateRequest{
		BlockNum:          0,
		AccountIDs:        []models.AccountID{testPublic},
		NoteTags:          []models.NoteTag{7},
		NullifierPrefixes: []uint16{models.NullifierPrefix(n.Nullifier())},
	}).Return(models.SyncStateResponse{BlockHeader: in.Current.Header}, nil)

	status, err := e.sync.Step(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestStep_ResponseBehindCurrentBlock(t *testing.T) {
	e := newStepEnv(t)
	e.rpc.EXPECT().SyncState(gomock.Any(), gomock.Any()).
		Return(models.SyncStateResponse{ChainTip: 9, BlockHeader: models.BlockHeader{BlockNum: 1}}, nil)

	in := StepInput{
		Current:    models.StoredBlockHeader{Header: models.BlockHeader{BlockNum: 3}},
		PartialMmr: mmr.NewPartial(mmr.Peaks{}),
	}
	_, err := e.sync.Step(context.Background(), in)

	require.ErrorIs(t, err, ErrInvalidSyncResponse)
}

// ── chain authentication ─────────────────────────────────────────────────────

func TestStep_ForgedDeltaIsRejected(t *testing.T) {
	e := newStepEnv(t)
	e.chain.AddBlock()
	e.chain.AddBlock()

	e.rpc.EXPECT().SyncState(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req models.SyncStateRequest) (models.SyncStateResponse, error) {
			resp, err := e.chain.SyncState(ctx, req)
			require.NotEmpty(t, resp.MmrDelta.Data)
			resp.MmrDelta.Data[0] = crypto.Hash([]byte("forged"))
			return resp, err
		})

	_, err := e.sync.Step(context.Background(), e.genesisInput(t))

	require.ErrorIs(t, err, ErrChainRootMismatch)
}

func TestStep_ForgedChainRootIsRejected(t *testing.T) {
	e := newStepEnv(t)
	e.chain.AddBlock()

	e.rpc.EXPECT().SyncState(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req models.SyncStateRequest) (models.SyncStateResponse, error) {
			resp, err := e.chain.SyncState(ctx, req)
			resp.BlockHeader.ChainRoot = crypto.Hash([]byte("forged"))
			return resp, err
		})

	_, err := e.sync.Step(context.Background(), e.genesisInput(t))

	require.ErrorIs(t, err, ErrChainRootMismatch)
}

func TestStep_MalformedDeltaIsRejected(t *testing.T) {
	e := newStepEnv(t)
	e.chain.AddBlock()
	e.chain.AddBlock()

	e.rpc.EXPECT().SyncState(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req models.SyncStateRequest) (models.SyncStateResponse, error) {
			resp, err := e.chain.SyncState(ctx, req)
			resp.MmrDelta.Data = append(resp.MmrDelta.Data, crypto.Hash([]byte("extra")))
			return resp, err
		})

	_, err := e.sync.Step(context.Background(), e.genesisInput(t))

	require.ErrorIs(t, err, mmr.ErrInvalidUpdate)
}

func TestStep_EmptyChainAdvancesToTip(t *testing.T) {
	e := newStepEnv(t)
	for range 3 {
		e.chain.AddBlock()
	}
	e.serveChain()

	status, err := e.sync.Step(context.Background(), e.genesisInput(t))

	require.NoError(t, err)
	require.NotNil(t, status)
	assert.True(t, status.IsLastBlock())

	u := status.Update
	assert.Equal(t, uint32(3), u.BlockNum())
	assert.False(t, u.BlockHasRelevantNotes)
	assert.Equal(t, mmr.Forest(3), u.NewMmrPeaks.Forest)
	assert.True(t, u.NoteUpdates.IsEmpty())

	want, err := e.chain.Peaks(3)
	require.NoError(t, err)
	assert.Equal(t, want.Hash(), u.NewMmrPeaks.Hash())
}

// ── committed notes ──────────────────────────────────────────────────────────

func TestStep_NewPublicNoteIsCommittedAndFlagsBlock(t *testing.T) {
	tests := []struct {
		name         string
		target       models.AccountID
		wantRelevant bool
	}{
		{name: "note for tracked account", target: testPublic, wantRelevant: true},
		{name: "note for someone else", target: testPrivate, wantRelevant: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newStepEnv(t)
			n := testNote(tt.target, 1)
			_, err := e.chain.AddNote(n, false)
			require.NoError(t, err)
			e.chain.AddBlock()
			e.chain.AddBlock()
			e.serveChain()
			e.serveNotes()

			e.store.EXPECT().GetInputNotes(gomock.Any(), models.NotesByID(n.ID())).Return(nil, nil)
			e.store.EXPECT().GetOutputNotes(gomock.Any(), models.NotesByID(n.ID())).Return(nil, nil)

			in := e.genesisInput(t)
			in.Accounts = []models.AccountHeader{{ID: testPublic}}
			in.Tags = []models.NoteTagRecord{{Tag: n.Metadata.Tag, Source: models.UserTagSource()}}

			status, err := e.sync.Step(context.Background(), in)
			require.NoError(t, err)
			require.NotNil(t, status)

			// блок 1 не последний: нужен ещё шаг
			assert.Equal(t, models.SyncedToBlock, status.Kind)
			u := status.Update
			assert.Equal(t, uint32(1), u.BlockNum())
			assert.Equal(t, tt.wantRelevant, u.BlockHasRelevantNotes)

			require.Len(t, u.NoteUpdates.NewInputNotes, 1)
			got := u.NoteUpdates.NewInputNotes[0]
			assert.Equal(t, n.ID(), got.ID())
			assert.True(t, got.IsCommitted())
			assert.Empty(t, u.NoteUpdates.UpdatedInputNotes)
		})
	}
}

func TestStep_PrivateUnknownNoteIsSkipped(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPublic, 1)
	_, err := e.chain.AddNote(n, true)
	require.NoError(t, err)
	e.chain.AddBlock()
	e.serveChain()
	e.serveNotes()

	e.store.EXPECT().GetInputNotes(gomock.Any(), gomock.Any()).Return(nil, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), gomock.Any()).Return(nil, nil)

	in := e.genesisInput(t)
	in.Tags = []models.NoteTagRecord{{Tag: n.Metadata.Tag, Source: models.UserTagSource()}}

	status, err := e.sync.Step(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.True(t, status.Update.NoteUpdates.IsEmpty())
}

func TestStep_TrackedNoteIsCommittedAndItsTagRemoved(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPrivate, 1)
	_, err := e.chain.AddNote(n, true)
	require.NoError(t, err)
	e.chain.AddBlock()
	e.serveChain()

	noteTag := models.NoteTagRecord{Tag: n.Metadata.Tag, Source: models.NoteTagSourceFor(n.ID())}
	userTag := models.NoteTagRecord{Tag: 99, Source: models.UserTagSource()}

	e.store.EXPECT().GetInputNotes(gomock.Any(), models.NotesByID(n.ID())).
		Return([]models.InputNoteRecord{expectedNote(n)}, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), models.NotesByID(n.ID())).Return(nil, nil)

	in := e.genesisInput(t)
	in.Tags = []models.NoteTagRecord{noteTag, userTag}

	status, err := e.sync.Step(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, status)

	u := status.Update
	require.Len(t, u.NoteUpdates.UpdatedInputNotes, 1)
	assert.True(t, u.NoteUpdates.UpdatedInputNotes[0].IsCommitted())
	assert.Empty(t, u.NoteUpdates.NewInputNotes)
	assert.Equal(t, []models.NoteTagRecord{noteTag}, u.TagsToRemove)
}

func TestStep_CommittedNoteWithDifferentProofFails(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPrivate, 1)
	_, err := e.chain.AddNote(n, false)
	require.NoError(t, err)
	e.chain.AddBlock()
	e.serveChain()

	// локально нота уже committed с другим доказательством
	committed := models.NewInputNoteRecord(n.NoteDetails, 0, models.CommittedState{
		NoteMetadata: n.Metadata,
		Proof:        models.NoteInclusionProof{BlockNum: 7},
	})
	e.store.EXPECT().GetInputNotes(gomock.Any(), gomock.Any()).Return([]models.InputNoteRecord{committed}, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), gomock.Any()).Return(nil, nil)

	in := e.genesisInput(t)
	in.Tags = []models.NoteTagRecord{{Tag: n.Metadata.Tag, Source: models.UserTagSource()}}

	_, err = e.sync.Step(context.Background(), in)

	require.ErrorIs(t, err, models.ErrInclusionProofMismatch)
}

func TestStep_OutputNoteCommittedAndConsumedInOneBlock(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPrivate, 1)
	_, err := e.chain.AddNote(n, false)
	require.NoError(t, err)
	e.chain.AddNullifier(n.Nullifier())
	e.chain.AddBlock()
	e.serveChain()

	out := models.NewOutputNoteRecord(n, 1)
	e.store.EXPECT().GetInputNotes(gomock.Any(), models.NotesByID(n.ID())).Return(nil, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), models.NotesByID(n.ID())).Return([]models.OutputNoteRecord{out}, nil)
	e.store.EXPECT().GetInputNotes(gomock.Any(), models.NotesByNullifier(n.Nullifier())).Return(nil, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), models.NotesByNullifier(n.Nullifier())).Return([]models.OutputNoteRecord{out}, nil)

	in := e.genesisInput(t)
	in.Tags = []models.NoteTagRecord{{Tag: n.Metadata.Tag, Source: models.NoteTagSourceFor(n.ID())}}
	in.UnspentNullifiers = []models.Nullifier{n.Nullifier()}

	status, err := e.sync.Step(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, status)

	u := status.Update
	assert.Empty(t, u.NoteUpdates.NewInputNotes)
	require.Len(t, u.NoteUpdates.UpdatedOutputNotes, 1)
	got := u.NoteUpdates.UpdatedOutputNotes[0]
	assert.Equal(t, models.OutputNoteConsumed, got.State)
	assert.Equal(t, uint32(1), got.ConsumedAt)
	require.NotNil(t, got.InclusionProof)
	assert.Equal(t, uint32(1), got.InclusionProof.BlockNum)
	assert.Len(t, u.TagsToRemove, 1)
}

// ── nullifiers and transactions ──────────────────────────────────────────────

func TestStep_DiscardsTransactionOfExternallyConsumedNote(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPublic, 1)
	local := testTxID("local")

	e.chain.AddNullifier(n.Nullifier())
	e.chain.AddBlock()
	e.serveChain()

	e.store.EXPECT().GetInputNotes(gomock.Any(), models.NotesByNullifier(n.Nullifier())).
		Return([]models.InputNoteRecord{processingNote(n, local)}, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), models.NotesByNullifier(n.Nullifier())).Return(nil, nil)

	in := e.genesisInput(t)
	in.UnspentNullifiers = []models.Nullifier{n.Nullifier()}

	status, err := e.sync.Step(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.True(t, status.IsLastBlock())

	u := status.Update
	assert.Equal(t, []models.TransactionID{local}, u.TransactionUpdates.Discarded)
	assert.Empty(t, u.TransactionUpdates.Committed)
	require.Len(t, u.NoteUpdates.UpdatedInputNotes, 1)
	assert.Equal(t, models.ConsumedExternalState{NullifierBlockHeight: 1}, u.NoteUpdates.UpdatedInputNotes[0].State)
}

func TestStep_CommittedLocalTransactionConsumesNote(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPublic, 1)
	local := testTxID("local")
	foreign := testTxID("foreign")

	e.chain.AddNullifier(n.Nullifier())
	e.chain.AddTransaction(local, testPublic)
	e.chain.AddTransaction(foreign, testPublic)
	e.chain.AddBlock()
	e.serveChain()

	rec := processingNote(n, local)
	e.store.EXPECT().GetTransactions(gomock.Any(), models.UncommittedTransactions()).
		Return([]models.TransactionRecord{{ID: local, AccountID: testPublic, Status: models.TransactionStatusPending}}, nil)
	e.store.EXPECT().GetInputNotes(gomock.Any(), models.ProcessingNotes()).
		Return([]models.InputNoteRecord{rec}, nil)
	e.store.EXPECT().GetInputNotes(gomock.Any(), models.NotesByNullifier(n.Nullifier())).
		Return([]models.InputNoteRecord{rec}, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), models.NotesByNullifier(n.Nullifier())).Return(nil, nil)

	in := e.genesisInput(t)
	in.Accounts = []models.AccountHeader{{ID: testPublic}}
	in.UnspentNullifiers = []models.Nullifier{n.Nullifier()}

	status, err := e.sync.Step(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, status)

	u := status.Update
	// чужая транзакция отброшена фильтром
	assert.Equal(t, []models.TransactionInclusion{{TransactionID: local, AccountID: testPublic, BlockNum: 1}},
		u.TransactionUpdates.Committed)
	assert.Empty(t, u.TransactionUpdates.Discarded)

	require.Len(t, u.NoteUpdates.UpdatedInputNotes, 1)
	got := u.NoteUpdates.UpdatedInputNotes[0]
	assert.Equal(t, models.StateConsumedAuthenticatedLocal, got.State.Kind())
	assert.Equal(t, local, *got.ConsumerTransactionID())
}

func TestStep_NullifierOfExpectedOutputNoteFails(t *testing.T) {
	e := newStepEnv(t)
	n := testNote(testPrivate, 1)
	e.chain.AddNullifier(n.Nullifier())
	e.chain.AddBlock()
	e.serveChain()

	e.store.EXPECT().GetInputNotes(gomock.Any(), gomock.Any()).Return(nil, nil)
	e.store.EXPECT().GetOutputNotes(gomock.Any(), gomock.Any()).
		Return([]models.OutputNoteRecord{models.NewOutputNoteRecord(n, 1)}, nil)

	in := e.genesisInput(t)
	in.UnspentNullifiers = []models.Nullifier{n.Nullifier()}

	_, err := e.sync.Step(context.Background(), in)

	require.ErrorIs(t, err, models.ErrInvalidTransition)
}

// ── accounts ─────────────────────────────────────────────────────────────────

func TestStep_PublicAccountNonceGuard(t *testing.T) {
	tests := []struct {
		name        string
		remoteNonce uint64
		wantUpdated bool
	}{
		{name: "older state", remoteNonce: 4, wantUpdated: false},
		{name: "same nonce", remoteNonce: 5, wantUpdated: false},
		{name: "newer state", remoteNonce: 6, wantUpdated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newStepEnv(t)
			local := models.Account{ID: testPublic, Nonce: 5}
			e.chain.AddAccountUpdate(models.Account{ID: testPublic, Nonce: 6})
			e.chain.AddBlock()
			e.serveChain()

			remote := models.Account{ID: testPublic, Nonce: tt.remoteNonce}
			e.rpc.EXPECT().GetAccountUpdate(gomock.Any(), testPublic).
				Return(models.AccountDetails{ID: testPublic, Hash: remote.Hash(), Account: &remote}, nil)

			in := e.genesisInput(t)
			in.Accounts = []models.AccountHeader{local.Header()}

			status, err := e.sync.Step(context.Background(), in)
			require.NoError(t, err)
			require.NotNil(t, status)

			updated := status.Update.AccountUpdates.UpdatedPublicAccounts
			if tt.wantUpdated {
				assert.Equal(t, []models.Account{remote}, updated)
			} else {
				assert.Empty(t, updated)
			}
		})
	}
}

func TestStep_PublicAccountUnchangedHashIsNotFetched(t *testing.T) {
	e := newStepEnv(t)
	local := models.Account{ID: testPublic, Nonce: 3}
	e.chain.AddAccountUpdate(local)
	e.chain.AddBlock()
	e.serveChain()

	in := e.genesisInput(t)
	in.Accounts = []models.AccountHeader{local.Header()}

	status, err := e.sync.Step(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Empty(t, status.Update.AccountUpdates.UpdatedPublicAccounts)
}

func TestStep_PublicAccountReportedPrivate(t *testing.T) {
	e := newStepEnv(t)
	e.chain.AddAccountUpdate(models.Account{ID: testPublic, Nonce: 2})
	e.chain.AddBlock()
	e.serveChain()

	e.rpc.EXPECT().GetAccountUpdate(gomock.Any(), testPublic).
		Return(models.AccountDetails{ID: testPublic}, nil)

	in := e.genesisInput(t)
	in.Accounts = []models.AccountHeader{{ID: testPublic, Nonce: 1}}

	_, err := e.sync.Step(context.Background(), in)

	require.ErrorIs(t, err, ErrAccountIsPrivate)
}

func TestStep_PrivateAccountMismatch(t *testing.T) {
	remoteHash := crypto.Hash([]byte("remote-state"))

	tests := []struct {
		name         string
		known        *models.AccountHeader
		wantMismatch bool
	}{
		{name: "hash unknown locally", known: nil, wantMismatch: true},
		{name: "hash of a stored state", known: &models.AccountHeader{ID: testPrivate, Nonce: 2}, wantMismatch: false},
		{name: "hash of another account", known: &models.AccountHeader{ID: testPublic}, wantMismatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newStepEnv(t)
			e.chain.AddPrivateAccountUpdate(testPrivate, remoteHash)
			e.chain.AddBlock()
			e.serveChain()

			e.store.EXPECT().GetAccountHeaderByHash(gomock.Any(), remoteHash).Return(tt.known, nil)

			in := e.genesisInput(t)
			in.Accounts = []models.AccountHeader{{ID: testPrivate, Nonce: 1}}

			status, err := e.sync.Step(context.Background(), in)
			require.NoError(t, err)
			require.NotNil(t, status)

			mismatched := status.Update.AccountUpdates.MismatchedPrivateAccounts
			if tt.wantMismatch {
				require.Len(t, mismatched, 1)
				assert.Equal(t, testPrivate, mismatched[0].AccountID)
				assert.Equal(t, remoteHash, mismatched[0].Hash)
			} else {
				assert.Empty(t, mismatched)
			}
		})
	}
}

// ── tag cleanup ──────────────────────────────────────────────────────────────

func TestNoteTagsToRemove(t *testing.T) {
	committed := testNote(testPublic, 1)
	pending := testNote(testPublic, 2)

	rec := expectedNote(committed)
	rec.State = models.CommittedState{NoteMetadata: committed.Metadata}

	tags := []models.NoteTagRecord{
		{Tag: 1, Source: models.NoteTagSourceFor(committed.ID())},
		{Tag: 2, Source: models.NoteTagSourceFor(pending.ID())},
		{Tag: 1, Source: models.AccountTagSource(testPublic)},
		{Tag: 1, Source: models.UserTagSource()},
	}
	got := noteTagsToRemove(tags, models.NoteUpdates{UpdatedInputNotes: []models.InputNoteRecord{rec}})

	assert.Equal(t, tags[:1], got)
}
