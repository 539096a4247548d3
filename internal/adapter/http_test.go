// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/internal/utils"
	"github.com/MKhiriev/go-light-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHTTPClient создаёт httpNodeClient, направленный на тестовый сервер
func newTestHTTPClient(t *testing.T, serverURL, token string) *httpNodeClient {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second, APIToken: token}

	c, err := NewHTTPNodeClient(cfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpNodeClient)
}

func testToken(t *testing.T, d time.Duration) string {
	t.Helper()
	tok, err := utils.GenerateJWTToken("mock-node", "wallet-1", d, "sign-key")
	require.NoError(t, err)
	return tok.SignedString
}

// ── SyncState ───────────────────────────────────────────────────────────────

func TestHTTPSyncState_Success(t *testing.T) {
	account := models.NewAccountID(1, models.AccountTypeRegularUpdatableCode, models.AccountStoragePublic)
	token := testToken(t, time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, rpc.RouteSyncState, r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get(rpc.AuthorizationHeader))
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		var req models.SyncStateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, uint32(3), req.BlockNum)
		assert.Equal(t, []models.AccountID{account}, req.AccountIDs)
		assert.Equal(t, []uint16{7}, req.NullifierPrefixes)

		_, _ = utils.WriteJSON(w, models.SyncStateResponse{
			ChainTip:    9,
			BlockHeader: models.BlockHeader{BlockNum: 5},
			Nullifiers:  []models.NullifierUpdate{{BlockNum: 5}},
		}, http.StatusOK)
	}))
	defer srv.Close()

	c := newTestHTTPClient(t, srv.URL, token)
	resp, err := c.SyncState(context.Background(), models.SyncStateRequest{
		BlockNum:          3,
		AccountIDs:        []models.AccountID{account},
		NullifierPrefixes: []uint16{7},
	})

	require.NoError(t, err)
	assert.Equal(t, uint32(9), resp.ChainTip)
	assert.Equal(t, uint32(5), resp.BlockHeader.BlockNum)
	assert.Len(t, resp.Nullifiers, 1)
}

func TestHTTPSyncState_WithoutTokenSendsNoAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(rpc.AuthorizationHeader))
		_, _ = utils.WriteJSON(w, models.SyncStateResponse{}, http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestHTTPClient(t, srv.URL, "").SyncState(context.Background(), models.SyncStateRequest{})
	require.NoError(t, err)
}

func TestHTTPSyncState_ExpiredTokenIsNotSent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newTestHTTPClient(t, srv.URL, testToken(t, -time.Minute))
	_, err := c.SyncState(context.Background(), models.SyncStateRequest{})

	require.ErrorIs(t, err, ErrTokenExpired)
	assert.False(t, called)
}

// ── Status mapping ──────────────────────────────────────────────────────────

func TestHTTP_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnavailable},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				utils.WriteError(w, nil, tt.status)
			}))
			defer srv.Close()

			_, err := newTestHTTPClient(t, srv.URL, "").GetBlockHeaderByNumber(context.Background(), 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTP_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestHTTPClient(t, srv.URL, "").GetNotesByID(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── Other calls ─────────────────────────────────────────────────────────────

func TestHTTPGetAccountUpdate_UsesPathParam(t *testing.T) {
	id := models.NewAccountID(4, models.AccountTypeRegularUpdatableCode, models.AccountStoragePrivate)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/accounts/"+id.String(), r.URL.Path)
		_, _ = utils.WriteJSON(w, models.AccountDetails{ID: id, BlockNum: 2}, http.StatusOK)
	}))
	defer srv.Close()

	details, err := newTestHTTPClient(t, srv.URL, "").GetAccountUpdate(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, details.ID)
	assert.False(t, details.IsPublic())
}

func TestHTTPGetBlockHeaderByNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/blocks/12", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.BlockHeader{BlockNum: 12}, http.StatusOK)
	}))
	defer srv.Close()

	h, err := newTestHTTPClient(t, srv.URL, "").GetBlockHeaderByNumber(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), h.BlockNum)
}

func TestHTTPCheckNullifiersByPrefix(t *testing.T) {
	n := crypto.HashElements(1, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpc.CheckNullifiersRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []uint16{1, 2}, req.Prefixes)
		assert.Zero(t, req.BlockNum)

		_, _ = utils.WriteJSON(w, rpc.CheckNullifiersResponse{
			Nullifiers: []models.NullifierUpdate{{Nullifier: n, BlockNum: 4}},
		}, http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestHTTPClient(t, srv.URL, "").CheckNullifiersByPrefix(context.Background(), []uint16{1, 2}, 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.Nullifier(n), got[0].Nullifier)
}

func TestHTTPSubmitProvenTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, rpc.RouteTransactions, r.URL.Path)
		_, _ = utils.WriteJSON(w, rpc.SubmitTransactionResponse{BlockHeight: 8}, http.StatusOK)
	}))
	defer srv.Close()

	height, err := newTestHTTPClient(t, srv.URL, "").SubmitProvenTransaction(context.Background(), models.ProvenTransaction{})
	require.NoError(t, err)
	assert.Equal(t, uint32(8), height)
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPNodeClient_InvalidConfig(t *testing.T) {
	_, err := NewHTTPNodeClient(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewHTTPNodeClient(config.ClientAdapter{HTTPAddress: "localhost:1", APIToken: "not-a-jwt"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://node.example/", want: "https://node.example"},
		{raw: "  ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewNodeRPCClient_Transport(t *testing.T) {
	c, err := NewNodeRPCClient(config.ClientAdapter{HTTPAddress: "localhost:1"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpNodeClient{}, c)

	c, err = NewNodeRPCClient(config.ClientAdapter{GRPCAddress: "localhost:1", Transport: config.TransportGRPC}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &grpcNodeClient{}, c)
	require.NoError(t, c.Close())

	_, err = NewNodeRPCClient(config.ClientAdapter{Transport: "carrier-pigeon"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownTransport)
}
