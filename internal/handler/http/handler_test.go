package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/mocknode"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/internal/utils"
	"github.com/MKhiriev/go-light-client/models"
)

const (
	testSignKey = "sign-key"
	testIssuer  = "mock-node"
)

type testEnv struct {
	demo   *mocknode.Demo
	router http.Handler
}

func newTestEnv(t *testing.T, authCfg config.Auth) testEnv {
	t.Helper()
	demo, err := mocknode.NewDemo(mocknode.MinDemoBlocks)
	require.NoError(t, err)

	node := mocknode.NewNode(demo.Chain, models.NewAppBuildInfo("v0.1.0", "2026-01-01", "abc"))
	return testEnv{demo: demo, router: NewHandler(node, authCfg, logger.Nop()).Init()}
}

func (e testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	return out
}

// ── node routes ──

func TestSyncStateRoute(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodPost, rpc.RouteSyncState, models.SyncStateRequest{
		NoteTags: []models.NoteTag{models.NoteTagForAccount(env.demo.AccountA)},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, rpc.ContentTypeJSON, rr.Header().Get(rpc.ContentTypeHeaderKey))

	resp := decodeBody[models.SyncStateResponse](t, rr)
	assert.Equal(t, uint32(1), resp.BlockHeader.BlockNum)
	assert.Equal(t, uint32(5), resp.ChainTip)
	require.Len(t, resp.NoteInclusions, 1)
	assert.Equal(t, env.demo.NoteA.ID(), resp.NoteInclusions[0].NoteID)
}

func TestSyncStateRoute_AboveTip(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodPost, rpc.RouteSyncState, models.SyncStateRequest{BlockNum: 100})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, decodeBody[utils.ErrorBody](t, rr).Error, mocknode.ErrBlockNotFound.Error())
}

func TestRoutes_InvalidBody(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	req := httptest.NewRequest(http.MethodPost, rpc.RouteSyncNotes, strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNotesByIDRoute(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodPost, rpc.RouteNotesByID, rpc.GetNotesByIDRequest{NoteIDs: []models.NoteID{env.demo.NoteB.ID()}})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[rpc.GetNotesByIDResponse](t, rr)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, uint32(4), resp.Notes[0].InclusionProof.BlockNum)

	rr = env.do(t, http.MethodPost, rpc.RouteNotesByID, rpc.GetNotesByIDRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAccountRoute(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodGet, "/api/v1/accounts/"+env.demo.Faucet.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	details := decodeBody[models.AccountDetails](t, rr)
	assert.Equal(t, env.demo.Faucet, details.ID)
	assert.NotNil(t, details.Account)

	rr = env.do(t, http.MethodGet, "/api/v1/accounts/"+env.demo.AccountA.String(), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/v1/accounts/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBlockHeaderRoute(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodGet, "/api/v1/blocks/"+strconv.Itoa(3), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, uint32(3), decodeBody[models.BlockHeader](t, rr).BlockNum)

	rr = env.do(t, http.MethodGet, "/api/v1/blocks/77", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(t, http.MethodGet, "/api/v1/blocks/-1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNullifiersRoute(t *testing.T) {
	env := newTestEnv(t, config.Auth{})
	nullifier := env.demo.NoteB.Nullifier()

	rr := env.do(t, http.MethodPost, rpc.RouteNullifiers, rpc.CheckNullifiersRequest{
		Prefixes: []uint16{models.NullifierPrefix(nullifier)},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t,
		[]models.NullifierUpdate{{Nullifier: nullifier, BlockNum: 5}},
		decodeBody[rpc.CheckNullifiersResponse](t, rr).Nullifiers)
}

func TestTransactionsRoute(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	tx := models.ProvenTransaction{AccountID: env.demo.AccountB, BlockRef: 5}
	rr := env.do(t, http.MethodPost, rpc.RouteTransactions, tx)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, uint32(6), decodeBody[rpc.SubmitTransactionResponse](t, rr).BlockHeight)

	rr = env.do(t, http.MethodPost, rpc.RouteTransactions, tx)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestVersionRoute(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodGet, rpc.RouteVersion, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, rpc.VersionResponse{Version: "v0.1.0", Date: "2026-01-01", Commit: "abc"}, decodeBody[rpc.VersionResponse](t, rr))
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodGet, rpc.RouteSyncState, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── auth ──

func TestAuth(t *testing.T) {
	env := newTestEnv(t, config.Auth{TokenSignKey: testSignKey, TokenIssuer: testIssuer, TokenDuration: time.Hour})

	valid, err := utils.GenerateJWTToken(testIssuer, "wallet-1", time.Hour, testSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, "wallet-1", -time.Minute, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(testIssuer, "wallet-1", time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  error
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized, wantError: ErrEmptyAuthorizationHeader},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantError: ErrInvalidAuthorizationHeader},
		{name: "expired", header: "Bearer " + expired.SignedString, wantStatus: http.StatusUnauthorized, wantError: ErrTokenExpired},
		{name: "foreign key", header: "Bearer " + foreign.SignedString, wantStatus: http.StatusUnauthorized, wantError: ErrInvalidToken},
		{name: "valid", header: "Bearer " + valid.SignedString, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.header != "" {
				headers = []string{rpc.AuthorizationHeader, tt.header}
			}
			rr := env.do(t, http.MethodGet, "/api/v1/blocks/0", nil, headers...)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != nil {
				assert.Equal(t, tt.wantError.Error(), decodeBody[utils.ErrorBody](t, rr).Error)
			}
		})
	}
}

func TestAuth_VersionIsPublic(t *testing.T) {
	env := newTestEnv(t, config.Auth{TokenSignKey: testSignKey, TokenIssuer: testIssuer})

	rr := env.do(t, http.MethodGet, rpc.RouteVersion, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ── middleware ──

func TestWithRequestID(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	rr := env.do(t, http.MethodGet, rpc.RouteVersion, nil, utils.RequestIDHeader, "req-42")
	assert.Equal(t, "req-42", rr.Header().Get(utils.RequestIDHeader))

	// без заголовка генерируется новый id
	rr = env.do(t, http.MethodGet, rpc.RouteVersion, nil)
	assert.NotEmpty(t, rr.Header().Get(utils.RequestIDHeader))
}

func TestWithRequestID_StoresIDInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = utils.GetRequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.RequestIDHeader, "abc")
	h.withRequestID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc", got)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("done"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	req.Header.Set(utils.RequestIDHeader, "trace-1")
	h.withRequestID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"trace-1"`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":4`)
}

func TestWithGZip(t *testing.T) {
	env := newTestEnv(t, config.Auth{})

	var body bytes.Buffer
	zw := gzip.NewWriter(&body)
	require.NoError(t, json.NewEncoder(zw).Encode(models.SyncStateRequest{BlockNum: 4}))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, rpc.RouteSyncState, &body)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	var resp models.SyncStateResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&resp))
	assert.Equal(t, uint32(5), resp.BlockHeader.BlockNum)
}

func TestWithGZip_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(mocknode.ErrAccountNotFound))
	assert.Equal(t, http.StatusConflict, statusFromError(mocknode.ErrDuplicateTx))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
