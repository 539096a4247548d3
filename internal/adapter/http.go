package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/internal/utils"
	"github.com/MKhiriev/go-light-client/models"
	"github.com/go-resty/resty/v2"
)

type httpNodeClient struct {
	client *utils.HTTPClient
	token  *bearerToken

	logger *logger.Logger
}

// NewHTTPNodeClient constructs an HTTP/JSON implementation of
// [NodeRPCClient]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress cannot be parsed as a valid URL or
// cfg.APIToken is not a JWT.
func NewHTTPNodeClient(cfg config.ClientAdapter, logger *logger.Logger) (NodeRPCClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	token, err := newBearerToken(cfg.APIToken)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithRequestID(utils.NewUUIDGenerator())

	return &httpNodeClient{client: client, token: token, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SyncState implements [NodeRPCClient] over POST /api/v1/sync/state.
func (h *httpNodeClient) SyncState(ctx context.Context, req models.SyncStateRequest) (models.SyncStateResponse, error) {
	var resp models.SyncStateResponse
	if err := h.post(ctx, "httpNodeClient.SyncState", rpc.RouteSyncState, req, &resp); err != nil {
		return models.SyncStateResponse{}, err
	}
	return resp, nil
}

// SyncNotes implements [NodeRPCClient] over POST /api/v1/sync/notes.
func (h *httpNodeClient) SyncNotes(ctx context.Context, blockNum uint32, tags []models.NoteTag) (models.NoteSyncResponse, error) {
	var resp models.NoteSyncResponse
	req := rpc.SyncNotesRequest{BlockNum: blockNum, NoteTags: tags}
	if err := h.post(ctx, "httpNodeClient.SyncNotes", rpc.RouteSyncNotes, req, &resp); err != nil {
		return models.NoteSyncResponse{}, err
	}
	return resp, nil
}

func (h *httpNodeClient) GetNotesByID(ctx context.Context, ids []models.NoteID) ([]models.FetchedNote, error) {
	var resp rpc.GetNotesByIDResponse
	if err := h.post(ctx, "httpNodeClient.GetNotesByID", rpc.RouteNotesByID, rpc.GetNotesByIDRequest{NoteIDs: ids}, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (h *httpNodeClient) GetAccountUpdate(ctx context.Context, id models.AccountID) (models.AccountDetails, error) {
	var resp models.AccountDetails
	err := h.get(ctx, "httpNodeClient.GetAccountUpdate", rpc.RouteAccount, rpc.RouteAccountParam, id.String(), &resp)
	if err != nil {
		return models.AccountDetails{}, err
	}
	return resp, nil
}

func (h *httpNodeClient) CheckNullifiersByPrefix(ctx context.Context, prefixes []uint16, fromBlock uint32) ([]models.NullifierUpdate, error) {
	var resp rpc.CheckNullifiersResponse
	req := rpc.CheckNullifiersRequest{Prefixes: prefixes, BlockNum: fromBlock}
	if err := h.post(ctx, "httpNodeClient.CheckNullifiersByPrefix", rpc.RouteNullifiers, req, &resp); err != nil {
		return nil, err
	}
	return resp.Nullifiers, nil
}

func (h *httpNodeClient) GetBlockHeaderByNumber(ctx context.Context, num uint32) (models.BlockHeader, error) {
	var resp models.BlockHeader
	err := h.get(ctx, "httpNodeClient.GetBlockHeaderByNumber", rpc.RouteBlockHeader, rpc.RouteBlockParam, strconv.FormatUint(uint64(num), 10), &resp)
	if err != nil {
		return models.BlockHeader{}, err
	}
	return resp, nil
}

// SubmitProvenTransaction implements [NodeRPCClient] over
// POST /api/v1/transactions.
func (h *httpNodeClient) SubmitProvenTransaction(ctx context.Context, tx models.ProvenTransaction) (uint32, error) {
	var resp rpc.SubmitTransactionResponse
	if err := h.post(ctx, "httpNodeClient.SubmitProvenTransaction", rpc.RouteTransactions, tx, &resp); err != nil {
		return 0, err
	}
	return resp.BlockHeight, nil
}

func (h *httpNodeClient) Close() error {
	return nil
}

func (h *httpNodeClient) post(ctx context.Context, fn, route string, body, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader(rpc.ContentTypeHeaderKey, rpc.ContentTypeJSON).
		SetBody(body).
		SetResult(result).
		Post(route)
	return h.check(fn, resp, err)
}

func (h *httpNodeClient) get(ctx context.Context, fn, route, param, value string, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam(param, value).
		SetResult(result).
		Get(route)
	return h.check(fn, resp, err)
}

func (h *httpNodeClient) check(fn string, resp *resty.Response, err error) error {
	log := h.logger
	if err != nil {
		log.Err(err).Str("func", fn).Msg("node request failed")
		return fmt.Errorf("%s request: %w", fn, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", fn).Int("status", resp.StatusCode()).Msg("node returned an error")
		return err
	}
	return nil
}

func (h *httpNodeClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	auth, err := h.token.header()
	if err != nil {
		return nil, err
	}

	req := h.client.R().SetContext(ctx)
	if auth != "" {
		req.SetHeader(rpc.AuthorizationHeader, auth)
	}
	return req, nil
}
