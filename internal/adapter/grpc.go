package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/internal/utils"
	"github.com/MKhiriev/go-light-client/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcNodeClient struct {
	conn    *grpc.ClientConn
	token   *bearerToken
	timeout time.Duration
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewGRPCNodeClient constructs a gRPC implementation of [NodeRPCClient] that
// talks to cfg.GRPCAddress with the JSON codec from package rpc. The
// connection is established lazily on the first call.
func NewGRPCNodeClient(cfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (NodeRPCClient, error) {
	target := strings.TrimSpace(cfg.GRPCAddress)
	if target == "" {
		return nil, fmt.Errorf("%w: empty grpc address", ErrInvalidAddress)
	}

	token, err := newBearerToken(cfg.APIToken)
	if err != nil {
		return nil, err
	}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &grpcNodeClient{
		conn:    conn,
		token:   token,
		timeout: cfg.RequestTimeout,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func (g *grpcNodeClient) SyncState(ctx context.Context, req models.SyncStateRequest) (models.SyncStateResponse, error) {
	var resp models.SyncStateResponse
	if err := g.invoke(ctx, "grpcNodeClient.SyncState", rpc.MethodSyncState, &req, &resp); err != nil {
		return models.SyncStateResponse{}, err
	}
	return resp, nil
}

func (g *grpcNodeClient) SyncNotes(ctx context.Context, blockNum uint32, tags []models.NoteTag) (models.NoteSyncResponse, error) {
	var resp models.NoteSyncResponse
	req := rpc.SyncNotesRequest{BlockNum: blockNum, NoteTags: tags}
	if err := g.invoke(ctx, "grpcNodeClient.SyncNotes", rpc.MethodSyncNotes, &req, &resp); err != nil {
		return models.NoteSyncResponse{}, err
	}
	return resp, nil
}

func (g *grpcNodeClient) GetNotesByID(ctx context.Context, ids []models.NoteID) ([]models.FetchedNote, error) {
	var resp rpc.GetNotesByIDResponse
	req := rpc.GetNotesByIDRequest{NoteIDs: ids}
	if err := g.invoke(ctx, "grpcNodeClient.GetNotesByID", rpc.MethodGetNotesByID, &req, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (g *grpcNodeClient) GetAccountUpdate(ctx context.Context, id models.AccountID) (models.AccountDetails, error) {
	var resp models.AccountDetails
	req := rpc.GetAccountDetailsRequest{AccountID: id}
	if err := g.invoke(ctx, "grpcNodeClient.GetAccountUpdate", rpc.MethodGetAccountDetails, &req, &resp); err != nil {
		return models.AccountDetails{}, err
	}
	return resp, nil
}

func (g *grpcNodeClient) CheckNullifiersByPrefix(ctx context.Context, prefixes []uint16, fromBlock uint32) ([]models.NullifierUpdate, error) {
	var resp rpc.CheckNullifiersResponse
	req := rpc.CheckNullifiersRequest{Prefixes: prefixes, BlockNum: fromBlock}
	if err := g.invoke(ctx, "grpcNodeClient.CheckNullifiersByPrefix", rpc.MethodCheckNullifiersByPrefix, &req, &resp); err != nil {
		return nil, err
	}
	return resp.Nullifiers, nil
}

func (g *grpcNodeClient) GetBlockHeaderByNumber(ctx context.Context, num uint32) (models.BlockHeader, error) {
	var resp models.BlockHeader
	req := rpc.GetBlockHeaderRequest{BlockNum: num}
	if err := g.invoke(ctx, "grpcNodeClient.GetBlockHeaderByNumber", rpc.MethodGetBlockHeaderByNumber, &req, &resp); err != nil {
		return models.BlockHeader{}, err
	}
	return resp, nil
}

func (g *grpcNodeClient) SubmitProvenTransaction(ctx context.Context, tx models.ProvenTransaction) (uint32, error) {
	var resp rpc.SubmitTransactionResponse
	if err := g.invoke(ctx, "grpcNodeClient.SubmitProvenTransaction", rpc.MethodSubmitProvenTransaction, &tx, &resp); err != nil {
		return 0, err
	}
	return resp.BlockHeight, nil
}

func (g *grpcNodeClient) Close() error {
	return g.conn.Close()
}

func (g *grpcNodeClient) invoke(ctx context.Context, fn, method string, in, out any) error {
	auth, err := g.token.header()
	if err != nil {
		return err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	md := metadata.Pairs(strings.ToLower(utils.RequestIDHeader), g.ids.Generate())
	if auth != "" {
		md.Set(strings.ToLower(rpc.AuthorizationHeader), auth)
	}
	ctx = metadata.NewOutgoingContext(ctx, md)

	if err = g.conn.Invoke(ctx, method, in, out); err != nil {
		err = mapGRPCError(err)
		g.logger.Err(err).Str("func", fn).Str("method", method).Msg("node call failed")
		return err
	}
	return nil
}
