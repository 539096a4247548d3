package mocknode

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/internal/validators"
	"github.com/MKhiriev/go-light-client/models"
)

// Node serves a [Chain] through the node RPC contract shared by the HTTP
// and gRPC transports.
type Node struct {
	chain     *Chain
	build     models.AppBuildInfo
	validator validators.Validator
}

var _ rpc.NodeServer = (*Node)(nil)

func NewNode(chain *Chain, build models.AppBuildInfo) *Node {
	return &Node{
		chain:     chain,
		build:     build,
		validator: validators.NewNodeRequestValidator(),
	}
}

func (n *Node) validate(ctx context.Context, req any, fields ...string) error {
	if err := n.validator.Validate(ctx, req, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// Chain returns the served chain.
func (n *Node) Chain() *Chain {
	return n.chain
}

func (n *Node) Version(context.Context) rpc.VersionResponse {
	return rpc.VersionResponse{
		Version: n.build.BuildVersion(),
		Date:    n.build.BuildDate(),
		Commit:  n.build.BuildCommit(),
	}
}

func (n *Node) SyncState(ctx context.Context, req *models.SyncStateRequest) (*models.SyncStateResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty sync state request", ErrInvalidRequest)
	}
	if err := n.validate(ctx, req); err != nil {
		return nil, err
	}
	resp, err := n.chain.SyncState(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (n *Node) SyncNotes(ctx context.Context, req *rpc.SyncNotesRequest) (*models.NoteSyncResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty sync notes request", ErrInvalidRequest)
	}
	resp, err := n.chain.SyncNotes(ctx, req.BlockNum, req.NoteTags)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (n *Node) GetNotesByID(ctx context.Context, req *rpc.GetNotesByIDRequest) (*rpc.GetNotesByIDResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: no note ids", ErrInvalidRequest)
	}
	if err := n.validate(ctx, req); err != nil {
		return nil, err
	}
	notes, err := n.chain.GetNotesByID(ctx, req.NoteIDs)
	if err != nil {
		return nil, err
	}
	return &rpc.GetNotesByIDResponse{Notes: notes}, nil
}

func (n *Node) GetAccountDetails(ctx context.Context, req *rpc.GetAccountDetailsRequest) (*models.AccountDetails, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty account request", ErrInvalidRequest)
	}
	details, err := n.chain.GetAccountDetails(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (n *Node) CheckNullifiersByPrefix(ctx context.Context, req *rpc.CheckNullifiersRequest) (*rpc.CheckNullifiersResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: no nullifier prefixes", ErrInvalidRequest)
	}
	if err := n.validate(ctx, req); err != nil {
		return nil, err
	}
	nullifiers, err := n.chain.CheckNullifiersByPrefix(ctx, req.Prefixes, req.BlockNum)
	if err != nil {
		return nil, err
	}
	return &rpc.CheckNullifiersResponse{Nullifiers: nullifiers}, nil
}

func (n *Node) GetBlockHeaderByNumber(ctx context.Context, req *rpc.GetBlockHeaderRequest) (*models.BlockHeader, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty block header request", ErrInvalidRequest)
	}
	header, err := n.chain.GetBlockHeaderByNumber(ctx, req.BlockNum)
	if err != nil {
		return nil, err
	}
	return &header, nil
}

func (n *Node) SubmitProvenTransaction(ctx context.Context, tx *models.ProvenTransaction) (*rpc.SubmitTransactionResponse, error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: empty transaction", ErrInvalidRequest)
	}
	// ids and account hashes are not checked: the mock chain accepts
	// unproven transactions from tests
	err := n.validate(ctx, tx, validators.FieldAccountID, validators.FieldInputNullifiers, validators.FieldOutputNotes)
	if err != nil {
		return nil, err
	}
	height, err := n.chain.SubmitProvenTransaction(ctx, *tx)
	if err != nil {
		return nil, err
	}
	return &rpc.SubmitTransactionResponse{BlockHeight: height}, nil
}
