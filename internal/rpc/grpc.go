package rpc

import (
	"context"

	"github.com/MKhiriev/go-light-client/models"
	"google.golang.org/grpc"
)

// ServiceName is the gRPC service of a node.
const ServiceName = "lightnode.v1.Node"

// Full gRPC method names.
const (
	MethodSyncState               = "/" + ServiceName + "/SyncState"
	MethodSyncNotes               = "/" + ServiceName + "/SyncNotes"
	MethodGetNotesByID            = "/" + ServiceName + "/GetNotesByID"
	MethodGetAccountDetails       = "/" + ServiceName + "/GetAccountDetails"
	MethodCheckNullifiersByPrefix = "/" + ServiceName + "/CheckNullifiersByPrefix"
	MethodGetBlockHeaderByNumber  = "/" + ServiceName + "/GetBlockHeaderByNumber"
	MethodSubmitProvenTransaction = "/" + ServiceName + "/SubmitProvenTransaction"
)

// NodeServer is the server side of [ServiceDesc].
type NodeServer interface {
	SyncState(ctx context.Context, req *models.SyncStateRequest) (*models.SyncStateResponse, error)
	SyncNotes(ctx context.Context, req *SyncNotesRequest) (*models.NoteSyncResponse, error)
	GetNotesByID(ctx context.Context, req *GetNotesByIDRequest) (*GetNotesByIDResponse, error)
	GetAccountDetails(ctx context.Context, req *GetAccountDetailsRequest) (*models.AccountDetails, error)
	CheckNullifiersByPrefix(ctx context.Context, req *CheckNullifiersRequest) (*CheckNullifiersResponse, error)
	GetBlockHeaderByNumber(ctx context.Context, req *GetBlockHeaderRequest) (*models.BlockHeader, error)
	SubmitProvenTransaction(ctx context.Context, req *models.ProvenTransaction) (*SubmitTransactionResponse, error)
}

// RegisterNodeServer registers srv on s.
func RegisterNodeServer(s grpc.ServiceRegistrar, srv NodeServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes the node service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NodeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SyncState",
			Handler: unaryHandler(MethodSyncState, func(ctx context.Context, srv NodeServer, req *models.SyncStateRequest) (any, error) {
				return srv.SyncState(ctx, req)
			}),
		},
		{
			MethodName: "SyncNotes",
			Handler: unaryHandler(MethodSyncNotes, func(ctx context.Context, srv NodeServer, req *SyncNotesRequest) (any, error) {
				return srv.SyncNotes(ctx, req)
			}),
		},
		{
			MethodName: "GetNotesByID",
			Handler: unaryHandler(MethodGetNotesByID, func(ctx context.Context, srv NodeServer, req *GetNotesByIDRequest) (any, error) {
				return srv.GetNotesByID(ctx, req)
			}),
		},
		{
			MethodName: "GetAccountDetails",
			Handler: unaryHandler(MethodGetAccountDetails, func(ctx context.Context, srv NodeServer, req *GetAccountDetailsRequest) (any, error) {
				return srv.GetAccountDetails(ctx, req)
			}),
		},
		{
			MethodName: "CheckNullifiersByPrefix",
			Handler: unaryHandler(MethodCheckNullifiersByPrefix, func(ctx context.Context, srv NodeServer, req *CheckNullifiersRequest) (any, error) {
				return srv.CheckNullifiersByPrefix(ctx, req)
			}),
		},
		{
			MethodName: "GetBlockHeaderByNumber",
			Handler: unaryHandler(MethodGetBlockHeaderByNumber, func(ctx context.Context, srv NodeServer, req *GetBlockHeaderRequest) (any, error) {
				return srv.GetBlockHeaderByNumber(ctx, req)
			}),
		},
		{
			MethodName: "SubmitProvenTransaction",
			Handler: unaryHandler(MethodSubmitProvenTransaction, func(ctx context.Context, srv NodeServer, req *models.ProvenTransaction) (any, error) {
				return srv.SubmitProvenTransaction(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lightnode/v1/node.json",
}

// unaryHandler builds the grpc.MethodDesc handler for one method, decoding
// into a fresh *Req and running the server interceptor chain.
func unaryHandler[Req any](fullMethod string, call func(context.Context, NodeServer, *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, srv.(NodeServer), in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(ctx, srv.(NodeServer), req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
