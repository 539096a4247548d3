package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-light-client/internal/mocknode"
)

var errorCodeMap = map[error]codes.Code{
	mocknode.ErrInvalidRequest:  codes.InvalidArgument,
	mocknode.ErrBlockNotFound:   codes.NotFound,
	mocknode.ErrAccountNotFound: codes.NotFound,
	mocknode.ErrDuplicateTx:     codes.AlreadyExists,
	mocknode.ErrNoteTreeFull:    codes.Unavailable,
}

func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}
