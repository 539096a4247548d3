package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func mapGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var target error
	switch st.Code() {
	case codes.InvalidArgument, codes.OutOfRange:
		target = ErrBadRequest
	case codes.Unauthenticated:
		target = ErrUnauthorized
	case codes.PermissionDenied:
		target = ErrForbidden
	case codes.NotFound:
		target = ErrNotFound
	case codes.AlreadyExists, codes.Aborted:
		target = ErrConflict
	case codes.Unavailable:
		target = ErrUnavailable
	case codes.Internal, codes.Unknown:
		target = ErrInternalServerError
	case codes.DeadlineExceeded, codes.Canceled:
		return err
	default:
		return fmt.Errorf("grpc %s: %s", st.Code(), st.Message())
	}
	return fmt.Errorf("%w: %s", target, st.Message())
}
