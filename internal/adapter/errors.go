package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("node rejected the request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found on node")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("node unavailable")
	ErrInternalServerError = errors.New("node internal error")

	ErrTokenExpired     = errors.New("api token expired")
	ErrInvalidToken     = errors.New("invalid api token")
	ErrInvalidAddress   = errors.New("invalid node address")
	ErrUnknownTransport = errors.New("unknown transport")
)
