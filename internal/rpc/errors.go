package rpc

import "errors"

var (
	ErrMarshal   = errors.New("rpc: marshal message")
	ErrUnmarshal = errors.New("rpc: unmarshal message")
)
