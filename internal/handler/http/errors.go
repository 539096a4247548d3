// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrTokenExpired = errors.New("token is expired")
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidBody is returned when a request body is not valid JSON for
	// the route.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidPathParam is returned when a URL parameter cannot be parsed.
	ErrInvalidPathParam = errors.New("invalid path parameter")
)
