package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-light-client/internal/mocknode"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrTokenExpired:               http.StatusUnauthorized,
	ErrInvalidToken:               http.StatusUnauthorized,
	ErrInvalidBody:                http.StatusBadRequest,
	ErrInvalidPathParam:           http.StatusBadRequest,

	mocknode.ErrInvalidRequest:  http.StatusBadRequest,
	mocknode.ErrBlockNotFound:   http.StatusNotFound,
	mocknode.ErrAccountNotFound: http.StatusNotFound,
	mocknode.ErrDuplicateTx:     http.StatusConflict,
	mocknode.ErrNoteTreeFull:    http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
