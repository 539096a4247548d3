package adapter

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-light-client/internal/utils"
)

// bearerToken guards the configured API token. An expired token is never
// sent; the call fails locally with [ErrTokenExpired] instead.
type bearerToken struct {
	raw       string
	expiresAt time.Time
	now       func() time.Time
}

func newBearerToken(raw string) (*bearerToken, error) {
	t := &bearerToken{raw: strings.TrimSpace(raw), now: time.Now}
	if t.raw == "" {
		return t, nil
	}

	exp, ok, err := utils.TokenExpiresAt(t.raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if ok {
		t.expiresAt = exp
	}
	return t, nil
}

// header returns the Authorization value, or "" without a token.
func (t *bearerToken) header() (string, error) {
	if t == nil || t.raw == "" {
		return "", nil
	}
	if !t.expiresAt.IsZero() && !t.now().Before(t.expiresAt) {
		return "", fmt.Errorf("%w at %s", ErrTokenExpired, t.expiresAt.Format(time.RFC3339))
	}
	return "Bearer " + t.raw, nil
}
