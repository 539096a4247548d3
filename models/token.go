package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a node API token.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for claim access. The subject claim carries the client identifier the node
// issued the token to.
type Token struct {
	// Token is the underlying JWT. Only the compact string form is meaningful
	// outside the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// ClientID is a cached copy of the subject claim.
	ClientID string `json:"-"`
}

// GetClientID returns the subject claim.
func (t *Token) GetClientID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting client id from token: empty subject")
	}
	return sub, nil
}

// String returns the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
