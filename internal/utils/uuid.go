package utils

import "github.com/google/uuid"

// RequestIDHeader correlates a client request with the node logs.
const RequestIDHeader = "X-Request-ID"

// UUIDGenerator produces time-ordered request ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
