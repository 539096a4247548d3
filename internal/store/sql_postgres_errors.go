package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.classify] how to wrap a driver error.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota

	// Retryable failures are transient: lost connections, serialization
	// conflicts, a database that is starting up or busy.
	Retryable

	// Duplicate marks a primary key or unique constraint hit. Stores turn it
	// into their own "already exists" sentinel.
	Duplicate
)

// PostgresErrorClassifier classifies pgx errors by SQLSTATE class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return Duplicate
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}
