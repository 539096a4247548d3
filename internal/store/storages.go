package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/config"
	"github.com/MKhiriev/go-light-client/internal/logger"
)

// NewStore opens the client store selected by cfg.DB.Driver:
//  1. "sqlite3" opens (and creates) the SQLite file at cfg.DB.DSN;
//  2. "pgx" connects to PostgreSQL at cfg.DB.DSN;
//  3. "memory" keeps state in process, snapshotting to cfg.DB.DSN when set.
//
// SQL backends are migrated before the store is returned.
func NewStore(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (Store, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new store...")

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		return NewMemoryStore(cfg.DB.DSN, logger)
	case config.DriverSQLite, "":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLStore(db, logger), nil
}
