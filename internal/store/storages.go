package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rebaby/internal/config"
	"github.com/MKhiriev/rebaby/internal/logger"
)

// Storages bundles every repository together with the underlying database
// handle so the caller can close the connection on shutdown.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository

	db *DB
}

// NewStorages opens the database selected by the DSN (postgres:// URIs use
// the pgx driver, anything else an embedded SQLite file), applies the schema
// migrations, and wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
		db:             db,
	}, nil
}

// Connect opens the database backend selected by the DSN without running
// migrations. cmd/initdb uses it directly.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
