package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/migrations"
)

// DB wraps the raw database handle together with the driver name and the
// squirrel statement builder matching that driver's placeholder format
// ($1 for postgres, ? for sqlite).
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Migrate brings the connected database's schema up to date using the
// embedded migrations for this connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isPostgresDSN reports whether dsn selects the PostgreSQL backend. Anything
// else is treated as the file path of an embedded SQLite database.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
