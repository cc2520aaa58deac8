// Package store holds the persistence layer: the SQL-backed configuration
// repository used by the store server and the local override slot used by
// the editing tools.
package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/siteforge-io/siteforge/internal/config"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/migrations"
)

// DB wraps the SQL connection together with the driver-specific bits the
// repository needs: the placeholder format for built queries and the goose
// dialect for migrations.
type DB struct {
	*sql.DB
	placeholder sq.PlaceholderFormat
	dialect     string
	logger      *logger.Logger
}

// Connect opens the backing database chosen by the DSN: a postgres:// or
// postgresql:// URI selects PostgreSQL, anything else is treated as a
// SQLite file path.
func Connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
