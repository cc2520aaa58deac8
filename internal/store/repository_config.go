// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/siteforge-io/siteforge/internal/logger"
)

// configRepository is the SQL-backed implementation of [ConfigRepository].
//
// Methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type configRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewConfigRepository constructs a [ConfigRepository] backed by the
// provided database connection and logger.
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	logger.Debug().Msg("creating config repository")
	return &configRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the stored document for key, or [ErrNotFound] when nothing
// has been stored under it yet.
func (r *configRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectConfigQuery(r.db.placeholder, key)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.Get").Msg("error building select query")
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Err(err).Str("func", "*configRepository.Get").Msg("error: scanning error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return []byte(value), nil
}

// Put stores value under key, replacing any previous document.
func (r *configRepository) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertConfigQuery(r.db.placeholder, key, value)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.Put").Msg("error building upsert query")
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*configRepository.Put").
			Bool("retryable", retryablePostgresError(err)).
			Msg("error: upsert failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
