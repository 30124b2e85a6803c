// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/migrations"
)

// execRetryDelays are the pauses between attempts of a statement that failed
// with a retryable error.
var execRetryDelays = []time.Duration{50 * time.Millisecond, 150 * time.Millisecond, 400 * time.Millisecond}

// DB wraps the SQLite connection shared by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execContext runs a DML statement and retries it while the classifier
// reports lock contention.
func (db *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.DB.ExecContext(ctx, query, args...)
	for attempt := 0; err != nil && attempt < len(execRetryDelays); attempt++ {
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return nil, err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt+1).Msg("database is busy, retrying statement")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(execRetryDelays[attempt]):
		}
		result, err = db.DB.ExecContext(ctx, query, args...)
	}
	return result, err
}
