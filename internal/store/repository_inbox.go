// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

type inboxRepository struct {
	*DB
	logger *logger.Logger
}

func NewInboxRepository(db *DB, logger *logger.Logger) InboxRepository {
	return &inboxRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *inboxRepository) Save(ctx context.Context, entry models.InboxEntry) (bool, error) {
	query, args, err := buildInsertShareQuery(entry)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "inboxRepository.Save").
			Str("share_id", entry.ShareID).
			Msg("failed to insert share")
		return false, fmt.Errorf("%w (share_id=%s): %w", ErrExecutingStatement, entry.ShareID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}

func (r *inboxRepository) Get(ctx context.Context, shareID string) (models.InboxEntry, error) {
	query, args, err := buildSelectShareQuery(shareID)
	if err != nil {
		return models.InboxEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanInboxEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.InboxEntry{}, ErrShareNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "inboxRepository.Get").
			Str("share_id", shareID).
			Msg("failed to scan share")
		return models.InboxEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return entry, nil
}

func (r *inboxRepository) List(ctx context.Context) ([]models.InboxEntry, error) {
	query, args, err := buildSelectAllSharesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "inboxRepository.List").Msg("failed to query inbox")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.InboxEntry
	for rows.Next() {
		entry, err := scanInboxEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *inboxRepository) MarkOpened(ctx context.Context, shareID string, at time.Time) error {
	query, args, err := buildMarkOpenedQuery(shareID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "inboxRepository.MarkOpened").
			Str("share_id", shareID).
			Msg("failed to mark share as opened")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *inboxRepository) Delete(ctx context.Context, shareIDs ...string) error {
	if len(shareIDs) == 0 {
		return nil
	}

	query, args, err := buildDeleteSharesQuery(shareIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "inboxRepository.Delete").
			Strs("share_ids", shareIDs).
			Msg("failed to delete shares")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInboxEntry(row rowScanner) (models.InboxEntry, error) {
	var (
		entry      models.InboxEntry
		receivedAt int64
		openedAt   sql.NullInt64
	)

	err := row.Scan(
		&entry.ShareID,
		&entry.SourceDeviceID,
		&entry.DestinationDeviceID,
		&entry.FileName,
		&entry.FileSize,
		&entry.FileHash,
		&entry.Content,
		&entry.CreatedAt,
		&entry.ExpiresAt,
		&receivedAt,
		&openedAt,
	)
	if err != nil {
		return models.InboxEntry{}, err
	}

	entry.ReceivedAt = time.UnixMilli(receivedAt)
	if openedAt.Valid {
		opened := time.UnixMilli(openedAt.Int64)
		entry.OpenedAt = &opened
	}
	return entry, nil
}
