// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-device-sync/models"
)

const (
	settingsTable = "sync_settings"
	inboxTable    = "inbox"

	// settingsRowID is the id of the only settings row.
	settingsRowID = 1
)

// psql is the statement builder for SQLite's "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var inboxColumns = []string{
	"share_id",
	"source_device_id",
	"destination_device_id",
	"file_name",
	"file_size",
	"file_hash",
	"content",
	"created_at",
	"expires_at",
	"received_at",
	"opened_at",
}

func buildLoadSettingsQuery() (string, []any, error) {
	return psql.
		Select("server_url", "email", "public_key", "is_activated").
		From(settingsTable).
		Where(sq.Eq{"id": settingsRowID}).
		ToSql()
}

func buildSaveSettingsQuery(settings models.SynchronizationSettings, now time.Time) (string, []any, error) {
	return psql.
		Insert(settingsTable).
		Columns("id", "server_url", "email", "public_key", "is_activated", "updated_at").
		Values(settingsRowID, settings.ServerURL, settings.Email, settings.PublicKey, settings.IsActivated, now.UnixMilli()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			server_url = excluded.server_url,
			email = excluded.email,
			public_key = excluded.public_key,
			is_activated = excluded.is_activated,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildInsertShareQuery(entry models.InboxEntry) (string, []any, error) {
	var openedAt any
	if entry.OpenedAt != nil {
		openedAt = entry.OpenedAt.UnixMilli()
	}

	return psql.
		Insert(inboxTable).
		Columns(inboxColumns...).
		Values(
			entry.ShareID,
			entry.SourceDeviceID,
			entry.DestinationDeviceID,
			entry.FileName,
			entry.FileSize,
			entry.FileHash,
			entry.Content,
			entry.CreatedAt,
			entry.ExpiresAt,
			entry.ReceivedAt.UnixMilli(),
			openedAt,
		).
		Suffix("ON CONFLICT(share_id) DO NOTHING").
		ToSql()
}

func buildSelectShareQuery(shareID string) (string, []any, error) {
	return psql.
		Select(inboxColumns...).
		From(inboxTable).
		Where(sq.Eq{"share_id": shareID}).
		ToSql()
}

func buildSelectAllSharesQuery() (string, []any, error) {
	return psql.
		Select(inboxColumns...).
		From(inboxTable).
		OrderBy("received_at DESC", "share_id").
		ToSql()
}

func buildMarkOpenedQuery(shareID string, at time.Time) (string, []any, error) {
	return psql.
		Update(inboxTable).
		Set("opened_at", at.UnixMilli()).
		Where(sq.And{sq.Eq{"share_id": shareID}, sq.Eq{"opened_at": nil}}).
		ToSql()
}

func buildDeleteSharesQuery(shareIDs []string) (string, []any, error) {
	return psql.
		Delete(inboxTable).
		Where(sq.Eq{"share_id": shareIDs}).
		ToSql()
}
