// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

// newTestStorages открывает настоящую SQLite во временном каталоге
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DSN: filepath.Join(t.TempDir(), "nested", "sync.db")}

	storages, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func newMockStorages(t *testing.T) (*ClientStorages, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newClientStorages(&DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}, logger.Nop()), mock
}

func share(id string, receivedAt time.Time) models.InboxEntry {
	return models.InboxEntry{
		SharedFile: models.SharedFile{
			ShareID:        id,
			SourceDeviceID: "phone",
			FileName:       id + ".txt",
			FileSize:       3,
			FileHash:       "abc",
			Content:        "ciphertext-" + id,
			CreatedAt:      "2026-01-01T00:00:00Z",
			ExpiresAt:      "2026-01-02T00:00:00Z",
		},
		ReceivedAt: receivedAt,
	}
}

// ── queries ──────────────────────────────────────────────────────────────────

func Test_buildDeleteSharesQuery_UsesQuestionPlaceholders(t *testing.T) {
	query, args, err := buildDeleteSharesQuery([]string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM inbox WHERE share_id IN (?,?,?)", query)
	assert.Equal(t, []any{"a", "b", "c"}, args)
}

func Test_buildMarkOpenedQuery_OnlyFirstOpen(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000)
	query, args, err := buildMarkOpenedQuery("s1", at)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "update inbox set opened_at = ?")
	assert.Contains(t, q, "opened_at is null")
	assert.Equal(t, []any{at.UnixMilli(), "s1"}, args)
}

// ── settings ─────────────────────────────────────────────────────────────────

func TestSettingsRepository_LoadEmpty(t *testing.T) {
	s := newTestStorages(t)

	settings, err := s.SettingsRepository.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SynchronizationSettings{}, settings)
}

func TestSettingsRepository_SaveAndOverwrite(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	first := models.SynchronizationSettings{ServerURL: "https://sync.example.com", Email: "a@example.com", IsActivated: true}
	require.NoError(t, s.SettingsRepository.Save(ctx, first))

	got, err := s.SettingsRepository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := first
	second.PublicKey = "age1xyz"
	second.IsActivated = false
	require.NoError(t, s.SettingsRepository.Save(ctx, second))

	got, err = s.SettingsRepository.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSettingsRepository_SaveError(t *testing.T) {
	s, mock := newMockStorages(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_settings")).WillReturnError(errors.New("disk full"))

	err := s.SettingsRepository.Save(context.Background(), models.SynchronizationSettings{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_LoadError(t *testing.T) {
	s, mock := newMockStorages(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT server_url")).WillReturnError(errors.New("locked"))

	_, err := s.SettingsRepository.Load(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── inbox ────────────────────────────────────────────────────────────────────

func TestInboxRepository_SaveIsIdempotent(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	entry := share("s1", time.UnixMilli(1000))

	inserted, err := s.InboxRepository.Save(ctx, entry)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.InboxRepository.Save(ctx, entry)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := s.InboxRepository.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entry.SharedFile, got.SharedFile)
	assert.True(t, got.ReceivedAt.Equal(entry.ReceivedAt))
	assert.Nil(t, got.OpenedAt)
}

func TestInboxRepository_ListNewestFirst(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	for i, id := range []string{"old", "new", "mid"} {
		_, err := s.InboxRepository.Save(ctx, share(id, time.UnixMilli(int64([]int{1, 3, 2}[i])*1000)))
		require.NoError(t, err)
	}

	entries, err := s.InboxRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "new", entries[0].ShareID)
	assert.Equal(t, "mid", entries[1].ShareID)
	assert.Equal(t, "old", entries[2].ShareID)
}

func TestInboxRepository_MarkOpenedKeepsFirst(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	_, err := s.InboxRepository.Save(ctx, share("s1", time.UnixMilli(1000)))
	require.NoError(t, err)

	first := time.UnixMilli(5000)
	require.NoError(t, s.InboxRepository.MarkOpened(ctx, "s1", first))
	require.NoError(t, s.InboxRepository.MarkOpened(ctx, "s1", time.UnixMilli(9000)))

	got, err := s.InboxRepository.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got.OpenedAt)
	assert.True(t, got.OpenedAt.Equal(first))
}

func TestInboxRepository_Delete(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.InboxRepository.Save(ctx, share(id, time.UnixMilli(1000)))
		require.NoError(t, err)
	}

	require.NoError(t, s.InboxRepository.Delete(ctx, "a", "c", "missing"))
	require.NoError(t, s.InboxRepository.Delete(ctx))

	entries, err := s.InboxRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].ShareID)

	_, err = s.InboxRepository.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrShareNotFound)
}

func TestInboxRepository_QueryError(t *testing.T) {
	s, mock := newMockStorages(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT share_id")).WillReturnError(sql.ErrConnDone)

	_, err := s.InboxRepository.List(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestInboxRepository_SaveError(t *testing.T) {
	s, mock := newMockStorages(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inbox")).WillReturnError(errors.New("readonly"))

	inserted, err := s.InboxRepository.Save(context.Background(), share("s1", time.Now()))
	assert.False(t, inserted)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestInboxRepository_ScanError(t *testing.T) {
	s, mock := newMockStorages(t)
	rows := sqlmock.NewRows([]string{"share_id"}).AddRow("s1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT share_id")).WillReturnRows(rows)

	_, err := s.InboxRepository.List(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── retries ──────────────────────────────────────────────────────────────────

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
}

func TestInboxRepository_SaveRetriesWhenBusy(t *testing.T) {
	s, mock := newMockStorages(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inbox")).WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inbox")).WillReturnResult(sqlmock.NewResult(1, 1))

	inserted, err := s.InboxRepository.Save(context.Background(), share("s1", time.Now()))
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_SaveGivesUpAfterRetries(t *testing.T) {
	s, mock := newMockStorages(t)
	for range len(execRetryDelays) + 1 {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_settings")).WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})
	}

	err := s.SettingsRepository.Save(context.Background(), models.SynchronizationSettings{ServerURL: "https://s"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInboxRepository_SaveWithCancelledContext(t *testing.T) {
	s, mock := newMockStorages(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO inbox")).WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.InboxRepository.Save(ctx, share("s1", time.Now()))
	assert.ErrorIs(t, err, context.Canceled)
}
