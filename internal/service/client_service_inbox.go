// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/crypto"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

type inboxService struct {
	repo      store.InboxRepository
	vault     crypto.Vault
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewInboxService(repo store.InboxRepository, vault crypto.Vault, log *logger.Logger) InboxService {
	return &inboxService{
		repo:      repo,
		vault:     vault,
		validator: validators.NewSyncValidator(),
		now:       time.Now,
		logger:    log.WithComponent("inbox"),
	}
}

// Accept implements [InboxService]. Shares without an id are skipped.
func (s *inboxService) Accept(ctx context.Context, shares ...models.SharedFile) (int, error) {
	received := s.now()
	added := 0
	for _, share := range shares {
		if err := s.validator.Validate(ctx, share, validators.FieldShareID); err != nil {
			s.logger.Warn().Err(err).Str("file_name", share.FileName).Msg("skipping share without id")
			continue
		}
		inserted, err := s.repo.Save(ctx, models.InboxEntry{SharedFile: share, ReceivedAt: received})
		if err != nil {
			return added, fmt.Errorf("store share %s: %w", share.ShareID, err)
		}
		if inserted {
			added++
			s.logger.Info().
				Str("share_id", share.ShareID).
				Str("source_device_id", share.SourceDeviceID).
				Str("file_name", share.FileName).
				Msg("share received")
		}
	}
	return added, nil
}

// Open implements [InboxService].
func (s *inboxService) Open(ctx context.Context, shareID string) ([]byte, error) {
	entry, err := s.get(ctx, shareID)
	if err != nil {
		return nil, err
	}

	compressed, err := s.vault.Decrypt(entry.Content)
	if err != nil {
		return nil, err
	}

	plaintext, err := decompress(compressed)
	if err != nil {
		return nil, &app.SyncError{Kind: app.KindInvalidResponse, Detail: "share content is not valid gzip", Err: err}
	}
	if !utils.VerifyFileHash(plaintext, entry.FileHash) {
		return nil, app.InvalidResponse("file hash mismatch")
	}

	if entry.OpenedAt == nil {
		if err = s.repo.MarkOpened(ctx, shareID, s.now()); err != nil {
			s.logger.Warn().Err(err).Str("share_id", shareID).Msg("failed to mark share as opened")
		}
	}
	return plaintext, nil
}

// SaveToDir implements [InboxService]. An existing file is never
// overwritten; a numeric suffix is added instead.
func (s *inboxService) SaveToDir(ctx context.Context, shareID, dir string) (string, error) {
	entry, err := s.get(ctx, shareID)
	if err != nil {
		return "", err
	}

	plaintext, err := s.Open(ctx, shareID)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create inbox dir: %w", err)
	}

	name := sanitizeFileName(entry.FileName, shareID)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; ; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		path := filepath.Join(dir, candidate)
		if !insideDir(dir, path) {
			return "", app.Other(fmt.Sprintf("unsafe file name for share %s", shareID))
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", candidate, err)
		}
		if _, err = f.Write(plaintext); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write %s: %w", candidate, err)
		}
		if err = f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", candidate, err)
		}

		s.logger.Info().Str("share_id", shareID).Str("path", path).Msg("share saved")
		return path, nil
	}
}

// List implements [InboxService].
func (s *inboxService) List(ctx context.Context) ([]models.InboxEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var expired []string
	live := entries[:0]
	for _, e := range entries {
		if e.IsExpired(now) {
			expired = append(expired, e.ShareID)
			continue
		}
		live = append(live, e)
	}

	if len(expired) > 0 {
		if err = s.repo.Delete(ctx, expired...); err != nil {
			return nil, err
		}
		s.logger.Info().Int("count", len(expired)).Msg("expired shares pruned")
	}
	return live, nil
}

// Remove implements [InboxService].
func (s *inboxService) Remove(ctx context.Context, shareID string) error {
	return s.repo.Delete(ctx, shareID)
}

func (s *inboxService) get(ctx context.Context, shareID string) (models.InboxEntry, error) {
	entry, err := s.repo.Get(ctx, shareID)
	if errors.Is(err, store.ErrShareNotFound) {
		return models.InboxEntry{}, app.Other(fmt.Sprintf("unknown share %s", shareID))
	}
	return entry, err
}

// sanitizeFileName keeps only the base name and drops characters that are
// not portable across file systems. The share id stands in for an unusable
// name; it comes from the server too, so it goes through the same cleaning.
func sanitizeFileName(name, shareID string) string {
	if clean := cleanFileName(name); clean != "" {
		return clean
	}
	if clean := cleanFileName(shareID); clean != "" {
		return clean
	}
	return "share-" + utils.FileHash([]byte(shareID))[:12]
}

func cleanFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, strings.ContainsRune(`<>:"/\|?*`, r):
			return '_'
		}
		return r
	}, name)
	return strings.Trim(name, " .")
}

// insideDir reports whether path resolves to an entry directly under dir.
func insideDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..") && !strings.ContainsRune(rel, filepath.Separator)
}
