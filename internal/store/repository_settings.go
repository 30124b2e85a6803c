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

type settingsRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *settingsRepository) Load(ctx context.Context) (models.SynchronizationSettings, error) {
	query, args, err := buildLoadSettingsQuery()
	if err != nil {
		return models.SynchronizationSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var settings models.SynchronizationSettings
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&settings.ServerURL,
		&settings.Email,
		&settings.PublicKey,
		&settings.IsActivated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SynchronizationSettings{}, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.Load").Msg("failed to load synchronization settings")
		return models.SynchronizationSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

func (s *settingsRepository) Save(ctx context.Context, settings models.SynchronizationSettings) error {
	query, args, err := buildSaveSettingsQuery(settings, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.execContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "settingsRepository.Save").Msg("failed to save synchronization settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.logger.Debug().
		Str("server_url", settings.ServerURL).
		Bool("is_activated", settings.IsActivated).
		Msg("synchronization settings saved")
	return nil
}
