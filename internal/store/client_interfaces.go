// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-device-sync/models"
)

// SettingsRepository persists the synchronization settings of this device.
// There is exactly one settings row.
type SettingsRepository interface {
	// Load returns the stored settings, or zero settings when nothing has
	// been saved yet.
	Load(ctx context.Context) (models.SynchronizationSettings, error)
	// Save replaces the stored settings.
	Save(ctx context.Context, settings models.SynchronizationSettings) error
}

// InboxRepository stores shares received from other devices. Content stays
// encrypted at rest.
type InboxRepository interface {
	// Save inserts entry and reports whether it was new. Saving an entry
	// whose share id is already present is a no-op.
	Save(ctx context.Context, entry models.InboxEntry) (bool, error)
	// Get returns one entry or ErrShareNotFound.
	Get(ctx context.Context, shareID string) (models.InboxEntry, error)
	// List returns every entry, newest first.
	List(ctx context.Context) ([]models.InboxEntry, error)
	// MarkOpened records the time the share was first opened.
	MarkOpened(ctx context.Context, shareID string, at time.Time) error
	// Delete removes the given shares. Unknown ids are ignored.
	Delete(ctx context.Context, shareIDs ...string) error
}
