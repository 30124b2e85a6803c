// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the device synchronization core: the bearer
// token cache, the handshake, the self-healing event stream, the share
// fan-out and the receiving inbox.
//
// Network I/O never happens on the UI goroutine. Components share state
// through an injected [SyncState] and a single [TokenCache]; nothing here is
// a package-level global.
package service

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

// TokenProvider hands out bearer tokens. It is the single owner of the
// in-memory token; callers must not keep a token beyond one request.
type TokenProvider interface {
	// GetValidToken returns a token that stays valid for at least the expiry
	// buffer, refreshing it with the device credential when needed.
	GetValidToken(ctx context.Context, settings models.SynchronizationSettings) (string, error)
	// Invalidate drops the cached token, e.g. after the server rejected it.
	Invalidate()
	// Reset drops the cached token and any refresh in progress. Used when the
	// device credential changes.
	Reset()
}

// HandshakeService performs the initial authenticated exchange.
type HandshakeService interface {
	// InitialSynchronization uploads the public key and publishes the device
	// name and queued shares into the sync state. It does not change the
	// connection status.
	InitialSynchronization(ctx context.Context, settings models.SynchronizationSettings) (models.BeginResponse, error)
}

// EventStream runs the reconnecting server-push loop until ctx is cancelled.
type EventStream interface {
	Run(ctx context.Context, settings models.SynchronizationSettings, events chan<- models.SyncEvent) error
}

// ShareService sends one file to several devices.
type ShareService interface {
	// ShareFile validates the request, compresses content once, encrypts it
	// per recipient and uploads every copy. Once validation and token
	// acquisition succeed the call never fails as a whole: per-device
	// failures are reported in the result.
	ShareFile(
		ctx context.Context,
		settings models.SynchronizationSettings,
		content []byte,
		fileName string,
		deviceIDs []string,
		knownDevices []models.Device,
	) (models.ShareResult, error)
}

// DeviceService lists the devices of the account.
type DeviceService interface {
	ListDevices(ctx context.Context, settings models.SynchronizationSettings) ([]models.Device, error)
}

// InboxService manages shares received from other devices.
type InboxService interface {
	// Accept stores shares in the local inbox and returns how many were new.
	Accept(ctx context.Context, shares ...models.SharedFile) (int, error)
	// Open decrypts, decompresses and verifies a stored share.
	Open(ctx context.Context, shareID string) ([]byte, error)
	// SaveToDir opens a share and writes it into dir, returning the path.
	SaveToDir(ctx context.Context, shareID, dir string) (string, error)
	// List prunes expired shares and returns the rest, newest first.
	List(ctx context.Context) ([]models.InboxEntry, error)
	// Remove deletes a share from the inbox.
	Remove(ctx context.Context, shareID string) error
}

// SyncManager owns the lifetime of the background event stream.
type SyncManager interface {
	// Start performs the handshake and, when it succeeds, starts the event
	// stream. Calling Start while running behaves like Restart.
	Start(ctx context.Context, settings models.SynchronizationSettings) error
	// Restart stops the running stream, creates a fresh channel, resets the
	// token cache and starts again with settings.
	Restart(ctx context.Context, settings models.SynchronizationSettings) error
	// Stop cancels the stream and waits for it to exit.
	Stop()
	// Events returns the channel of the current run. The channel changes on
	// every restart, so callers fetch it on each drain.
	Events() <-chan models.SyncEvent
}
