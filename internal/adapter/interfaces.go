// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the
// synchronization server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a resty implementation
// ([NewHTTPServerAdapter]) and an incremental decoder for the server-push
// event stream ([EventDecoder]).
//
// Every failure leaving this package is an [app.SyncError]: HTTP statuses are
// mapped by mapHTTPError and network failures by classifyTransportError, so
// callers only deal with the closed error taxonomy.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-device-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the synchronization server.
// The server URL is passed on every call because it belongs to the
// synchronization settings, which may change while the process runs.
// The bearer token is likewise passed per call; the adapter never keeps one.
type ServerAdapter interface {
	// IssueToken exchanges the long-lived device credential for a short-lived
	// bearer token (POST /api/token).
	IssueToken(ctx context.Context, serverURL, deviceCredential string) (models.BearerToken, error)

	// Begin uploads this device's public key and returns the device name and
	// any shares queued for it (POST /api/begin).
	Begin(ctx context.Context, serverURL, token string, req models.BeginRequest) (models.BeginResponse, error)

	// ListDevices returns every device registered to the account
	// (GET /api/devices).
	ListDevices(ctx context.Context, serverURL, token string) ([]models.Device, error)

	// Share uploads one encrypted payload addressed to one device
	// (POST /api/share).
	Share(ctx context.Context, serverURL, token string, upload models.ShareUpload) (models.ShareResponse, error)

	// OpenEventStream opens the server-push stream (GET /api/sse). The
	// caller owns the returned body and must close it.
	OpenEventStream(ctx context.Context, serverURL, token string) (io.ReadCloser, error)
}
