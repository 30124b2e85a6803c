// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/mock"
	"github.com/MKhiriev/go-device-sync/models"
)

func TestHandshake_PublishesDeviceNameAndShares(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	tokens := newFakeTokens("tok")
	state := NewSyncState(testLogger())

	shares := []models.SharedFile{{ShareID: "s1", FileName: "a.txt"}, {ShareID: "s2", FileName: "b.txt"}}
	adapter.EXPECT().
		Begin(gomock.Any(), testSettings.ServerURL, "tok", models.BeginRequest{PublicKey: testSettings.PublicKey}).
		Return(models.BeginResponse{DeviceName: "laptop", Shares: shares}, nil)

	h := NewHandshakeService(adapter, tokens, state, testLogger())
	resp, err := h.InitialSynchronization(context.Background(), testSettings)

	require.NoError(t, err)
	assert.Equal(t, "laptop", resp.DeviceName)
	assert.Equal(t, "laptop", state.DeviceName())
	assert.Equal(t, shares, state.DrainPendingShares())
	// статус не меняется, этим занимается менеджер
	assert.Equal(t, models.StatusConnecting, state.Status())
}

func TestHandshake_Validation(t *testing.T) {
	tests := []struct {
		name     string
		settings models.SynchronizationSettings
		wantErr  error
	}{
		{
			name:     "missing server url",
			settings: models.SynchronizationSettings{PublicKey: "age1x", IsActivated: true},
			wantErr:  app.ErrServerURLMissing,
		},
		{
			name:     "missing public key",
			settings: models.SynchronizationSettings{ServerURL: "https://s", IsActivated: true},
			wantErr:  app.ErrMissingEncryptionKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := newFakeTokens("tok")
			h := NewHandshakeService(mock.NewMockServerAdapter(ctrl), tokens, NewSyncState(testLogger()), testLogger())

			_, err := h.InitialSynchronization(context.Background(), tt.settings)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, tokens.calls.Load())
		})
	}
}

func TestHandshake_TokenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := newFakeTokens("", app.ErrDeviceKeyMissing)
	h := NewHandshakeService(mock.NewMockServerAdapter(ctrl), tokens, NewSyncState(testLogger()), testLogger())

	_, err := h.InitialSynchronization(context.Background(), testSettings)
	assert.ErrorIs(t, err, app.ErrDeviceKeyMissing)
}

func TestHandshake_RejectedTokenIsInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	tokens := newFakeTokens("tok")
	state := NewSyncState(testLogger())

	adapter.EXPECT().Begin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.BeginResponse{}, app.ErrAuthenticationFailed)

	h := NewHandshakeService(adapter, tokens, state, testLogger())
	_, err := h.InitialSynchronization(context.Background(), testSettings)

	assert.ErrorIs(t, err, app.ErrAuthenticationFailed)
	assert.Equal(t, int32(1), tokens.invalidations.Load())
	assert.Empty(t, state.DeviceName())
	assert.Empty(t, state.DrainPendingShares())
}

func TestHandshake_ServerErrorKeepsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	tokens := newFakeTokens("tok")

	adapter.EXPECT().Begin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.BeginResponse{}, app.ServerError(502))

	h := NewHandshakeService(adapter, tokens, NewSyncState(testLogger()), testLogger())
	_, err := h.InitialSynchronization(context.Background(), testSettings)

	assert.ErrorIs(t, err, app.ErrServerError)
	assert.Zero(t, tokens.invalidations.Load())
}
