// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

type handshakeService struct {
	adapter   adapter.ServerAdapter
	tokens    TokenProvider
	state     *SyncState
	validator validators.Validator
	logger    *logger.Logger
}

func NewHandshakeService(serverAdapter adapter.ServerAdapter, tokens TokenProvider, state *SyncState, log *logger.Logger) HandshakeService {
	return &handshakeService{
		adapter:   serverAdapter,
		tokens:    tokens,
		state:     state,
		validator: validators.NewSyncValidator(),
		logger:    log.WithComponent("handshake"),
	}
}

// InitialSynchronization implements [HandshakeService].
func (h *handshakeService) InitialSynchronization(ctx context.Context, settings models.SynchronizationSettings) (models.BeginResponse, error) {
	if err := h.validator.Validate(ctx, settings, validators.FieldServerURL, validators.FieldPublicKey); err != nil {
		return models.BeginResponse{}, err
	}

	token, err := h.tokens.GetValidToken(ctx, settings)
	if err != nil {
		return models.BeginResponse{}, err
	}

	resp, err := h.adapter.Begin(ctx, settings.ServerURL, token, models.BeginRequest{PublicKey: settings.PublicKey})
	if err != nil {
		if errors.Is(err, app.ErrAuthenticationFailed) {
			h.tokens.Invalidate()
		}
		h.logger.Warn().Err(err).Msg("handshake failed")
		return models.BeginResponse{}, err
	}

	h.state.SetDeviceName(resp.DeviceName)
	h.state.AddPendingShares(resp.Shares...)

	h.logger.Info().
		Str("device_name", resp.DeviceName).
		Int("pending_shares", len(resp.Shares)).
		Msg("handshake completed")
	return resp, nil
}
