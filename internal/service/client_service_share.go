// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/crypto"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

// shareConcurrency bounds how many recipient uploads run at once.
const shareConcurrency = 4

type shareService struct {
	adapter adapter.ServerAdapter
	tokens  TokenProvider
	vault   crypto.Vault
	logger  *logger.Logger
}

func NewShareService(serverAdapter adapter.ServerAdapter, tokens TokenProvider, vault crypto.Vault, log *logger.Logger) ShareService {
	return newShareValidationService(&shareService{
		adapter: serverAdapter,
		tokens:  tokens,
		vault:   vault,
		logger:  log.WithComponent("share"),
	})
}

// ShareFile implements [ShareService].
func (s *shareService) ShareFile(
	ctx context.Context,
	settings models.SynchronizationSettings,
	content []byte,
	fileName string,
	deviceIDs []string,
	knownDevices []models.Device,
) (models.ShareResult, error) {
	token, err := s.tokens.GetValidToken(ctx, settings)
	if err != nil {
		return models.ShareResult{}, err
	}

	compressed, err := compress(content)
	if err != nil {
		return models.ShareResult{}, app.Wrap(app.KindCompressionFailed, err)
	}
	s.logger.Debug().
		Int("original_bytes", len(content)).
		Int("compressed_bytes", len(compressed)).
		Float64("ratio", compressionRatio(len(content), len(compressed))).
		Msg("share payload compressed")

	fileHash := utils.FileHash(content)
	devices := make(map[string]models.Device, len(knownDevices))
	for _, d := range knownDevices {
		devices[d.ID] = d
	}

	// one slot per requested id keeps the result in request order
	outcomes := make([]shareOutcome, len(deviceIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(shareConcurrency)
	for i, deviceID := range deviceIDs {
		g.Go(func() error {
			expiration, err := s.shareToDevice(gctx, settings.ServerURL, token, compressed, fileName, fileHash, deviceID, devices)
			outcomes[i] = shareOutcome{deviceID: deviceID, expiration: expiration, err: err}
			return nil
		})
	}
	_ = g.Wait()

	result := aggregateOutcomes(outcomes)
	for _, f := range result.Failures {
		s.logger.Warn().Err(f.Err).Str("device_id", f.DeviceID).Msg("share to device failed")
	}
	s.logger.Info().
		Str("file_name", fileName).
		Int("succeeded", len(result.Successes)).
		Int("failed", len(result.Failures)).
		Msg("share finished")

	return result, nil
}

func (s *shareService) shareToDevice(
	ctx context.Context,
	serverURL, token string,
	compressed []byte,
	fileName, fileHash, deviceID string,
	devices map[string]models.Device,
) (string, error) {
	device, ok := devices[deviceID]
	if !ok {
		return "", app.Other(fmt.Sprintf("unknown device %s", deviceID))
	}
	if !device.HasPublicKey() {
		return "", app.MissingPublicKey(device.DisplayName())
	}

	ciphertext, err := s.vault.EncryptForRecipient(compressed, *device.PublicKey)
	if err != nil {
		return "", app.Classify(err)
	}

	resp, err := s.adapter.Share(ctx, serverURL, token, models.ShareUpload{
		Content:  ciphertext,
		FileName: fileName,
		DeviceID: deviceID,
		FileHash: fileHash,
	})
	if err != nil {
		return "", app.Classify(err)
	}
	if strings.TrimSpace(resp.ExpirationDate) == "" {
		return "", app.ErrMissingExpirationDate
	}
	return resp.ExpirationDate, nil
}

type shareOutcome struct {
	deviceID   string
	expiration string
	err        error
}

func aggregateOutcomes(outcomes []shareOutcome) models.ShareResult {
	var result models.ShareResult
	for _, o := range outcomes {
		if o.err != nil {
			result.Failures = append(result.Failures, models.ShareFailure{DeviceID: o.deviceID, Err: o.err})
			continue
		}
		result.Successes = append(result.Successes, models.ShareSuccess{DeviceID: o.deviceID, Expiration: o.expiration})
	}
	return result
}
