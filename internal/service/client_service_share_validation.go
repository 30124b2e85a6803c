// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

// shareValidationService rejects malformed share requests before the inner
// service touches the token cache or the network. Validation errors are
// returned as is so callers can match them with errors.Is.
type shareValidationService struct {
	inner     ShareService
	validator validators.Validator
}

func newShareValidationService(inner ShareService) ShareService {
	return &shareValidationService{
		inner:     inner,
		validator: validators.NewSyncValidator(),
	}
}

// ShareFile implements [ShareService].
func (v *shareValidationService) ShareFile(
	ctx context.Context,
	settings models.SynchronizationSettings,
	content []byte,
	fileName string,
	deviceIDs []string,
	knownDevices []models.Device,
) (models.ShareResult, error) {
	if err := v.validator.Validate(ctx, settings, validators.FieldServerURL); err != nil {
		return models.ShareResult{}, err
	}

	request := models.ShareRequest{Content: content, FileName: fileName, DeviceIDs: deviceIDs}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.ShareResult{}, err
	}

	return v.inner.ShareFile(ctx, settings, content, fileName, deviceIDs, knownDevices)
}
