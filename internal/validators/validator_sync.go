// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/models"
)

// Field names accepted by [SyncValidator]. Passing a subset to Validate
// restricts validation to those fields, checked in the given order.
const (
	// FieldServerURL targets SynchronizationSettings.ServerURL.
	FieldServerURL = "server_url"

	// FieldEmail targets SynchronizationSettings.Email. Only activation needs
	// it, so it is not part of the default settings check.
	FieldEmail = "email"

	// FieldPublicKey targets SynchronizationSettings.PublicKey.
	FieldPublicKey = "public_key"

	// FieldContent targets the payload of a share request or a received share.
	FieldContent = "content"

	// FieldFileName targets the file name of a share request.
	FieldFileName = "file_name"

	// FieldDeviceIDs targets the recipient list of a share request.
	FieldDeviceIDs = "device_ids"

	// FieldShareID targets the server id of a received share.
	FieldShareID = "share_id"
)

// SyncValidator checks the inputs of the synchronization services. Rules the
// user can break by hand (missing or malformed server url, empty or oversized
// content, blank file name, no recipients) yield the typed errors of package
// app so the UI can show them as is.
type SyncValidator struct{}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

// Validate implements [Validator].
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SynchronizationSettings:
		return v.validateSettings(ctx, value, fields...)
	case *models.SynchronizationSettings:
		return v.validateSettings(ctx, *value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(ctx, value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(ctx, *value, fields...)

	case models.SharedFile:
		return v.validateSharedFile(ctx, value, fields...)
	case *models.SharedFile:
		return v.validateSharedFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateSettings(_ context.Context, settings models.SynchronizationSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServerURL, FieldPublicKey}
	}

	for _, f := range fields {
		switch f {
		case FieldServerURL:
			if strings.TrimSpace(settings.ServerURL) == "" {
				return app.ErrServerURLMissing
			}
			if err := validateServerURL(settings.ServerURL); err != nil {
				return err
			}
		case FieldEmail:
			if strings.TrimSpace(settings.Email) == "" {
				return app.ErrEmailMissing
			}
		case FieldPublicKey:
			if strings.TrimSpace(settings.PublicKey) == "" {
				return app.ErrMissingEncryptionKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateShareRequest(_ context.Context, request models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldFileName, FieldDeviceIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if len(request.Content) == 0 {
				return app.ErrContentMissing
			}
			if len(request.Content) > models.MaxShareContentSize {
				return app.ErrContentTooLarge
			}
		case FieldFileName:
			if strings.TrimSpace(request.FileName) == "" {
				return app.ErrFileNameMissing
			}
		case FieldDeviceIDs:
			// unknown or blank ids fail per device during the fan-out
			if len(request.DeviceIDs) == 0 {
				return app.ErrDeviceIDsMissing
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateSharedFile(_ context.Context, share models.SharedFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldShareID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldShareID:
			if strings.TrimSpace(share.ShareID) == "" {
				return ErrInvalidShareID
			}
		case FieldContent:
			if share.Content == "" {
				return ErrEmptyShareContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateServerURL reports a malformed url as a ServerURLMissing kind: there
// is no usable server url either way.
func validateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return nil
	}
	return &app.SyncError{
		Kind:   app.KindServerURLMissing,
		Detail: "not an absolute http(s) url",
		Err:    ErrInvalidServerURL,
	}
}
