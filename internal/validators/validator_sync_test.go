// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSettings() models.SynchronizationSettings {
	return models.SynchronizationSettings{
		ServerURL:   "https://sync.example.com",
		Email:       "user@example.com",
		PublicKey:   "age1xyz",
		IsActivated: true,
	}
}

func validShareRequest() models.ShareRequest {
	return models.ShareRequest{
		Content:   []byte("hello"),
		FileName:  "hello.txt",
		DeviceIDs: []string{"d1", "d2"},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()
	settings := validSettings()
	request := validShareRequest()
	share := models.SharedFile{ShareID: "s1", Content: "Y2lwaGVy"}

	assert.NoError(t, v.Validate(ctx, settings))
	assert.NoError(t, v.Validate(ctx, &settings))
	assert.NoError(t, v.Validate(ctx, request))
	assert.NoError(t, v.Validate(ctx, &request))
	assert.NoError(t, v.Validate(ctx, share))
	assert.NoError(t, v.Validate(ctx, &share))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, settings, "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, request, "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, share, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func TestValidate_Settings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.SynchronizationSettings)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SynchronizationSettings) {}},
		{name: "missing url", mutate: func(s *models.SynchronizationSettings) { s.ServerURL = " " }, wantErr: app.ErrServerURLMissing},
		{name: "relative url", mutate: func(s *models.SynchronizationSettings) { s.ServerURL = "sync.example.com" }, wantErr: ErrInvalidServerURL},
		{name: "ftp url", mutate: func(s *models.SynchronizationSettings) { s.ServerURL = "ftp://sync.example.com" }, wantErr: ErrInvalidServerURL},
		{name: "email not checked by default", mutate: func(s *models.SynchronizationSettings) { s.Email = "" }},
		{
			name:    "missing email",
			mutate:  func(s *models.SynchronizationSettings) { s.Email = " " },
			fields:  []string{FieldEmail},
			wantErr: app.ErrEmailMissing,
		},
		{name: "missing public key", mutate: func(s *models.SynchronizationSettings) { s.PublicKey = "" }, wantErr: app.ErrMissingEncryptionKey},
		{
			name:   "public key not checked when only url requested",
			mutate: func(s *models.SynchronizationSettings) { s.PublicKey = "" },
			fields: []string{FieldServerURL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := NewSyncValidator().Validate(context.Background(), s, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_MalformedServerURLIsTyped(t *testing.T) {
	s := validSettings()
	s.ServerURL = "sync.example.com"

	err := NewSyncValidator().Validate(context.Background(), s, FieldServerURL)

	var syncErr *app.SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, app.KindServerURLMissing, syncErr.Kind)
	assert.ErrorIs(t, err, ErrInvalidServerURL)
	assert.Equal(t, app.MsgServerURLMissing+": not an absolute http(s) url", err.Error())
}

// ---------------------------------------------------------------------------
// Share requests
// ---------------------------------------------------------------------------

func TestValidate_ShareRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ShareRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.ShareRequest) {}},
		{
			name:   "exactly the limit",
			mutate: func(r *models.ShareRequest) { r.Content = bytes.Repeat([]byte("a"), models.MaxShareContentSize) },
		},
		{
			name:    "one byte over the limit",
			mutate:  func(r *models.ShareRequest) { r.Content = make([]byte, models.MaxShareContentSize+1) },
			wantErr: app.ErrContentTooLarge,
		},
		{name: "empty content", mutate: func(r *models.ShareRequest) { r.Content = nil }, wantErr: app.ErrContentMissing},
		{name: "blank file name", mutate: func(r *models.ShareRequest) { r.FileName = "\t" }, wantErr: app.ErrFileNameMissing},
		{name: "no devices", mutate: func(r *models.ShareRequest) { r.DeviceIDs = nil }, wantErr: app.ErrDeviceIDsMissing},
		{name: "blank device id is left to the fan-out", mutate: func(r *models.ShareRequest) { r.DeviceIDs = []string{"d1", " "} }},
		{
			// content is checked before the file name
			name: "content wins over file name",
			mutate: func(r *models.ShareRequest) {
				r.Content = nil
				r.FileName = ""
			},
			wantErr: app.ErrContentMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validShareRequest()
			tt.mutate(&r)

			err := NewSyncValidator().Validate(context.Background(), r)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Received shares
// ---------------------------------------------------------------------------

func TestValidate_SharedFile(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.SharedFile{Content: "x"}), ErrInvalidShareID)
	assert.ErrorIs(t, v.Validate(ctx, models.SharedFile{ShareID: "s1"}), ErrEmptyShareContent)
	assert.NoError(t, v.Validate(ctx, models.SharedFile{ShareID: "s1"}, FieldShareID))
}
