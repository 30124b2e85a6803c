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

func TestListDevices_UpdatesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	state := NewSyncState(testLogger())

	key := "age1phone"
	devices := []models.Device{
		{ID: "d1", Name: "phone", DeviceType: "android", PublicKey: &key},
		{ID: "d2", Name: "tablet", DeviceType: "ios"},
	}
	adapter.EXPECT().ListDevices(gomock.Any(), testSettings.ServerURL, "tok").Return(devices, nil)

	svc := NewDeviceService(adapter, newFakeTokens("tok"), state, testLogger())
	got, err := svc.ListDevices(context.Background(), testSettings)

	require.NoError(t, err)
	assert.Equal(t, devices, got)
	assert.Equal(t, devices, state.Devices())
}

func TestListDevices_Errors(t *testing.T) {
	t.Run("missing server url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewDeviceService(mock.NewMockServerAdapter(ctrl), newFakeTokens("tok"), NewSyncState(testLogger()), testLogger())

		_, err := svc.ListDevices(context.Background(), models.SynchronizationSettings{})
		assert.ErrorIs(t, err, app.ErrServerURLMissing)
	})

	t.Run("unauthorized invalidates token and keeps devices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		adapter := mock.NewMockServerAdapter(ctrl)
		tokens := newFakeTokens("tok")
		state := NewSyncState(testLogger())
		state.SetDevices([]models.Device{{ID: "old"}})

		adapter.EXPECT().ListDevices(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, app.ErrAuthenticationFailed)

		svc := NewDeviceService(adapter, tokens, state, testLogger())
		_, err := svc.ListDevices(context.Background(), testSettings)

		assert.ErrorIs(t, err, app.ErrAuthenticationFailed)
		assert.Equal(t, int32(1), tokens.invalidations.Load())
		assert.Equal(t, []models.Device{{ID: "old"}}, state.Devices())
	})
}
