package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

type deviceService struct {
	adapter adapter.ServerAdapter
	tokens  TokenProvider
	state   *SyncState
	logger  *logger.Logger
}

func NewDeviceService(serverAdapter adapter.ServerAdapter, tokens TokenProvider, state *SyncState, log *logger.Logger) DeviceService {
	return &deviceService{
		adapter: serverAdapter,
		tokens:  tokens,
		state:   state,
		logger:  log.WithComponent("devices"),
	}
}

// ListDevices implements [DeviceService]. The result also replaces the known
// devices in the sync state.
func (d *deviceService) ListDevices(ctx context.Context, settings models.SynchronizationSettings) ([]models.Device, error) {
	if !settings.HasServerURL() {
		return nil, app.ErrServerURLMissing
	}

	token, err := d.tokens.GetValidToken(ctx, settings)
	if err != nil {
		return nil, err
	}

	devices, err := d.adapter.ListDevices(ctx, settings.ServerURL, token)
	if err != nil {
		if errors.Is(err, app.ErrAuthenticationFailed) {
			d.tokens.Invalidate()
		}
		return nil, err
	}

	d.state.SetDevices(devices)
	d.logger.Debug().Int("count", len(devices)).Msg("devices listed")
	return devices, nil
}
