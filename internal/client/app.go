// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/crypto"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/tui"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

// App owns the synchronization settings of the running process and the
// lifetime of the background stream. It also serves as the [tui.Session] of
// the terminal UI.
type App struct {
	cfg       config.ClientSync
	settings  store.SettingsRepository
	services  *service.ClientServices
	vault     crypto.Vault
	ui        UI
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.RWMutex
	current models.SynchronizationSettings
}

func NewApp(
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	services *service.ClientServices,
	vault crypto.Vault,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*App, error) {
	if cfg == nil || storages == nil || services == nil || vault == nil {
		return nil, errors.New("client app: missing dependency")
	}

	a := newApp(cfg.Sync, storages.SettingsRepository, services, vault, log)
	a.ui = tui.New(services, a, cfg.Storage.InboxDir, buildInfo, log)
	return a, nil
}

func newApp(
	cfg config.ClientSync,
	settings store.SettingsRepository,
	services *service.ClientServices,
	vault crypto.Vault,
	log *logger.Logger,
) *App {
	return &App{
		cfg:       cfg,
		settings:  settings,
		services:  services,
		vault:     vault,
		validator: validators.NewSyncValidator(),
		logger:    log.WithComponent("client_app"),
	}
}

// Run prepares the settings, starts synchronization and blocks in the UI.
// A failed handshake is not fatal: the UI shows the status and the user can
// restart once the cause is fixed.
func (a *App) Run(ctx context.Context) error {
	settings, err := a.prepareSettings(ctx)
	if err != nil {
		return err
	}

	if err = a.services.Sync.Start(ctx, settings); err != nil {
		a.logger.Warn().Err(err).Msg("synchronization did not start")
		a.services.State.PushNotification(models.NotifyError, app.Classify(err).Error())
	}
	defer a.services.Sync.Stop()

	return a.ui.Run(ctx)
}

// prepareSettings merges the configuration into the stored settings, moves a
// configured device key into the secret store and makes sure an activated
// device owns a key pair. Changed settings are persisted.
func (a *App) prepareSettings(ctx context.Context) (models.SynchronizationSettings, error) {
	stored, err := a.settings.Load(ctx)
	if err != nil {
		return models.SynchronizationSettings{}, fmt.Errorf("load settings: %w", err)
	}

	settings := stored
	if a.cfg.ServerURL != "" {
		settings.ServerURL = a.cfg.ServerURL
	}
	if a.cfg.Email != "" {
		settings.Email = a.cfg.Email
	}

	if a.cfg.DeviceKey != "" {
		// the credential belongs to an account, activation without one is refused
		if err = a.validator.Validate(ctx, settings, validators.FieldEmail); err != nil {
			return models.SynchronizationSettings{}, err
		}
		if err = a.vault.StoreDeviceCredential(a.cfg.DeviceKey); err != nil {
			return models.SynchronizationSettings{}, fmt.Errorf("store device credential: %w", err)
		}
		a.services.Tokens.Reset()
		settings.IsActivated = true
		a.logger.Info().Msg("device activated from configuration")
	}

	publicKey, generated, err := a.vault.EnsureKeys(settings)
	if err != nil {
		return models.SynchronizationSettings{}, fmt.Errorf("ensure device keys: %w", err)
	}
	settings.PublicKey = publicKey
	if generated {
		a.logger.Info().Msg("new device key pair generated")
	}

	if !settings.Equal(stored) {
		if err = a.settings.Save(ctx, settings); err != nil {
			return models.SynchronizationSettings{}, fmt.Errorf("save settings: %w", err)
		}
	}

	a.setCurrent(settings)
	return settings, nil
}

// Settings returns the settings synchronization currently runs with.
func (a *App) Settings() models.SynchronizationSettings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// Restart reloads the persisted settings and restarts synchronization.
func (a *App) Restart(ctx context.Context) error {
	settings, err := a.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	a.setCurrent(settings)
	return a.services.Sync.Restart(ctx, settings)
}

// ForgetDevice removes the device credential and deactivates
// synchronization. The key pair is kept so a later activation reuses it.
func (a *App) ForgetDevice(ctx context.Context) error {
	if err := a.vault.ForgetDevice(); err != nil {
		return fmt.Errorf("forget device: %w", err)
	}
	a.services.Tokens.Reset()

	settings := a.Settings()
	settings.IsActivated = false
	if err := a.settings.Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	a.setCurrent(settings)

	a.logger.Info().Msg("device forgotten")
	return a.services.Sync.Restart(ctx, settings)
}

func (a *App) setCurrent(settings models.SynchronizationSettings) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = settings
}
