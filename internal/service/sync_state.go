// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

// SyncState is the state shared between the background workers and the UI:
// connection status, device name, shares waiting to be stored, known devices
// and queued notifications. Every accessor takes the lock only for the
// in-memory read or write, so the UI can read it on each render tick.
type SyncState struct {
	mu sync.RWMutex

	status        models.ConnectionStatus
	deviceName    string
	pending       []models.SharedFile
	devices       []models.Device
	notifications []models.Notification

	now    func() time.Time
	logger *logger.Logger
}

func NewSyncState(log *logger.Logger) *SyncState {
	return &SyncState{
		status: models.StatusConnecting,
		now:    time.Now,
		logger: log.WithComponent("sync_state"),
	}
}

// Status returns the current connection status.
func (s *SyncState) Status() models.ConnectionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// SetStatus changes the connection status and logs transitions.
func (s *SyncState) SetStatus(status models.ConnectionStatus) {
	s.mu.Lock()
	previous := s.status
	s.status = status
	s.mu.Unlock()

	if previous != status {
		s.logger.Info().
			Str("from", previous.String()).
			Str("to", status.String()).
			Msg("connection status changed")
	}
}

// compareAndSetStatus sets next only when the status is still expected.
func (s *SyncState) compareAndSetStatus(expected, next models.ConnectionStatus) bool {
	s.mu.Lock()
	if s.status != expected {
		s.mu.Unlock()
		return false
	}
	s.status = next
	s.mu.Unlock()

	s.logger.Info().
		Str("from", expected.String()).
		Str("to", next.String()).
		Msg("connection status changed")
	return true
}

func (s *SyncState) DeviceName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deviceName
}

func (s *SyncState) SetDeviceName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deviceName = name
}

// AddPendingShares queues received shares until the UI stores them.
func (s *SyncState) AddPendingShares(shares ...models.SharedFile) {
	if len(shares) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, shares...)
}

// DrainPendingShares returns and clears the queued shares.
func (s *SyncState) DrainPendingShares() []models.SharedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.pending
	s.pending = nil
	return pending
}

// Devices returns a copy of the known devices.
func (s *SyncState) Devices() []models.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	devices := make([]models.Device, len(s.devices))
	copy(devices, s.devices)
	return devices
}

func (s *SyncState) SetDevices(devices []models.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devices = append([]models.Device(nil), devices...)
}

// PushNotification queues a toast for the UI.
func (s *SyncState) PushNotification(kind models.NotificationKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, models.Notification{Kind: kind, Message: message, At: s.now()})
}

// DrainNotifications returns and clears the queued notifications.
func (s *SyncState) DrainNotifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	notifications := s.notifications
	s.notifications = nil
	return notifications
}

// Reset clears everything learned from the server. The status is left to the
// caller.
func (s *SyncState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deviceName = ""
	s.pending = nil
	s.devices = nil
}
