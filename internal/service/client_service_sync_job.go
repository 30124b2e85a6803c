package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/workers"
	"github.com/MKhiriev/go-device-sync/models"
)

// eventBufferSize is the capacity of the channel between the stream worker
// and the UI.
const eventBufferSize = 64

type syncManager struct {
	handshake HandshakeService
	stream    EventStream
	tokens    TokenProvider
	state     *SyncState
	logger    *logger.Logger

	// restartMu serializes restarts; mu guards the fields below and is never
	// held across the handshake, so Events stays non-blocking for the UI.
	restartMu sync.Mutex
	mu        sync.Mutex
	group     *workers.Group
	events    chan models.SyncEvent
}

// NewSyncManager creates a syncManager. Nothing runs until Start is called.
func NewSyncManager(handshake HandshakeService, stream EventStream, tokens TokenProvider, state *SyncState, log *logger.Logger) SyncManager {
	return &syncManager{
		handshake: handshake,
		stream:    stream,
		tokens:    tokens,
		state:     state,
		logger:    log.WithComponent("sync_manager"),
	}
}

// Start implements SyncManager.
func (m *syncManager) Start(ctx context.Context, settings models.SynchronizationSettings) error {
	return m.Restart(ctx, settings)
}

// Restart implements SyncManager. The new worker is spawned only when the
// handshake with the new settings succeeds, so the stream never runs against
// stale credentials.
func (m *syncManager) Restart(ctx context.Context, settings models.SynchronizationSettings) error {
	m.restartMu.Lock()
	defer m.restartMu.Unlock()

	m.Stop()

	events := make(chan models.SyncEvent, eventBufferSize)
	m.mu.Lock()
	m.events = events
	m.mu.Unlock()

	m.tokens.Reset()
	m.state.Reset()

	if !settings.IsActivated {
		m.state.SetStatus(models.StatusNotActivated)
		m.logger.Info().Msg("synchronization is not activated")
		return nil
	}

	m.state.SetStatus(models.StatusConnecting)
	if _, err := m.handshake.InitialSynchronization(ctx, settings); err != nil {
		m.state.SetStatus(statusForError(err))
		return err
	}
	m.state.SetStatus(models.StatusConnected)

	group := workers.NewGroup(context.WithoutCancel(ctx), m.logger)
	group.Go(workers.Func("event-stream", func(ctx context.Context) error {
		return m.stream.Run(ctx, settings, events)
	}))

	m.mu.Lock()
	m.group = group
	m.mu.Unlock()

	m.logger.Info().Str("server_url", settings.ServerURL).Msg("synchronization started")
	return nil
}

// Stop implements SyncManager. It blocks until the worker has exited and is
// a no-op when nothing runs.
func (m *syncManager) Stop() {
	m.mu.Lock()
	group := m.group
	m.group = nil
	m.mu.Unlock()

	if group != nil {
		_ = group.Stop()
		m.logger.Info().Msg("synchronization stopped")
	}
}

// Events implements SyncManager.
func (m *syncManager) Events() <-chan models.SyncEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}

// statusForError maps a handshake failure to the status shown to the user.
func statusForError(err error) models.ConnectionStatus {
	switch {
	case errors.Is(err, app.ErrAuthenticationFailed), errors.Is(err, app.ErrDeviceKeyMissing):
		return models.StatusAuthenticationFailed
	case errors.Is(err, app.ErrConnectionFailed), errors.Is(err, app.ErrHostNotFound), errors.Is(err, app.ErrTimeout):
		return models.StatusConnectionFailed
	default:
		return models.StatusOther
	}
}
