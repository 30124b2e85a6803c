package service

import (
	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/crypto"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/store"
)

type ClientServices struct {
	State         *SyncState
	Tokens        *TokenCache
	Handshake     HandshakeService
	Devices       DeviceService
	Share         ShareService
	Inbox         InboxService
	Sync          SyncManager
	EventConsumer *EventConsumer
}

func NewClientServices(
	cfg config.ClientSync,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	vault crypto.Vault,
	log *logger.Logger,
) *ClientServices {
	state := NewSyncState(log)
	tokens := NewTokenCache(serverAdapter, vault, log)
	handshake := NewHandshakeService(serverAdapter, tokens, state, log)
	stream := NewEventStreamClient(serverAdapter, tokens, state, cfg.ReconnectDelay, cfg.LivenessTimeout, log)

	return &ClientServices{
		State:         state,
		Tokens:        tokens,
		Handshake:     handshake,
		Devices:       NewDeviceService(serverAdapter, tokens, state, log),
		Share:         NewShareService(serverAdapter, tokens, vault, log),
		Inbox:         NewInboxService(storages.InboxRepository, vault, log),
		Sync:          NewSyncManager(handshake, stream, tokens, state, log),
		EventConsumer: NewEventConsumer(state, log),
	}
}
