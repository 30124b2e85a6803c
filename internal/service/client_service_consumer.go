package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

// coalesceWindow is the gap below which consecutive events belong to one
// burst. Only the first event of a burst is acted upon.
const coalesceWindow = 500 * time.Millisecond

// EventConsumer applies stream events to the sync state on the UI's own
// schedule. It is not safe for concurrent use; the UI goroutine owns it.
type EventConsumer struct {
	state    *SyncState
	lastSeen time.Time
	now      func() time.Time
	logger   *logger.Logger
}

func NewEventConsumer(state *SyncState, log *logger.Logger) *EventConsumer {
	return &EventConsumer{
		state:  state,
		now:    time.Now,
		logger: log.WithComponent("event_consumer"),
	}
}

// Drain reads every event already queued on events without blocking and
// returns the ones that were acted upon.
func (c *EventConsumer) Drain(events <-chan models.SyncEvent) []models.SyncEvent {
	if events == nil {
		return nil
	}

	var processed []models.SyncEvent
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return processed
			}
			if c.coalesced(event) {
				c.logger.Debug().Str("kind", event.Kind.String()).Msg("event coalesced")
				continue
			}
			c.apply(event)
			processed = append(processed, event)
		default:
			return processed
		}
	}
}

// coalesced reports whether event arrived within the window of the previous
// one, and records its arrival either way.
func (c *EventConsumer) coalesced(event models.SyncEvent) bool {
	at := event.ReceivedAt
	if at.IsZero() {
		at = c.now()
	}

	previous := c.lastSeen
	c.lastSeen = at
	return !previous.IsZero() && at.Sub(previous) < coalesceWindow
}

func (c *EventConsumer) apply(event models.SyncEvent) {
	switch event.Kind {
	case models.EventHeartbeat:
		// a heartbeat proves the link is up again
		c.state.compareAndSetStatus(models.StatusDisconnected, models.StatusConnected)
	case models.EventShareAvailable:
		c.state.AddPendingShares(event.Share)
		c.state.PushNotification(models.NotifyInfo, fmt.Sprintf("new file available: %s", event.Share.FileName))
	case models.EventError:
		c.state.PushNotification(models.NotifyError, event.Message)
	}
}
