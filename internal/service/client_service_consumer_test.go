package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-sync/models"
)

func feed(events ...models.SyncEvent) chan models.SyncEvent {
	ch := make(chan models.SyncEvent, len(events))
	for _, e := range events {
		ch <- e
	}
	return ch
}

func at(ms int) time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(ms) * time.Millisecond)
}

func withReceivedAt(e models.SyncEvent, ts time.Time) models.SyncEvent {
	e.ReceivedAt = ts
	return e
}

func TestEventConsumer_CoalescesBursts(t *testing.T) {
	state := NewSyncState(testLogger())
	c := NewEventConsumer(state, testLogger())

	processed := c.Drain(feed(
		withReceivedAt(models.NewErrorEvent("first"), at(0)),
		withReceivedAt(models.NewErrorEvent("dropped"), at(100)),
		withReceivedAt(models.NewErrorEvent("dropped too"), at(499)),
		withReceivedAt(models.NewErrorEvent("after the gap"), at(1200)),
	))

	require.Len(t, processed, 2)
	assert.Equal(t, "first", processed[0].Message)
	assert.Equal(t, "after the gap", processed[1].Message)

	notifications := state.DrainNotifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, models.NotifyError, notifications[0].Kind)
}

func TestEventConsumer_WindowIsExclusive(t *testing.T) {
	c := NewEventConsumer(NewSyncState(testLogger()), testLogger())

	processed := c.Drain(feed(
		withReceivedAt(models.NewHeartbeatEvent("a"), at(0)),
		withReceivedAt(models.NewHeartbeatEvent("b"), at(500)),
	))
	assert.Len(t, processed, 2)
}

func TestEventConsumer_CoalescesAcrossDrains(t *testing.T) {
	c := NewEventConsumer(NewSyncState(testLogger()), testLogger())

	assert.Len(t, c.Drain(feed(withReceivedAt(models.NewHeartbeatEvent("a"), at(0)))), 1)
	assert.Empty(t, c.Drain(feed(withReceivedAt(models.NewHeartbeatEvent("b"), at(200)))))
}

func TestEventConsumer_ShareBecomesPending(t *testing.T) {
	state := NewSyncState(testLogger())
	c := NewEventConsumer(state, testLogger())
	share := models.SharedFile{ShareID: "s1", FileName: "report.pdf"}

	c.Drain(feed(withReceivedAt(models.NewShareAvailableEvent(share), at(0))))

	assert.Equal(t, []models.SharedFile{share}, state.DrainPendingShares())
	notifications := state.DrainNotifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifyInfo, notifications[0].Kind)
	assert.Contains(t, notifications[0].Message, "report.pdf")
}

func TestEventConsumer_HeartbeatImpliesReconnect(t *testing.T) {
	tests := []struct {
		name   string
		before models.ConnectionStatus
		after  models.ConnectionStatus
	}{
		{name: "disconnected flips to connected", before: models.StatusDisconnected, after: models.StatusConnected},
		{name: "authentication failure is kept", before: models.StatusAuthenticationFailed, after: models.StatusAuthenticationFailed},
		{name: "connected stays connected", before: models.StatusConnected, after: models.StatusConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewSyncState(testLogger())
			state.SetStatus(tt.before)
			c := NewEventConsumer(state, testLogger())

			c.Drain(feed(withReceivedAt(models.NewHeartbeatEvent("ts"), at(0))))
			assert.Equal(t, tt.after, state.Status())
		})
	}
}

func TestEventConsumer_ZeroReceivedAtUsesClock(t *testing.T) {
	c := NewEventConsumer(NewSyncState(testLogger()), testLogger())
	now := at(0)
	c.now = func() time.Time { return now }

	assert.Len(t, c.Drain(feed(models.NewHeartbeatEvent("a"))), 1)
	now = at(100)
	assert.Empty(t, c.Drain(feed(models.NewHeartbeatEvent("b"))))
	now = at(2000)
	assert.Len(t, c.Drain(feed(models.NewHeartbeatEvent("c"))), 1)
}

func TestEventConsumer_NilAndClosedChannels(t *testing.T) {
	c := NewEventConsumer(NewSyncState(testLogger()), testLogger())
	assert.Nil(t, c.Drain(nil))

	ch := feed(withReceivedAt(models.NewHeartbeatEvent("a"), at(0)))
	close(ch)
	assert.Len(t, c.Drain(ch), 1)
	assert.Empty(t, c.Drain(ch))
}

func TestEventConsumer_DoesNotBlockOnEmptyChannel(t *testing.T) {
	c := NewEventConsumer(NewSyncState(testLogger()), testLogger())
	done := make(chan struct{})
	go func() {
		c.Drain(make(chan models.SyncEvent))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Drain blocked")
	}
}
