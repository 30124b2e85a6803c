package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/models"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeSession struct {
	settings models.SynchronizationSettings
}

func (f *fakeSession) Settings() models.SynchronizationSettings { return f.settings }
func (f *fakeSession) Restart(context.Context) error            { return nil }
func (f *fakeSession) ForgetDevice(context.Context) error       { return nil }

type fakeSync struct {
	events chan models.SyncEvent
}

func (f *fakeSync) Start(context.Context, models.SynchronizationSettings) error   { return nil }
func (f *fakeSync) Restart(context.Context, models.SynchronizationSettings) error { return nil }
func (f *fakeSync) Stop()                                                         {}
func (f *fakeSync) Events() <-chan models.SyncEvent                               { return f.events }

func newTestModel(t *testing.T) (model, *service.SyncState, *fakeSync) {
	t.Helper()
	log := logger.Nop()
	state := service.NewSyncState(log)
	sync := &fakeSync{events: make(chan models.SyncEvent, 8)}
	services := &service.ClientServices{
		State:         state,
		Sync:          sync,
		EventConsumer: service.NewEventConsumer(state, log),
	}
	m := newModel(context.Background(), services, &fakeSession{}, t.TempDir(), models.NewAppBuildInfo("1.2.3", "", ""), log)
	return m, state, sync
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func key2phone() []models.Device {
	k := "age1phone"
	return []models.Device{
		{ID: "d1", Name: "phone", DeviceType: "android", PublicKey: &k},
		{ID: "d2", Name: "tablet", DeviceType: "ios"},
	}
}

// ── tick ─────────────────────────────────────────────────────────────────────

func TestModel_TickDrainsSharedState(t *testing.T) {
	m, state, sync := newTestModel(t)
	state.SetStatus(models.StatusConnected)
	state.SetDeviceName("laptop")
	state.SetDevices(key2phone())
	sync.events <- models.NewShareAvailableEvent(models.SharedFile{ShareID: "s1", FileName: "a.txt"})

	m, cmd := update(t, m, tickMsg(time.Now()))

	assert.NotNil(t, cmd, "tick re-arms itself")
	assert.Equal(t, models.StatusConnected, m.status)
	assert.Equal(t, "laptop", m.deviceName)
	assert.Len(t, m.devices, 2)
	assert.Empty(t, state.DrainPendingShares(), "pending shares are handed to the inbox")

	toasts := m.toasts.list()
	require.Len(t, toasts, 1)
	assert.Contains(t, toasts[0].Message, "a.txt")
}

func TestModel_SelectionFollowsDeviceList(t *testing.T) {
	m, state, _ := newTestModel(t)
	state.SetDevices(key2phone())
	m, _ = update(t, m, tickMsg(time.Now()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, []string{"d1"}, m.selectedIDs())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, []string{"d1", "d2"}, m.selectedIDs())

	// toggling again deselects
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, []string{"d1"}, m.selectedIDs())

	// d1 disappears from the server list
	state.SetDevices(key2phone()[1:])
	m, _ = update(t, m, tickMsg(time.Now()))
	assert.Empty(t, m.selectedIDs())
}

// ── sharing ──────────────────────────────────────────────────────────────────

func TestModel_ShareRequiresSelection(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, k := range []string{"s", "p"} {
		var cmd tea.Cmd
		m, cmd = update(t, m, runes(k))
		assert.Nil(t, cmd)
		assert.False(t, m.prompting)
	}

	toasts := m.toasts.list()
	require.Len(t, toasts, 2)
	assert.Equal(t, models.NotifyWarning, toasts[0].Kind)
}

func TestModel_SharePromptFlow(t *testing.T) {
	m, state, _ := newTestModel(t)
	state.SetDevices(key2phone())
	m, _ = update(t, m, tickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m, _ = update(t, m, runes("s"))
	require.True(t, m.prompting)

	// keys go to the input while prompting
	m, _ = update(t, m, runes("q"))
	assert.True(t, m.prompting)
	assert.Equal(t, "q", m.input.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.prompting)
	assert.Zero(t, m.busy)
}

func TestModel_ShareResultToasts(t *testing.T) {
	tests := []struct {
		name   string
		msg    shareDoneMsg
		kind   models.NotificationKind
		substr string
	}{
		{
			name: "all delivered",
			msg: shareDoneMsg{result: models.ShareResult{
				Successes: []models.ShareSuccess{{DeviceID: "a", Expiration: "tomorrow"}},
			}},
			kind:   models.NotifySuccess,
			substr: "shared to 1 device(s) until tomorrow",
		},
		{
			name: "partial",
			msg: shareDoneMsg{result: models.ShareResult{
				Successes: []models.ShareSuccess{{DeviceID: "a"}},
				Failures:  []models.ShareFailure{{DeviceID: "b", Err: app.ServerError(500)}},
			}},
			kind:   models.NotifyWarning,
			substr: "shared to 1/2 device(s). 1 failed.",
		},
		{
			name: "nothing delivered",
			msg: shareDoneMsg{result: models.ShareResult{
				Failures: []models.ShareFailure{{DeviceID: "b", Err: app.ErrTimeout}},
			}},
			kind:   models.NotifyError,
			substr: "failed to share to all 1 device(s)",
		},
		{
			name:   "validation error",
			msg:    shareDoneMsg{err: app.ErrContentTooLarge},
			kind:   models.NotifyError,
			substr: app.ErrContentTooLarge.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			m.busy = 1

			m, _ = update(t, m, tt.msg)

			assert.Zero(t, m.busy)
			toasts := m.toasts.list()
			require.Len(t, toasts, 1)
			assert.Equal(t, tt.kind, toasts[0].Kind)
			assert.Contains(t, toasts[0].Message, tt.substr)
		})
	}
}

// ── overlays ─────────────────────────────────────────────────────────────────

func TestModel_ForgetNeedsConfirmation(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runes("F"))
	require.True(t, m.confirmForget)
	assert.Contains(t, m.View(), "Forget this device")

	m, cmd := update(t, m, runes("n"))
	assert.False(t, m.confirmForget)
	assert.Nil(t, cmd)

	m, _ = update(t, m, runes("F"))
	m, cmd = update(t, m, runes("y"))
	assert.False(t, m.confirmForget)
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.busy)
}

func TestModel_ForgetErrorShowsOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.busy = 1

	m, _ = update(t, m, forgetDoneMsg{err: app.ErrKeyStoreUnavailable})
	require.NotNil(t, m.errOverlay)
	assert.Contains(t, m.View(), app.ErrKeyStoreUnavailable.Error())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.errOverlay)
}

func TestModel_BuildInfo(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runes("v"))
	assert.Contains(t, m.View(), "1.2.3")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestModel_View(t *testing.T) {
	m, state, _ := newTestModel(t)
	state.SetStatus(models.StatusAuthenticationFailed)
	state.SetDevices(key2phone())
	m, _ = update(t, m, tickMsg(time.Now()))
	m, _ = update(t, m, inboxLoadedMsg{entries: []models.InboxEntry{{
		SharedFile: models.SharedFile{ShareID: "s1", FileName: "notes.txt", FileSize: 2048},
		ReceivedAt: time.Now(),
	}}})

	view := m.View()
	assert.Contains(t, view, "authentication failed")
	assert.Contains(t, view, "phone")
	assert.Contains(t, view, "no key")
	assert.Contains(t, view, "notes.txt")
	assert.Contains(t, view, "2.0 KiB")
}

func TestModel_QuitKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestUserMessage(t *testing.T) {
	assert.Empty(t, userMessage(nil))
	assert.Equal(t, app.ErrHostNotFound.Error(), userMessage(app.ErrHostNotFound))
	assert.Equal(t, app.MsgConnectionFailed, userMessage(errors.New("dial tcp 127.0.0.1:1: connect: connection refused")))
	assert.Equal(t, app.MsgOther, userMessage(errors.New("boom")))
	assert.Equal(t, app.MsgOther, userMessage(fmt.Errorf("failed to scan row: %w", errors.New("sqlite: disk I/O error"))))
	assert.Equal(t, app.MsgOther, userMessage(context.Canceled))
}

func TestToastQueue(t *testing.T) {
	var q toastQueue
	base := time.Now()
	for i := 0; i < maxToasts+2; i++ {
		q.push(models.Notification{Message: strings.Repeat("x", i+1), At: base.Add(time.Duration(i) * time.Second)})
	}
	require.Len(t, q.list(), maxToasts)
	assert.Equal(t, "xxx", q.list()[0].Message)

	q.expire(base.Add(toastLifetime + 3*time.Second))
	// toasts pushed at +2s and +3s are past their lifetime
	assert.Len(t, q.list(), maxToasts-2)
}

func TestClampAndFit(t *testing.T) {
	assert.Equal(t, 0, clamp(5, 0))
	assert.Equal(t, 0, clamp(-1, 3))
	assert.Equal(t, 2, clamp(7, 3))
	assert.Equal(t, "abc...", fitText("abcdefgh", 6))
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.0 MiB", formatSize(1<<20))
}
