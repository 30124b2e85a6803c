// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/models"
)

// tickInterval is the render cadence on which the UI drains the shared state.
const tickInterval = 100 * time.Millisecond

type focusArea int

const (
	focusDevices focusArea = iota
	focusInbox
)

type model struct {
	ctx       context.Context
	services  *service.ClientServices
	session   Session
	inboxDir  string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	now       func() time.Time

	status     models.ConnectionStatus
	deviceName string
	devices    []models.Device
	selected   map[string]bool
	deviceIdx  int
	inbox      []models.InboxEntry
	inboxIdx   int
	focus      focusArea

	toasts  toastQueue
	busy    int
	spinner spinner.Model

	prompting     bool
	input         textinput.Model
	confirmForget bool
	errOverlay    *errorOverlayModel
	showBuildInfo bool
}

func newModel(
	ctx context.Context,
	services *service.ClientServices,
	session Session,
	inboxDir string,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Placeholder = "/path/to/file"
	in.Prompt = "file: "
	in.CharLimit = 4096

	return model{
		ctx:       ctx,
		services:  services,
		session:   session,
		inboxDir:  inboxDir,
		buildInfo: buildInfo,
		logger:    log,
		now:       time.Now,
		status:    services.State.Status(),
		selected:  make(map[string]bool),
		spinner:   s,
		input:     in,
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(), m.cmdLoadInbox()}
	if m.session.Settings().IsActivated {
		cmds = append(cmds, m.cmdRefreshDevices())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.onTick()
	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case inboxLoadedMsg:
		if msg.err != nil {
			m.toastError(msg.err)
			return m, nil
		}
		m.inbox = msg.entries
		m.inboxIdx = clamp(m.inboxIdx, len(m.inbox))
		return m, nil
	case sharesAcceptedMsg:
		if msg.err != nil {
			m.toastError(msg.err)
		}
		if msg.added > 0 {
			return m, m.cmdLoadInbox()
		}
		return m, nil
	case devicesLoadedMsg:
		if msg.err != nil {
			m.toastError(msg.err)
		}
		return m, nil
	case shareDoneMsg:
		m.done()
		m.onShareDone(msg)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.toastError(msg.err)
			return m, nil
		}
		m.toast(models.NotifySuccess, fmt.Sprintf("copied %s to the clipboard", msg.fileName))
		return m, m.cmdLoadInbox()
	case savedMsg:
		if msg.err != nil {
			m.toastError(msg.err)
			return m, nil
		}
		m.toast(models.NotifySuccess, fmt.Sprintf("saved to %s", msg.path))
		return m, m.cmdLoadInbox()
	case removedMsg:
		if msg.err != nil {
			m.toastError(msg.err)
			return m, nil
		}
		return m, m.cmdLoadInbox()
	case restartDoneMsg:
		m.done()
		if msg.err != nil {
			m.toastError(msg.err)
			return m, nil
		}
		m.toast(models.NotifySuccess, "synchronization restarted")
		if m.session.Settings().IsActivated {
			return m, m.cmdRefreshDevices()
		}
		return m, nil
	case forgetDoneMsg:
		m.done()
		if msg.err != nil {
			m.errOverlay = &errorOverlayModel{message: userMessage(msg.err)}
			return m, nil
		}
		m.selected = make(map[string]bool)
		m.toast(models.NotifyInfo, "device forgotten, synchronization deactivated")
		return m, nil
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	if m.prompting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// onTick pulls everything the background workers published since the last
// tick. None of the calls block.
func (m model) onTick() (tea.Model, tea.Cmd) {
	state := m.services.State

	m.services.EventConsumer.Drain(m.services.Sync.Events())

	m.status = state.Status()
	m.deviceName = state.DeviceName()
	m.setDevices(state.Devices())
	for _, n := range state.DrainNotifications() {
		m.toasts.push(n)
	}
	m.toasts.expire(m.now())

	cmds := []tea.Cmd{tick()}
	if pending := state.DrainPendingShares(); len(pending) > 0 {
		cmds = append(cmds, m.cmdAcceptShares(pending))
	}
	return m, tea.Batch(cmds...)
}

func (m model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.errOverlay != nil:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errOverlay = nil
		}
		return m, nil
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.confirmForget:
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmForget = false
			return m, m.begin(m.cmdForget())
		case key.Matches(msg, keys.no):
			m.confirmForget = false
		}
		return m, nil
	case m.prompting:
		return m.onPromptKey(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		if m.focus == focusDevices {
			m.focus = focusInbox
		} else {
			m.focus = focusDevices
		}
	case key.Matches(msg, keys.up):
		m.move(-1)
	case key.Matches(msg, keys.down):
		m.move(1)
	case key.Matches(msg, keys.toggle):
		if d, ok := m.currentDevice(); ok && m.focus == focusDevices {
			m.selected[d.ID] = !m.selected[d.ID]
			if !m.selected[d.ID] {
				delete(m.selected, d.ID)
			}
		}
	case key.Matches(msg, keys.shareFile):
		if !m.requireSelection() {
			return m, nil
		}
		m.prompting = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, keys.shareClip):
		if !m.requireSelection() {
			return m, nil
		}
		return m, m.begin(m.cmdShareClipboard(m.selectedIDs()))
	case key.Matches(msg, keys.copy):
		if e, ok := m.currentEntry(); ok {
			return m, m.cmdCopyShare(e.ShareID, e.FileName)
		}
	case key.Matches(msg, keys.write):
		if e, ok := m.currentEntry(); ok {
			return m, m.cmdSaveShare(e.ShareID)
		}
	case key.Matches(msg, keys.delete):
		if e, ok := m.currentEntry(); ok {
			return m, m.cmdRemoveShare(e.ShareID)
		}
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefreshDevices()
	case key.Matches(msg, keys.restart):
		return m, m.begin(m.cmdRestart())
	case key.Matches(msg, keys.forget):
		m.confirmForget = true
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m model) onPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		path := m.input.Value()
		m.prompting = false
		m.input.Blur()
		if path == "" {
			return m, nil
		}
		return m, m.begin(m.cmdShareFile(path, m.selectedIDs()))
	case tea.KeyEsc:
		m.prompting = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) onShareDone(msg shareDoneMsg) {
	if msg.err != nil {
		m.toastError(msg.err)
		return
	}

	kind := models.NotifyWarning
	switch {
	case msg.result.IsCompleteSuccess():
		kind = models.NotifySuccess
	case len(msg.result.Successes) == 0:
		kind = models.NotifyError
	}
	m.toast(kind, msg.result.SummaryMessage())

	for _, f := range msg.result.Failures {
		m.logger.Debug().Str("device_id", f.DeviceID).Str("reason", userMessage(f.Err)).Msg("share failure shown")
	}
}

// begin marks a long-running command and starts the spinner.
func (m *model) begin(cmd tea.Cmd) tea.Cmd {
	m.busy++
	if m.busy == 1 {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m *model) done() {
	if m.busy > 0 {
		m.busy--
	}
}

func (m *model) requireSelection() bool {
	if len(m.selected) > 0 {
		return true
	}
	m.toast(models.NotifyWarning, "select at least one device with space")
	return false
}

// selectedIDs returns the selected devices in list order.
func (m model) selectedIDs() []string {
	ids := make([]string, 0, len(m.selected))
	for _, d := range m.devices {
		if m.selected[d.ID] {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// setDevices replaces the device list and drops selections of devices that
// disappeared.
func (m *model) setDevices(devices []models.Device) {
	m.devices = devices
	known := make(map[string]struct{}, len(devices))
	for _, d := range devices {
		known[d.ID] = struct{}{}
	}
	for id := range m.selected {
		if _, ok := known[id]; !ok {
			delete(m.selected, id)
		}
	}
	m.deviceIdx = clamp(m.deviceIdx, len(m.devices))
}

func (m *model) move(delta int) {
	if m.focus == focusDevices {
		m.deviceIdx = clamp(m.deviceIdx+delta, len(m.devices))
		return
	}
	m.inboxIdx = clamp(m.inboxIdx+delta, len(m.inbox))
}

func (m model) currentDevice() (models.Device, bool) {
	if m.deviceIdx < 0 || m.deviceIdx >= len(m.devices) {
		return models.Device{}, false
	}
	return m.devices[m.deviceIdx], true
}

func (m model) currentEntry() (models.InboxEntry, bool) {
	if m.focus != focusInbox || m.inboxIdx < 0 || m.inboxIdx >= len(m.inbox) {
		return models.InboxEntry{}, false
	}
	return m.inbox[m.inboxIdx], true
}

func (m *model) toast(kind models.NotificationKind, message string) {
	m.toasts.push(models.Notification{Kind: kind, Message: message, At: m.now()})
}

func (m *model) toastError(err error) {
	m.toast(models.NotifyError, userMessage(err))
}

func clamp(idx, length int) int {
	if length == 0 || idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}
