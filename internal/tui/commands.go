package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/models"
)

// clipboardFileName names shares created from the clipboard.
const clipboardFileName = "clipboard.txt"

func (m model) cmdLoadInbox() tea.Cmd {
	inbox := m.services.Inbox
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := inbox.List(ctx)
		return inboxLoadedMsg{entries: entries, err: err}
	}
}

func (m model) cmdAcceptShares(shares []models.SharedFile) tea.Cmd {
	inbox := m.services.Inbox
	ctx := m.ctx
	return func() tea.Msg {
		added, err := inbox.Accept(ctx, shares...)
		return sharesAcceptedMsg{added: added, err: err}
	}
}

func (m model) cmdRefreshDevices() tea.Cmd {
	devices := m.services.Devices
	settings := m.session.Settings()
	ctx := m.ctx
	return func() tea.Msg {
		_, err := devices.ListDevices(ctx, settings)
		return devicesLoadedMsg{err: err}
	}
}

func (m model) cmdShareFile(path string, deviceIDs []string) tea.Cmd {
	return func() tea.Msg {
		path = expandHome(strings.TrimSpace(path))
		info, err := os.Stat(path)
		if err != nil {
			return shareDoneMsg{err: fmt.Errorf("read %s: %w", path, err)}
		}
		// too large files are rejected before they are read
		if info.Size() > models.MaxShareContentSize {
			return shareDoneMsg{err: app.ErrContentTooLarge}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return shareDoneMsg{err: fmt.Errorf("read %s: %w", path, err)}
		}
		return m.share(content, info.Name(), deviceIDs)
	}
}

func (m model) cmdShareClipboard(deviceIDs []string) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			return shareDoneMsg{err: fmt.Errorf("read clipboard: %w", err)}
		}
		return m.share([]byte(text), clipboardFileName, deviceIDs)
	}
}

// share runs the fan-out; it is only called from inside a command.
func (m model) share(content []byte, fileName string, deviceIDs []string) tea.Msg {
	result, err := m.services.Share.ShareFile(
		m.ctx,
		m.session.Settings(),
		content,
		fileName,
		deviceIDs,
		m.services.State.Devices(),
	)
	return shareDoneMsg{result: result, err: err}
}

func (m model) cmdCopyShare(shareID, fileName string) tea.Cmd {
	inbox := m.services.Inbox
	ctx := m.ctx
	return func() tea.Msg {
		content, err := inbox.Open(ctx, shareID)
		if err != nil {
			return copiedMsg{err: err}
		}
		if err = clipboard.WriteAll(string(content)); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{fileName: fileName}
	}
}

func (m model) cmdSaveShare(shareID string) tea.Cmd {
	inbox := m.services.Inbox
	ctx := m.ctx
	dir := m.inboxDir
	return func() tea.Msg {
		path, err := inbox.SaveToDir(ctx, shareID, dir)
		return savedMsg{path: path, err: err}
	}
}

func (m model) cmdRemoveShare(shareID string) tea.Cmd {
	inbox := m.services.Inbox
	ctx := m.ctx
	return func() tea.Msg {
		return removedMsg{err: inbox.Remove(ctx, shareID)}
	}
}

func (m model) cmdRestart() tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		return restartDoneMsg{err: session.Restart(ctx)}
	}
}

func (m model) cmdForget() tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		return forgetDoneMsg{err: session.ForgetDevice(ctx)}
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
