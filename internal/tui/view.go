package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const helpLine = "tab switch  space select  s share file  p share clipboard  o copy  w save  d delete  r devices  ctrl+r restart  F forget  v about  q quit"

func (m model) View() string {
	switch {
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	case m.errOverlay != nil:
		return appStyle.Render(m.errOverlay.View())
	case m.confirmForget:
		return appStyle.Render(confirmModel{message: "Forget this device and stop synchronization?"}.View())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(m.viewDevices())
	b.WriteString("\n")
	b.WriteString(m.viewInbox())

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter share  esc cancel"))
		b.WriteString("\n")
	}

	if toasts := m.viewToasts(); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	return appStyle.Render(b.String())
}

func (m model) viewHeader() string {
	parts := []string{
		titleStyle.Render("go-device-sync"),
		statusStyle(m.status).Render("● " + m.status.String()),
	}
	if m.deviceName != "" {
		parts = append(parts, "device: "+m.deviceName)
	}
	if m.busy > 0 {
		parts = append(parts, m.spinner.View())
	}
	return strings.Join(parts, "   ")
}

func (m model) viewDevices() string {
	var b strings.Builder
	title := fmt.Sprintf("Devices (%d selected)", len(m.selected))
	b.WriteString(m.sectionTitle(title, focusDevices))
	b.WriteString("\n")

	if len(m.devices) == 0 {
		b.WriteString(mutedStyle.Render("  no devices"))
		b.WriteString("\n")
		return b.String()
	}

	for i, d := range m.devices {
		mark := "[ ]"
		if m.selected[d.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, fitText(d.DisplayName(), 32))
		if d.DeviceType != "" {
			line += mutedStyle.Render(" (" + d.DeviceType + ")")
		}
		if !d.HasPublicKey() {
			line += mutedStyle.Render("  no key")
		}
		b.WriteString(m.cursor(i == m.deviceIdx && m.focus == focusDevices))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewInbox() string {
	var b strings.Builder
	b.WriteString(m.sectionTitle(fmt.Sprintf("Inbox (%d)", len(m.inbox)), focusInbox))
	b.WriteString("\n")

	if len(m.inbox) == 0 {
		b.WriteString(mutedStyle.Render("  nothing received"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range m.inbox {
		state := "new"
		if e.OpenedAt != nil {
			state = "opened"
		}
		line := fmt.Sprintf("%-32s %10s  %-6s  %s",
			fitText(e.FileName, 32),
			formatSize(e.FileSize),
			state,
			mutedStyle.Render("received "+e.ReceivedAt.Local().Format(time.DateTime)),
		)
		b.WriteString(m.cursor(i == m.inboxIdx && m.focus == focusInbox))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewToasts() string {
	toasts := m.toasts.list()
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, n := range toasts {
		lines = append(lines, toastStyle(n.Kind).Render(n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m model) sectionTitle(title string, area focusArea) string {
	if m.focus == area {
		return sectionStyle.Render(title)
	}
	return mutedStyle.Render(title)
}

func (m model) cursor(active bool) string {
	if active {
		return cursorStyle.Render("> ")
	}
	return "  "
}

