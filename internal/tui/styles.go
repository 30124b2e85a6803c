package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-device-sync/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	sectionStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var (
	statusOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	statusBadStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func statusStyle(status models.ConnectionStatus) lipgloss.Style {
	switch status {
	case models.StatusConnected:
		return statusOKStyle
	case models.StatusConnecting, models.StatusDisconnected, models.StatusNotActivated:
		return statusPendingStyle
	default:
		return statusBadStyle
	}
}

func toastStyle(kind models.NotificationKind) lipgloss.Style {
	switch kind {
	case models.NotifySuccess:
		return statusOKStyle
	case models.NotifyWarning:
		return statusPendingStyle
	case models.NotifyError:
		return errorStyle
	default:
		return lipgloss.NewStyle()
	}
}
