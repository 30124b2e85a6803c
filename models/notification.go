package models

import "time"

// NotificationKind selects how a notification is rendered.
type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifySuccess
	NotifyWarning
	NotifyError
)

// Notification is a toast queued for the UI.
type Notification struct {
	Kind    NotificationKind
	Message string
	At      time.Time
}
