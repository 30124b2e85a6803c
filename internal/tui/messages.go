package tui

import (
	"time"

	"github.com/MKhiriev/go-device-sync/models"
)

type tickMsg time.Time

type inboxLoadedMsg struct {
	entries []models.InboxEntry
	err     error
}

type sharesAcceptedMsg struct {
	added int
	err   error
}

type devicesLoadedMsg struct {
	err error
}

type shareDoneMsg struct {
	result models.ShareResult
	err    error
}

type copiedMsg struct {
	fileName string
	err      error
}

type savedMsg struct {
	path string
	err  error
}

type removedMsg struct {
	err error
}

type restartDoneMsg struct {
	err error
}

type forgetDoneMsg struct {
	err error
}
