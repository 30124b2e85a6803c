// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionStatus is the process-wide state of the synchronization link.
type ConnectionStatus int

const (
	StatusDisconnected ConnectionStatus = iota
	StatusConnecting
	StatusConnected
	StatusAuthenticationFailed
	StatusConnectionFailed
	StatusOther
	StatusNotActivated
)

// String returns a short label suitable for the status bar.
func (s ConnectionStatus) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusDisconnected:
		return "disconnected"
	case StatusAuthenticationFailed:
		return "authentication failed"
	case StatusConnectionFailed:
		return "connection failed"
	case StatusNotActivated:
		return "not activated"
	default:
		return "error"
	}
}
