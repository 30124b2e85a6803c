// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-device-sync/internal/app"
)

// userMessage renders err for a toast. Classified errors already carry a
// user-facing message; anything else never shows its raw text.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var se *app.SyncError
	if errors.As(err, &se) {
		return se.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgConnectionFailed
	}

	return app.MsgOther
}
