// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// MaxShareContentSize is the largest plaintext accepted by the share
// fan-out (1 MiB).
const MaxShareContentSize = 1 << 20

// ShareRequest describes one logical share of a buffer to several devices.
type ShareRequest struct {
	Content   []byte
	FileName  string
	DeviceIDs []string
}

// ShareUpload is the body of POST /api/share for a single recipient.
type ShareUpload struct {
	// Content is the age ciphertext of the gzip-compressed file, base64
	// encoded.
	Content  string `json:"content"`
	FileName string `json:"file_name"`
	DeviceID string `json:"device_id"`

	// FileHash is the blake3 hex digest of the uncompressed content.
	FileHash string `json:"file_hash,omitempty"`
}

// ShareResponse is the body returned by POST /api/share.
type ShareResponse struct {
	ExpirationDate string `json:"expiration_date"`
}

// SharedFile is a share addressed to this device, either queued on the
// server (returned by the handshake) or announced by a share_available event.
type SharedFile struct {
	ShareID             string `json:"share_id"`
	SourceDeviceID      string `json:"source_device_id"`
	DestinationDeviceID string `json:"destination_device_id,omitempty"`
	FileName            string `json:"file_name"`
	FileSize            int64  `json:"file_size"`
	FileHash            string `json:"file_hash,omitempty"`

	// Content is encrypted, compressed and base64 encoded.
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

// IsExpired reports whether the share expiry lies before now. Shares with an
// unparsable or empty expiry never expire on the client side.
func (s SharedFile) IsExpired(now time.Time) bool {
	if s.ExpiresAt == "" {
		return false
	}
	expiresAt, err := time.Parse(time.RFC3339, s.ExpiresAt)
	if err != nil {
		return false
	}
	return expiresAt.Before(now)
}

// ShareSuccess records a device that accepted a share.
type ShareSuccess struct {
	DeviceID   string
	Expiration string
}

// ShareFailure records a device that could not receive a share.
type ShareFailure struct {
	DeviceID string
	Err      error
}

// ShareResult aggregates the outcome of a share fan-out. Every requested
// device id appears in exactly one of the two lists.
type ShareResult struct {
	Successes []ShareSuccess
	Failures  []ShareFailure
}

// IsCompleteSuccess reports whether no recipient failed.
func (r ShareResult) IsCompleteSuccess() bool {
	return len(r.Failures) == 0
}

// Total returns the number of recipients the share was attempted for.
func (r ShareResult) Total() int {
	return len(r.Successes) + len(r.Failures)
}

// SummaryMessage renders the user-visible outcome of the share.
func (r ShareResult) SummaryMessage() string {
	total := r.Total()
	switch {
	case len(r.Failures) == 0 && len(r.Successes) > 0:
		return fmt.Sprintf("shared to %d device(s) until %s", total, r.Successes[0].Expiration)
	case len(r.Successes) == 0:
		return fmt.Sprintf("failed to share to all %d device(s)", total)
	default:
		return fmt.Sprintf("shared to %d/%d device(s). %d failed.", len(r.Successes), total, len(r.Failures))
	}
}
