// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SynchronizationSettings is the synchronization section of the user
// settings. The bearer credential is never part of it: the device credential
// lives in the secret store and the short-lived token lives in the token
// cache only.
type SynchronizationSettings struct {
	// ServerURL is the base URL of the synchronization server.
	ServerURL string `json:"server_url,omitempty"`

	// Email identifies the account the device belongs to.
	Email string `json:"email,omitempty"`

	// PublicKey is the age recipient ("age1...") of this device. It is
	// uploaded to the server during the handshake.
	PublicKey string `json:"public_key,omitempty"`

	// IsActivated reports whether the user enabled synchronization.
	IsActivated bool `json:"is_activated"`
}

// HasServerURL reports whether a server URL is configured.
func (s SynchronizationSettings) HasServerURL() bool {
	return s.ServerURL != ""
}

// Equal reports whether both settings point at the same server with the same
// identity. It is used to decide if the event stream must be restarted.
func (s SynchronizationSettings) Equal(other SynchronizationSettings) bool {
	return s == other
}
