// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Device is a remote device registered under the same account.
type Device struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DeviceType string `json:"device_type"`
	ExpiresAt  string `json:"expires_at,omitempty"`

	// PublicKey is nil when the device has not uploaded a key yet. Such a
	// device cannot receive shares.
	PublicKey *string `json:"public_key,omitempty"`
}

// HasPublicKey reports whether the device can currently be a share recipient.
func (d Device) HasPublicKey() bool {
	return d.PublicKey != nil && *d.PublicKey != ""
}

// DisplayName returns the device name, falling back to its id.
func (d Device) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// DeviceKeyPair is the asymmetric identity of this device.
type DeviceKeyPair struct {
	// PrivateKey is the age identity ("AGE-SECRET-KEY-1..."). It must only
	// ever be written to the secret store.
	PrivateKey string

	// PublicKey is the age recipient ("age1...").
	PublicKey string
}
