// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the key vault of the synchronization client.
//
// The vault owns the device identity (an age X25519 key pair) and the
// long-lived device credential. Both secrets live in a [SecretStore], which in
// production is the operating system credential store. Share payloads are
// encrypted to a recipient's age public key and base64 encoded for transport.
package crypto

import "github.com/MKhiriev/go-device-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_store_mock.go -package=mock

// Secret slot names inside the service namespace.
const (
	SlotPrivateKey   = "private_key"
	SlotDeviceAPIKey = "device_api_key"
)

// SecretStore reads and writes named secrets under a fixed service
// namespace. A missing entry is a normal outcome reported through found ==
// false; err is reserved for store failures.
type SecretStore interface {
	// Get returns the secret stored under name.
	Get(name string) (value string, found bool, err error)

	// Set stores value under name, replacing any previous value.
	Set(name, value string) error

	// Delete removes the secret stored under name. Deleting a missing entry
	// is not an error.
	Delete(name string) error
}

// Vault is the contract of the key vault consumed by the services.
type Vault interface {
	// EnsureKeys makes sure an activated device has both a stored private key
	// and a public key in settings. It returns the public key to persist and
	// whether a new pair was generated.
	EnsureKeys(settings models.SynchronizationSettings) (publicKey string, generated bool, err error)

	// EncryptForRecipient encrypts plaintext to the age recipient and returns
	// base64 ciphertext. Two calls with identical input produce different
	// output.
	EncryptForRecipient(plaintext []byte, recipientPublicKey string) (string, error)

	// Decrypt decrypts base64 ciphertext with the stored device identity.
	Decrypt(ciphertext string) ([]byte, error)

	// DeviceCredential returns the long-lived device credential.
	DeviceCredential() (string, error)

	// StoreDeviceCredential replaces the device credential.
	StoreDeviceCredential(credential string) error

	// ForgetDevice removes the device credential from the store.
	ForgetDevice() error
}
