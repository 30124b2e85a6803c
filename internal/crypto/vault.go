// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/models"
)

// keyVault is the private implementation of [Vault].
type keyVault struct {
	secrets SecretStore
}

// NewKeyVault constructs a [Vault] over the given secret store.
func NewKeyVault(secrets SecretStore) Vault {
	return &keyVault{secrets: secrets}
}

// GenerateKeyPair creates a fresh age X25519 identity. It has no side
// effects; callers decide where the private key is stored.
func GenerateKeyPair() (models.DeviceKeyPair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return models.DeviceKeyPair{}, fmt.Errorf("generating age keypair: %w", err)
	}

	return models.DeviceKeyPair{
		PrivateKey: identity.String(),
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// EnsureKeys implements [Vault]. Inactive devices are left untouched. When
// either half of the pair is missing a new pair is generated, the private key
// is written to the store and the new public key is returned so the caller can
// persist it into settings.
func (v *keyVault) EnsureKeys(settings models.SynchronizationSettings) (string, bool, error) {
	if !settings.IsActivated {
		return settings.PublicKey, false, nil
	}

	_, found, err := v.secrets.Get(SlotPrivateKey)
	if err != nil {
		return "", false, app.Wrap(app.KindKeyStoreUnavailable, err)
	}
	if found && settings.PublicKey != "" {
		return settings.PublicKey, false, nil
	}

	pair, err := GenerateKeyPair()
	if err != nil {
		return "", false, app.Wrap(app.KindKeyStoreUnavailable, err)
	}
	if err = v.secrets.Set(SlotPrivateKey, pair.PrivateKey); err != nil {
		return "", false, app.Wrap(app.KindKeyStoreUnavailable, err)
	}

	return pair.PublicKey, true, nil
}

// EncryptForRecipient implements [Vault]. age draws a fresh ephemeral key
// and file key for every call.
func (v *keyVault) EncryptForRecipient(plaintext []byte, recipientPublicKey string) (string, error) {
	return EncryptForRecipient(plaintext, recipientPublicKey)
}

// Decrypt implements [Vault] using the identity from the secret store.
func (v *keyVault) Decrypt(ciphertext string) ([]byte, error) {
	privateKey, found, err := v.secrets.Get(SlotPrivateKey)
	if err != nil {
		return nil, app.Wrap(app.KindKeyStoreUnavailable, err)
	}
	if !found {
		return nil, app.ErrMissingEncryptionKey
	}
	return DecryptWithIdentity(ciphertext, privateKey)
}

// DeviceCredential implements [Vault].
func (v *keyVault) DeviceCredential() (string, error) {
	credential, found, err := v.secrets.Get(SlotDeviceAPIKey)
	if err != nil {
		return "", app.Wrap(app.KindKeyStoreUnavailable, err)
	}
	if !found || credential == "" {
		return "", app.ErrDeviceKeyMissing
	}
	return credential, nil
}

// StoreDeviceCredential implements [Vault].
func (v *keyVault) StoreDeviceCredential(credential string) error {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return app.ErrDeviceKeyMissing
	}
	if err := v.secrets.Set(SlotDeviceAPIKey, credential); err != nil {
		return app.Wrap(app.KindKeyStoreUnavailable, err)
	}
	return nil
}

// ForgetDevice implements [Vault].
func (v *keyVault) ForgetDevice() error {
	if err := v.secrets.Delete(SlotDeviceAPIKey); err != nil {
		return app.Wrap(app.KindKeyStoreUnavailable, err)
	}
	return nil
}

// EncryptForRecipient encrypts plaintext to a single age recipient and
// returns the ciphertext as standard base64.
func EncryptForRecipient(plaintext []byte, recipientPublicKey string) (string, error) {
	recipient, err := age.ParseX25519Recipient(strings.TrimSpace(recipientPublicKey))
	if err != nil {
		return "", &app.SyncError{Kind: app.KindEncryptionFailed, Detail: "invalid recipient key", Err: err}
	}

	var ciphertext bytes.Buffer
	writer, err := age.Encrypt(&ciphertext, recipient)
	if err != nil {
		return "", app.Wrap(app.KindEncryptionFailed, err)
	}
	if _, err = writer.Write(plaintext); err != nil {
		return "", app.Wrap(app.KindEncryptionFailed, err)
	}
	if err = writer.Close(); err != nil {
		return "", app.Wrap(app.KindEncryptionFailed, err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext.Bytes()), nil
}

// DecryptWithIdentity decrypts base64 ciphertext produced by
// [EncryptForRecipient] with the given age identity. Malformed base64,
// malformed framing and ciphertext addressed to another identity all fail
// with a DecryptionFailed error.
func DecryptWithIdentity(ciphertext, privateKey string) ([]byte, error) {
	identity, err := age.ParseX25519Identity(strings.TrimSpace(privateKey))
	if err != nil {
		return nil, &app.SyncError{Kind: app.KindDecryptionFailed, Detail: "invalid identity", Err: err}
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, &app.SyncError{Kind: app.KindDecryptionFailed, Detail: "malformed base64", Err: err}
	}

	reader, err := age.Decrypt(bytes.NewReader(raw), identity)
	if err != nil {
		return nil, app.Wrap(app.KindDecryptionFailed, err)
	}

	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, app.Wrap(app.KindDecryptionFailed, err)
	}
	return plaintext, nil
}
