// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringStore is a [SecretStore] backed by the operating system credential
// store (Keychain, Secret Service, Windows Credential Manager).
type keyringStore struct {
	service string
}

// NewKeyringStore returns a [SecretStore] keeping entries under service.
func NewKeyringStore(service string) SecretStore {
	return &keyringStore{service: service}
}

// Get implements [SecretStore].
func (k *keyringStore) Get(name string) (string, bool, error) {
	value, err := keyring.Get(k.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read secret %q: %w", name, err)
	}
	return value, true, nil
}

// Set implements [SecretStore].
func (k *keyringStore) Set(name, value string) error {
	if err := keyring.Set(k.service, name, value); err != nil {
		return fmt.Errorf("write secret %q: %w", name, err)
	}
	return nil
}

// Delete implements [SecretStore].
func (k *keyringStore) Delete(name string) error {
	err := keyring.Delete(k.service, name)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete secret %q: %w", name, err)
	}
	return nil
}
