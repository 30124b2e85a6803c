// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the client configuration after defaults were applied.
// An empty server URL is allowed: synchronization then stays inactive until
// the user configures one.
func (cfg *ClientConfig) validate() error {
	if cfg.Sync.ServerURL != "" {
		u, err := url.Parse(cfg.Sync.ServerURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return ErrInvalidSyncConfigs
		}
	}

	if cfg.Sync.RequestTimeout < 0 || cfg.Sync.ReconnectDelay < 0 || cfg.Sync.LivenessTimeout < 0 {
		return ErrInvalidSyncConfigs
	}

	if strings.TrimSpace(cfg.Storage.DSN) == "" || strings.Contains(cfg.Storage.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	return nil
}
