// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/crypto"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

const (
	// tokenExpiryBuffer is how long a cached token must still be valid to be
	// handed out. A token with exactly this much time left is refreshed.
	tokenExpiryBuffer = 5 * time.Minute

	// refreshPollInterval is how long a caller waits for a refresh started by
	// someone else before re-checking the cache.
	refreshPollInterval = 100 * time.Millisecond
)

// TokenCache is the process-wide bearer token cache.
//
// The lock is held only around the in-memory check and update, never across
// the network call. Single-flight is advisory: a caller that finds a refresh
// in progress waits one poll interval, re-checks once and then refreshes on
// its own. Two concurrent refreshes both yield valid tokens and the last one
// stored wins.
type TokenCache struct {
	adapter adapter.ServerAdapter
	vault   crypto.Vault

	mu           sync.Mutex
	token        string
	expiresAt    time.Time
	isRefreshing bool
	// generation is bumped by Reset so a refresh started before the reset
	// cannot store its token afterwards.
	generation uint64

	now    func() time.Time
	sleep  sleepFunc
	logger *logger.Logger
}

func NewTokenCache(serverAdapter adapter.ServerAdapter, vault crypto.Vault, log *logger.Logger) *TokenCache {
	return &TokenCache{
		adapter: serverAdapter,
		vault:   vault,
		now:     time.Now,
		sleep:   sleepContext,
		logger:  log.WithComponent("token_cache"),
	}
}

// GetValidToken implements [TokenProvider].
func (c *TokenCache) GetValidToken(ctx context.Context, settings models.SynchronizationSettings) (string, error) {
	if !settings.HasServerURL() {
		return "", app.ErrServerURLMissing
	}

	c.mu.Lock()
	if token, ok := c.validTokenLocked(); ok {
		c.mu.Unlock()
		return token, nil
	}

	if c.isRefreshing {
		c.mu.Unlock()
		if !c.sleep(ctx, refreshPollInterval) {
			return "", app.Classify(ctx.Err())
		}
		c.mu.Lock()
		if token, ok := c.validTokenLocked(); ok {
			c.mu.Unlock()
			return token, nil
		}
		c.logger.Debug().Msg("concurrent token refresh did not finish in time, refreshing")
	}

	c.isRefreshing = true
	generation := c.generation
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.generation == generation {
			c.isRefreshing = false
		}
		c.mu.Unlock()
	}()

	return c.refresh(ctx, settings, generation)
}

func (c *TokenCache) refresh(ctx context.Context, settings models.SynchronizationSettings, generation uint64) (string, error) {
	credential, err := c.vault.DeviceCredential()
	if err != nil {
		c.logger.Warn().Err(err).Msg("device credential unavailable")
		return "", err
	}

	issued, err := c.adapter.IssueToken(ctx, settings.ServerURL, credential)
	if err != nil {
		c.logger.Warn().Err(err).Msg("token refresh failed")
		return "", err
	}

	c.mu.Lock()
	if c.generation == generation {
		c.token = issued.AccessToken
		c.expiresAt = issued.ExpiresAt
	}
	c.mu.Unlock()

	c.logger.Debug().Time("expires_at", issued.ExpiresAt).Msg("bearer token refreshed")
	return issued.AccessToken, nil
}

// validTokenLocked reports the cached token when it outlives the expiry
// buffer. c.mu must be held.
func (c *TokenCache) validTokenLocked() (string, bool) {
	if c.token == "" {
		return "", false
	}
	if !c.expiresAt.After(c.now().Add(tokenExpiryBuffer)) {
		return "", false
	}
	return c.token, true
}

// Invalidate implements [TokenProvider].
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}

// Reset implements [TokenProvider].
func (c *TokenCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
	c.isRefreshing = false
	c.generation++
}
