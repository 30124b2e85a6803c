// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenResponse is the body of POST /api/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// BearerToken is a short-lived access token together with its expiry.
type BearerToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// BeginRequest is the body of POST /api/begin.
type BeginRequest struct {
	PublicKey string `json:"public_key"`
}

// BeginResponse is the body returned by POST /api/begin.
type BeginResponse struct {
	DeviceName string       `json:"device_name"`
	Shares     []SharedFile `json:"shares"`
}
