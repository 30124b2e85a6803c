// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/models"
)

// decodeToken parses a /api/token response body. The expiry is taken from
// expires_at when present, from expires_in otherwise, and as a last resort
// from the exp claim when the access token is a JWT. The signature is not
// verified: the client only needs to know when to refresh.
func decodeToken(body []byte, now time.Time) (models.BearerToken, error) {
	var tr models.TokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return models.BearerToken{}, &app.SyncError{Kind: app.KindInvalidResponse, Detail: "token response is not valid JSON", Err: err}
	}

	token := strings.TrimSpace(tr.AccessToken)
	if token == "" {
		return models.BearerToken{}, app.InvalidResponse("token response has no access_token")
	}

	if tr.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, tr.ExpiresAt)
		if err != nil {
			return models.BearerToken{}, &app.SyncError{Kind: app.KindInvalidResponse, Detail: "expires_at is not RFC3339", Err: err}
		}
		return models.BearerToken{AccessToken: token, ExpiresAt: expiresAt}, nil
	}

	if tr.ExpiresIn > 0 {
		return models.BearerToken{AccessToken: token, ExpiresAt: now.Add(time.Duration(tr.ExpiresIn) * time.Second)}, nil
	}

	expiresAt, err := expiryFromJWT(token)
	if err != nil {
		return models.BearerToken{}, err
	}
	return models.BearerToken{AccessToken: token, ExpiresAt: expiresAt}, nil
}

func expiryFromJWT(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, app.InvalidResponse("token response has no expiry")
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, app.InvalidResponse("token response has no expiry")
	}
	return exp.Time, nil
}
