// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is the header carrying the request correlation id.
const RequestIDHeader = "X-Request-Id"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Every request sent through an HTTPClient carries an X-Request-Id header:
// the id stored in the request context when present, a fresh UUIDv7
// otherwise.
//
// Example usage:
//
//	client := utils.NewHTTPClient(15 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
// A zero timeout leaves the client without an overall deadline, which is what
// long-lived streaming responses need.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	client.OnBeforeRequest(setRequestID)

	return &HTTPClient{Client: client}
}

func setRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(RequestIDHeader) != "" {
		return nil
	}
	requestID, ok := GetRequestIDFromContext(r.Context())
	if !ok {
		requestID = NewRequestID()
	}
	r.SetHeader(RequestIDHeader, requestID)
	return nil
}
