// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-device-sync/internal/app"
)

// mapHTTPError maps a non-2xx response to the error taxonomy. It returns nil
// for 2xx responses.
func mapHTTPError(status int) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return app.ErrAuthenticationFailed
	case http.StatusBadRequest:
		return app.ErrBadRequest
	default:
		return app.ServerError(status)
	}
}

// classifyTransportError maps an error returned by the HTTP client (the
// request never produced a response) to the error taxonomy. op names the
// request, e.g. "POST /api/token", and becomes the timeout detail.
func classifyTransportError(op string, err error) error {
	if err == nil {
		return nil
	}

	var syncErr *app.SyncError
	if errors.As(err, &syncErr) {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return &app.SyncError{Kind: app.KindOther, Detail: "request cancelled", Err: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &app.SyncError{Kind: app.KindTimeout, Detail: op, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &app.SyncError{Kind: app.KindHostNotFound, Err: err}
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return &app.SyncError{Kind: app.KindConnectionFailed, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &app.SyncError{Kind: app.KindConnectionFailed, Err: err}
	}

	return &app.SyncError{Kind: app.KindOther, Detail: op + " failed", Err: err}
}

// checkResponse combines transport classification and status mapping for a
// completed resty call.
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return classifyTransportError(op, err)
	}
	return mapHTTPError(resp.StatusCode())
}
