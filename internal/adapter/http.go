// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

const (
	tokenPath   = "/api/token"
	beginPath   = "/api/begin"
	devicesPath = "/api/devices"
	sharePath   = "/api/share"
	ssePath     = "/api/sse"

	// DeviceKeyHeader carries the long-lived device credential on the token
	// endpoint.
	DeviceKeyHeader = "X-Device-Key"
)

type httpServerAdapter struct {
	// client serves the JSON endpoints and carries the request timeout.
	client *utils.HTTPClient
	// stream has no overall timeout; the event stream stays open for as long
	// as the server keeps it.
	stream *utils.HTTPClient

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPServerAdapter builds a resty-backed [ServerAdapter].
func NewHTTPServerAdapter(cfg config.ClientSync, log *logger.Logger) ServerAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(timeout),
		stream: utils.NewHTTPClient(0),
		now:    time.Now,
		logger: log.WithComponent("adapter"),
	}
	a.client.OnAfterResponse(a.logResponse)
	a.stream.OnAfterResponse(a.logResponse)
	return a
}

// logResponse records one line per completed request. Headers are never
// logged: they carry the bearer token and the device credential.
func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int64("size", resp.Size()).
		Send()
	return nil
}

func (h *httpServerAdapter) IssueToken(ctx context.Context, serverURL, deviceCredential string) (models.BearerToken, error) {
	const op = "POST " + tokenPath

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(DeviceKeyHeader, deviceCredential).
		SetHeader("Accept", "application/json").
		Post(endpoint(serverURL, tokenPath))
	if err = checkResponse(op, resp, err); err != nil {
		h.logger.Warn().Err(err).Str("op", op).Msg("token request failed")
		return models.BearerToken{}, err
	}

	token, err := decodeToken(resp.Body(), h.now())
	if err != nil {
		return models.BearerToken{}, err
	}

	h.logger.Debug().Time("expires_at", token.ExpiresAt).Msg("bearer token issued")
	return token, nil
}

func (h *httpServerAdapter) Begin(ctx context.Context, serverURL, token string, req models.BeginRequest) (models.BeginResponse, error) {
	const op = "POST " + beginPath

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(endpoint(serverURL, beginPath))
	if err = checkResponse(op, resp, err); err != nil {
		return models.BeginResponse{}, err
	}

	var br models.BeginResponse
	if err = json.Unmarshal(resp.Body(), &br); err != nil {
		return models.BeginResponse{}, &app.SyncError{Kind: app.KindInvalidResponse, Detail: "begin response is not valid JSON", Err: err}
	}
	return br, nil
}

func (h *httpServerAdapter) ListDevices(ctx context.Context, serverURL, token string) ([]models.Device, error) {
	const op = "GET " + devicesPath

	resp, err := h.authedRequest(ctx, token).Get(endpoint(serverURL, devicesPath))
	if err = checkResponse(op, resp, err); err != nil {
		return nil, err
	}

	var devices []models.Device
	if err = json.Unmarshal(resp.Body(), &devices); err != nil {
		return nil, &app.SyncError{Kind: app.KindInvalidResponse, Detail: "devices response is not valid JSON", Err: err}
	}
	return devices, nil
}

func (h *httpServerAdapter) Share(ctx context.Context, serverURL, token string, upload models.ShareUpload) (models.ShareResponse, error) {
	const op = "POST " + sharePath

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(upload).
		Post(endpoint(serverURL, sharePath))
	if err = checkResponse(op, resp, err); err != nil {
		return models.ShareResponse{}, err
	}

	var sr models.ShareResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.ShareResponse{}, &app.SyncError{Kind: app.KindInvalidResponse, Detail: "share response is not valid JSON", Err: err}
	}
	return sr, nil
}

func (h *httpServerAdapter) OpenEventStream(ctx context.Context, serverURL, token string) (io.ReadCloser, error) {
	const op = "GET " + ssePath

	req := h.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache")
	if token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Get(endpoint(serverURL, ssePath))
	if err != nil {
		return nil, classifyTransportError(op, err)
	}

	body := resp.RawBody()
	if err = mapHTTPError(resp.StatusCode()); err != nil {
		if body != nil {
			_, _ = io.Copy(io.Discard, io.LimitReader(body, 4<<10))
			_ = body.Close()
		}
		return nil, err
	}
	if body == nil {
		return nil, app.InvalidResponse("event stream has no body")
	}

	if ct := resp.Header().Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "text/event-stream") {
		h.logger.Warn().Str("content_type", ct).Msg("unexpected event stream content type")
	}
	return body, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx).SetHeader("Accept", "application/json")
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func endpoint(serverURL, path string) string {
	return fmt.Sprintf("%s%s", strings.TrimRight(serverURL, "/"), path)
}
