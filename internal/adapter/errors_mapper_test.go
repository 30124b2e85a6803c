// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-device-sync/internal/app"
)

func TestMapHTTPError(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		assert.NoError(t, mapHTTPError(status))
	}

	assert.ErrorIs(t, mapHTTPError(http.StatusUnauthorized), app.ErrAuthenticationFailed)
	assert.ErrorIs(t, mapHTTPError(http.StatusForbidden), app.ErrAuthenticationFailed)
	assert.ErrorIs(t, mapHTTPError(http.StatusBadRequest), app.ErrBadRequest)
	assert.ErrorIs(t, mapHTTPError(http.StatusConflict), app.ErrServerError)
	assert.ErrorIs(t, mapHTTPError(http.StatusServiceUnavailable), app.ErrServerError)
	assert.ErrorIs(t, mapHTTPError(http.StatusFound), app.ErrServerError)
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: app.ErrTimeout},
		{name: "net timeout", err: fmt.Errorf("get: %w", timeoutErr{}), want: app.ErrTimeout},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "x.invalid", IsNotFound: true}, want: app.ErrHostNotFound},
		{name: "refused", err: refused, want: app.ErrConnectionFailed},
		{name: "dial other", err: &net.OpError{Op: "dial", Err: errors.New("unreachable")}, want: app.ErrConnectionFailed},
		{name: "cancelled", err: context.Canceled, want: app.ErrOther},
		{name: "unknown", err: errors.New("weird"), want: app.ErrOther},
		{name: "already classified", err: app.ErrBadRequest, want: app.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransportError("GET /api/sse", tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}

	assert.NoError(t, classifyTransportError("op", nil))
}

func TestClassifyTransportError_KeepsCause(t *testing.T) {
	got := classifyTransportError("POST /api/token", context.Canceled)
	assert.ErrorIs(t, got, context.Canceled)

	got = classifyTransportError("POST /api/token", context.DeadlineExceeded)
	assert.Contains(t, got.Error(), "POST /api/token")
}
