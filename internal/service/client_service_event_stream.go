// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/app"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

type eventStreamClient struct {
	adapter adapter.ServerAdapter
	tokens  TokenProvider
	state   *SyncState

	reconnectDelay  time.Duration
	livenessTimeout time.Duration

	sleep  sleepFunc
	logger *logger.Logger
}

func NewEventStreamClient(
	serverAdapter adapter.ServerAdapter,
	tokens TokenProvider,
	state *SyncState,
	reconnectDelay, livenessTimeout time.Duration,
	log *logger.Logger,
) EventStream {
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}

	return &eventStreamClient{
		adapter:         serverAdapter,
		tokens:          tokens,
		state:           state,
		reconnectDelay:  reconnectDelay,
		livenessTimeout: livenessTimeout,
		sleep:           sleepContext,
		logger:          log.WithComponent("event_stream"),
	}
}

// Run implements [EventStream]. It reconnects forever with a fixed delay and
// returns nil once ctx is cancelled.
func (c *eventStreamClient) Run(ctx context.Context, settings models.SynchronizationSettings, events chan<- models.SyncEvent) error {
	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return nil
		}

		token, err := c.tokens.GetValidToken(ctx, settings)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.state.SetStatus(models.StatusAuthenticationFailed)
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("event stream authentication failed")
			if !c.sleep(ctx, c.reconnectDelay) {
				return nil
			}
			continue
		}

		body, err := c.adapter.OpenEventStream(ctx, settings.ServerURL, token)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.state.SetStatus(models.StatusDisconnected)
			if errors.Is(err, app.ErrAuthenticationFailed) {
				c.tokens.Invalidate()
			}
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("event stream open failed")
			if !c.emit(ctx, events, models.NewErrorEvent(app.Classify(err).Error())) {
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}
			if !c.sleep(ctx, c.reconnectDelay) {
				return nil
			}
			continue
		}

		c.state.SetStatus(models.StatusConnected)
		c.logger.Info().Int("attempt", attempt).Msg("event stream connected")
		attempt = 0

		err = c.consume(ctx, body, events)
		if ctx.Err() != nil {
			return nil
		}

		c.state.SetStatus(models.StatusDisconnected)
		if err != nil {
			c.logger.Warn().Err(err).Msg("event stream read failed")
		} else {
			c.logger.Info().Msg("event stream closed by server")
		}
		if !c.sleep(ctx, c.reconnectDelay) {
			return nil
		}
	}
}

// consume reads events until the body ends, fails, stays silent for longer
// than the liveness timeout, or ctx is cancelled. Cancellation and liveness
// both close the body, which unblocks the pending read.
func (c *eventStreamClient) consume(ctx context.Context, body io.ReadCloser, events chan<- models.SyncEvent) error {
	var closeOnce sync.Once
	closeBody := func() {
		closeOnce.Do(func() { _ = body.Close() })
	}
	defer closeBody()

	stop := context.AfterFunc(ctx, closeBody)
	defer stop()

	var reader io.Reader = body
	if c.livenessTimeout > 0 {
		watchdog := time.AfterFunc(c.livenessTimeout, func() {
			c.logger.Warn().Dur("timeout", c.livenessTimeout).Msg("no data from event stream, reconnecting")
			closeBody()
		})
		defer watchdog.Stop()
		reader = &livenessReader{reader: body, timer: watchdog, timeout: c.livenessTimeout}
	}

	decoder := adapter.NewEventDecoder(reader)
	for {
		event, err := decoder.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !c.emit(ctx, events, event) {
			return ctx.Err()
		}
	}
}

func (c *eventStreamClient) emit(ctx context.Context, events chan<- models.SyncEvent, event models.SyncEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// livenessReader re-arms the watchdog whenever data arrives.
type livenessReader struct {
	reader  io.Reader
	timer   *time.Timer
	timeout time.Duration
}

func (l *livenessReader) Read(p []byte) (int, error) {
	n, err := l.reader.Read(p)
	if n > 0 {
		l.timer.Reset(l.timeout)
	}
	return n, err
}
