// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

var testSettings = models.SynchronizationSettings{
	ServerURL:   "https://sync.example.com",
	Email:       "user@example.com",
	PublicKey:   "age1local",
	IsActivated: true,
}

// fakeTokens is a TokenProvider with scripted results.
type fakeTokens struct {
	mu      sync.Mutex
	results []error
	token   string

	calls         atomic.Int32
	invalidations atomic.Int32
	resets        atomic.Int32
}

func newFakeTokens(token string, results ...error) *fakeTokens {
	return &fakeTokens{token: token, results: results}
}

func (f *fakeTokens) GetValidToken(context.Context, models.SynchronizationSettings) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.results) > 0 {
		err := f.results[0]
		f.results = f.results[1:]
		if err != nil {
			return "", err
		}
	}
	return f.token, nil
}

func (f *fakeTokens) Invalidate() { f.invalidations.Add(1) }
func (f *fakeTokens) Reset()      { f.resets.Add(1) }

// sleepRecorder records requested delays without waiting.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
	// onSleep runs before returning; returning false aborts like a cancelled
	// context would.
	onSleep func(n int) bool
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) bool {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	n := len(s.delays)
	hook := s.onSleep
	s.mu.Unlock()

	if hook != nil && !hook(n) {
		return false
	}
	return ctx.Err() == nil
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

func testLogger() *logger.Logger {
	return logger.Nop()
}
