// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-device-sync/internal/logger"
)

// Group runs workers on a shared context derived from the parent passed to
// [NewGroup]. A worker returning an error cancels the others.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	eg     *errgroup.Group
	logger *logger.Logger

	stopOnce sync.Once
	err      error
}

func NewGroup(parent context.Context, log *logger.Logger) *Group {
	ctx, cancel := context.WithCancel(parent)
	eg, egCtx := errgroup.WithContext(ctx)

	return &Group{
		ctx:    egCtx,
		cancel: cancel,
		eg:     eg,
		logger: log.WithComponent("workers"),
	}
}

// Go starts the workers in their own goroutines.
func (g *Group) Go(workers ...Worker) {
	for _, w := range workers {
		g.eg.Go(func() error {
			g.logger.Debug().Str("worker", w.Name()).Msg("worker started")
			err := w.Run(g.ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				g.logger.Err(err).Str("worker", w.Name()).Msg("worker stopped with error")
				return err
			}
			g.logger.Debug().Str("worker", w.Name()).Msg("worker stopped")
			return nil
		})
	}
}

// Done is closed when the group is stopping.
func (g *Group) Done() <-chan struct{} {
	return g.ctx.Done()
}

// Wait blocks until every worker has returned and reports the first error.
func (g *Group) Wait() error {
	return g.eg.Wait()
}

// Stop cancels every worker and waits for them to return. Safe to call more
// than once.
func (g *Group) Stop() error {
	g.stopOnce.Do(func() {
		g.cancel()
		g.err = g.eg.Wait()
	})
	return g.err
}
