// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Group that runs several workers
// under one cancellable context and waits for all of them on Stop.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks for the duration of the work and must return once ctx is
// cancelled. Returning nil after cancellation is the normal shutdown path.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

type funcWorker struct {
	name string
	run  func(ctx context.Context) error
}

// Func adapts a function to a [Worker].
func Func(name string, run func(ctx context.Context) error) Worker {
	return &funcWorker{name: name, run: run}
}

func (f *funcWorker) Name() string                  { return f.name }
func (f *funcWorker) Run(ctx context.Context) error { return f.run(ctx) }
